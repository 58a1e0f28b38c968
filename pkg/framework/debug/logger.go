// Package debug provides leveled logging for plugin and host code.
// It must never be called from the audio processing path.
package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
	// LogLevelFatal is for fatal errors that should terminate the plugin.
	LogLevelFatal
	// LogLevelOff disables all logging.
	LogLevelOff
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelFatal:
		return "FATAL"
	case LogLevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "info" or "WARN" to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "fatal":
		return LogLevelFatal, nil
	case "off", "none":
		return LogLevelOff, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// zapLevel maps a LogLevel onto zap. Off maps above Fatal so nothing passes.
func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelFatal:
		return zapcore.DPanicLevel
	default:
		return zapcore.FatalLevel + 1
	}
}

// Logger provides structured, leveled logging backed by zap.
type Logger struct {
	mu      sync.Mutex
	opts    options
	level   zap.AtomicLevel
	sugar   *zap.SugaredLogger
	enabled atomic.Bool
}

var defaultLogger = New()

// New creates a new logger instance.
func New(opts ...Option) *Logger {
	o := options{
		level:  LogLevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}

	l := &Logger{
		opts:  o,
		level: zap.NewAtomicLevelAt(o.level.zapLevel()),
	}
	l.enabled.Store(true)
	l.build()
	return l
}

// build assembles the zap core from the current options. Caller holds mu or owns l.
func (l *Logger) build() {
	encoderConfig := zap.NewProductionEncoderConfig()
	if l.opts.development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	ws := zapcore.AddSync(l.opts.output)
	if f, ok := l.opts.output.(*os.File); ok {
		ws = zapcore.Lock(f)
	}

	cores := []zapcore.Core{zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ws, l.level)}
	cores = append(cores, l.opts.sinks...)

	// Every entry point is exactly one frame above log
	zopts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(2)}
	if l.opts.development {
		zopts = append(zopts, zap.Development())
	}

	logger := zap.New(zapcore.NewTee(cores...), zopts...)
	if l.opts.name != "" {
		logger = logger.Named(l.opts.name)
	}
	if len(l.opts.fields) > 0 {
		fields := make([]zap.Field, 0, len(l.opts.fields))
		for k, v := range l.opts.fields {
			if k == "" {
				continue
			}
			fields = append(fields, zap.Any(k, v))
		}
		logger = logger.With(fields...)
	}

	l.sugar = logger.Sugar()
}

// SetOutput sets the output destination for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.output = w
	l.build()
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.level.SetLevel(level.zapLevel())
}

// Level returns the current minimum log level.
func (l *Logger) Level() LogLevel {
	zl := l.level.Level()
	for lv := LogLevelDebug; lv <= LogLevelOff; lv++ {
		if lv.zapLevel() == zl {
			return lv
		}
	}
	return LogLevelInfo
}

// SetPrefix sets the logger name shown before each message.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.name = prefix
	l.build()
}

// SetEnabled enables or disables the logger.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled.Store(enabled)
}

// IsEnabled returns whether the logger is enabled.
func (l *Logger) IsEnabled() bool {
	return l.enabled.Load()
}

func (l *Logger) current() *zap.SugaredLogger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sugar
}

// log writes a log message at the specified level.
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if !l.enabled.Load() || !l.level.Enabled(level.zapLevel()) {
		return
	}
	sugar := l.current()
	switch level {
	case LogLevelDebug:
		sugar.Debugf(format, args...)
	case LogLevelInfo:
		sugar.Infof(format, args...)
	case LogLevelWarn:
		sugar.Warnf(format, args...)
	case LogLevelError:
		sugar.Errorf(format, args...)
	case LogLevelFatal:
		sugar.DPanicf(format, args...)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogLevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogLevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogLevelError, format, args...)
}

// Fatal logs a fatal error message and panics.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(LogLevelFatal, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// Flush writes out any buffered entries.
func (l *Logger) Flush() error {
	if err := l.current().Sync(); err != nil {
		// stdout/stderr on a terminal cannot be synced
		msg := err.Error()
		if strings.Contains(msg, "inappropriate ioctl for device") || strings.Contains(msg, "invalid argument") {
			return nil
		}
		return err
	}
	return nil
}

// Global logger functions

// Default returns the default logger instance.
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// SetOutput sets the output destination for the default logger.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// SetLevel sets the minimum log level for the default logger.
func SetLevel(level LogLevel) {
	defaultLogger.SetLevel(level)
}

// Debug logs a debug message using the default logger.
func Debug(format string, args ...interface{}) {
	defaultLogger.log(LogLevelDebug, format, args...)
}

// Info logs an informational message using the default logger.
func Info(format string, args ...interface{}) {
	defaultLogger.log(LogLevelInfo, format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...interface{}) {
	defaultLogger.log(LogLevelWarn, format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...interface{}) {
	defaultLogger.log(LogLevelError, format, args...)
}

// Conditional logging helpers

// DebugIf logs a debug message if the condition is true.
func DebugIf(condition bool, format string, args ...interface{}) {
	if condition {
		defaultLogger.log(LogLevelDebug, format, args...)
	}
}

// WarnIf logs a warning message if the condition is true.
func WarnIf(condition bool, format string, args ...interface{}) {
	if condition {
		defaultLogger.log(LogLevelWarn, format, args...)
	}
}

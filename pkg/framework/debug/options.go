package debug

import (
	"io"

	"go.uber.org/zap/zapcore"
)

type options struct {
	level       LogLevel
	development bool
	output      io.Writer
	name        string
	fields      map[string]interface{}
	sinks       []zapcore.Core
}

// Option configures a Logger.
type Option func(*options)

// WithLevel sets the minimum level.
func WithLevel(level LogLevel) Option {
	return func(o *options) { o.level = level }
}

// WithLevelString sets the minimum level by name; unknown names keep Info.
func WithLevelString(level string) Option {
	return func(o *options) {
		lv, _ := ParseLevel(level)
		o.level = lv
	}
}

// WithDevelopment switches to the zap development encoder and behavior.
func WithDevelopment(dev bool) Option {
	return func(o *options) { o.development = dev }
}

// WithOutput sets the writer for the console core.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithPrefix names the logger.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.name = prefix }
}

// WithFields attaches fields to every log line.
func WithFields(fields map[string]interface{}) Option {
	return func(o *options) {
		if o.fields == nil {
			o.fields = map[string]interface{}{}
		}
		for k, v := range fields {
			o.fields[k] = v
		}
	}
}

// WithSink tees entries into an additional zap core.
func WithSink(core zapcore.Core) Option {
	return func(o *options) {
		if core != nil {
			o.sinks = append(o.sinks, core)
		}
	}
}

// Package config loads the gainknob TOML configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/justyntemme/gainknob/pkg/dsp"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Gain configures the gain parameter range in dB
type Gain struct {
	Min     float64 `toml:"min"`
	Max     float64 `toml:"max"`
	Default float64 `toml:"default"`
}

// Dial configures the rendered scale
type Dial struct {
	Radius float64 `toml:"radius"`
}

// UI configures the editor window
type UI struct {
	Width           int     `toml:"width"`
	Height          int     `toml:"height"`
	DragSensitivity float64 `toml:"drag_sensitivity"`
}

// Audio configures the preview stream
type Audio struct {
	SampleRate  int     `toml:"sample_rate"`
	BlockSize   int     `toml:"block_size"`
	ToneHz      float64 `toml:"tone_hz"`
	ToneLevelDB float64 `toml:"tone_level_db"`
}

// Log configures the debug logger
type Log struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Config is the whole file. Missing keys keep their defaults.
type Config struct {
	Gain  Gain  `toml:"gain"`
	Dial  Dial  `toml:"dial"`
	UI    UI    `toml:"ui"`
	Audio Audio `toml:"audio"`
	Log   Log   `toml:"log"`

	// Undecoded lists keys present in the file that nothing reads
	Undecoded []string `toml:"-"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Gain:  Gain{Min: -20, Max: 20, Default: 0},
		Dial:  Dial{Radius: 95},
		UI:    UI{Width: 300, Height: 400, DragSensitivity: 250},
		Audio: Audio{SampleRate: dsp.SampleRate48k, BlockSize: dsp.DefaultBufferSize, ToneHz: 220, ToneLevelDB: -18},
		Log:   Log{Level: "info"},
	}
}

// Parse decodes TOML over the defaults and validates the result
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	for _, key := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a file. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the ranges and sizes
func (c Config) Validate() error {
	var problems []string
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	if !finite(c.Gain.Min) || !finite(c.Gain.Max) || !(c.Gain.Min < c.Gain.Max) {
		problems = append(problems, fmt.Sprintf("gain range [%v, %v] must satisfy min < max", c.Gain.Min, c.Gain.Max))
	} else if !(c.Gain.Default >= c.Gain.Min && c.Gain.Default <= c.Gain.Max) {
		problems = append(problems, fmt.Sprintf("gain default %v outside [%v, %v]", c.Gain.Default, c.Gain.Min, c.Gain.Max))
	}
	if !(c.Dial.Radius > 0) || !finite(c.Dial.Radius) {
		problems = append(problems, "dial radius must be positive")
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		problems = append(problems, "ui size must be positive")
	}
	if !(c.UI.DragSensitivity > 0) {
		problems = append(problems, "ui drag_sensitivity must be positive")
	}
	if c.Audio.SampleRate <= 0 || c.Audio.BlockSize <= 0 {
		problems = append(problems, "audio sample_rate and block_size must be positive")
	}
	if !(c.Audio.ToneHz >= 0) || !finite(c.Audio.ToneLevelDB) {
		problems = append(problems, "audio tone settings must be finite and non-negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

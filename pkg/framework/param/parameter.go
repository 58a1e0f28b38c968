// Package param provides bounded, lock-free plugin parameters.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Parameter represents a plugin parameter.
// The value is stored as a plain value (e.g. dB) and is always inside Range.
type Parameter struct {
	ID        uint32
	Name      string
	ShortName string
	Unit      string

	rng          Range
	defaultValue float64

	// Atomic value for lock-free access in audio thread
	value atomic.Uint64

	// Value formatting
	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Get returns the current plain value.
// Safe to call from the audio thread: a single atomic load.
func (p *Parameter) Get() float64 {
	return math.Float64frombits(p.value.Load())
}

// Set clamps v into the parameter range and stores it.
// NaN stores the default value.
func (p *Parameter) Set(v float64) {
	if math.IsNaN(v) {
		v = p.defaultValue
	}
	p.value.Store(math.Float64bits(p.rng.Clamp(v)))
}

// Normalized returns the current value mapped linearly into [0, 1].
func (p *Parameter) Normalized() float64 {
	return p.rng.Normalize(p.Get())
}

// SetNormalized sets the value from a normalized [0, 1] position.
func (p *Parameter) SetNormalized(n float64) {
	if math.IsNaN(n) {
		p.Reset()
		return
	}
	p.Set(p.rng.Denormalize(n))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.value.Store(math.Float64bits(p.defaultValue))
}

// Range returns the parameter bounds.
func (p *Parameter) Range() Range {
	return p.rng
}

// Default returns the plain default value.
func (p *Parameter) Default() float64 {
	return p.defaultValue
}

// Contains reports whether v is a legal stored value for this parameter.
func (p *Parameter) Contains(v float64) bool {
	return p.rng.Contains(v)
}

// FormatValue returns the formatted plain value v.
func (p *Parameter) FormatValue(v float64) string {
	if p.formatFunc != nil {
		return p.formatFunc(v)
	}
	if p.Unit != "" {
		return fmt.Sprintf("%.2f %s", v, p.Unit)
	}
	return fmt.Sprintf("%.2f", v)
}

// String formats the current value.
func (p *Parameter) String() string {
	return p.FormatValue(p.Get())
}

// ParseValue parses a string to a plain value clamped into range.
func (p *Parameter) ParseValue(str string) (float64, error) {
	var (
		plain float64
		err   error
	)
	if p.parseFunc != nil {
		plain, err = p.parseFunc(str)
	} else {
		plain, err = strconv.ParseFloat(str, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("parse %s value %q: %w", p.Name, str, err)
	}
	if math.IsNaN(plain) {
		return 0, fmt.Errorf("parse %s value %q: not a number", p.Name, str)
	}
	return p.rng.Clamp(plain), nil
}

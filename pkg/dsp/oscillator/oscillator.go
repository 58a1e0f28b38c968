// Package oscillator provides audio oscillators for test signals
package oscillator

import (
	"math"

	"github.com/justyntemme/gainknob/pkg/dsp"
)

// Oscillator generates periodic waveforms
type Oscillator struct {
	sampleRate float64
	frequency  float64
	phase      float64
	phaseInc   float64
}

// New creates a new oscillator
func New(sampleRate float64) *Oscillator {
	o := &Oscillator{sampleRate: sampleRate}
	o.SetFrequency(440.0)
	return o
}

// SetFrequency sets the oscillator frequency
func (o *Oscillator) SetFrequency(freq float64) {
	o.frequency = freq
	if o.sampleRate > 0 {
		o.phaseInc = freq / o.sampleRate
	} else {
		o.phaseInc = 0
	}
}

// SetSampleRate changes the sample rate, keeping frequency and phase
func (o *Oscillator) SetSampleRate(sampleRate float64) {
	o.sampleRate = sampleRate
	o.SetFrequency(o.frequency)
}

// Frequency returns the current frequency in Hz
func (o *Oscillator) Frequency() float64 {
	return o.frequency
}

// Reset resets the oscillator phase to 0
func (o *Oscillator) Reset() {
	o.phase = 0.0
}

// updatePhase advances the phase and wraps it
func (o *Oscillator) updatePhase() {
	o.phase += o.phaseInc
	if o.phase >= 1.0 {
		o.phase -= math.Floor(o.phase)
	}
}

// Sine generates a sine wave sample
func (o *Oscillator) Sine() float32 {
	sample := float32(math.Sin(dsp.TwoPi * o.phase))
	o.updatePhase()
	return sample
}

// ProcessSine fills buffer with a sine wave scaled by level - no allocations
func (o *Oscillator) ProcessSine(buffer []float32, level float32) {
	for i := range buffer {
		buffer[i] = o.Sine() * level
	}
}

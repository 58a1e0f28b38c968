// Package host drives a processor block by block and exposes the result
// as an interleaved float32 little-endian byte stream.
package host

import (
	"github.com/justyntemme/gainknob/pkg/dsp"
	"github.com/justyntemme/gainknob/pkg/dsp/gain"
	"github.com/justyntemme/gainknob/pkg/dsp/oscillator"
	"github.com/justyntemme/gainknob/pkg/framework/process"
)

// Source writes the next block into channels [0, numChannels) of buf
type Source interface {
	Fill(buf *process.Buffer, numChannels int)
}

// ToneSource is a sine test tone, phase continuous across blocks
type ToneSource struct {
	osc   *oscillator.Oscillator
	level float32
}

// NewToneSource creates a tone at freq Hz and levelDB
func NewToneSource(sampleRate, freq, levelDB float64) *ToneSource {
	osc := oscillator.New(sampleRate)
	osc.SetFrequency(freq)
	return &ToneSource{osc: osc, level: gain.DbToLinear32(float32(levelDB))}
}

// Fill renders the tone into the first channel and copies it to the rest
func (t *ToneSource) Fill(buf *process.Buffer, numChannels int) {
	n := buf.ClampChannels(numChannels)
	if n == 0 {
		return
	}
	first := buf.Channels[0]
	t.osc.ProcessSine(first, t.level)
	for ch := 1; ch < n; ch++ {
		dsp.Copy(buf.Channels[ch], first)
	}
}

// Silence is a Source that writes zeros
type Silence struct{}

// Fill clears the channels
func (Silence) Fill(buf *process.Buffer, numChannels int) {
	n := buf.ClampChannels(numChannels)
	for ch := 0; ch < n; ch++ {
		buf.ClearChannel(ch)
	}
}

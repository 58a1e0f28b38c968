// Package process provides the audio buffer type shared by processors and hosts.
package process

import "github.com/justyntemme/gainknob/pkg/dsp"

// Buffer is a rectangular grid of per-channel sample slices.
// Processors mutate samples in place; they never resize or reallocate.
type Buffer struct {
	Channels [][]float32
}

// NewBuffer creates a buffer with pre-allocated channels
func NewBuffer(numChannels, numSamples int) *Buffer {
	if numChannels < 0 {
		numChannels = 0
	}
	if numSamples < 0 {
		numSamples = 0
	}
	channels := make([][]float32, numChannels)
	for ch := range channels {
		channels[ch] = make([]float32, numSamples)
	}
	return &Buffer{Channels: channels}
}

// Wrap uses host-owned channel slices without copying
func Wrap(channels [][]float32) *Buffer {
	return &Buffer{Channels: channels}
}

// NumChannels returns the number of channels
func (b *Buffer) NumChannels() int {
	return len(b.Channels)
}

// NumSamples returns the frame count of the first channel
func (b *Buffer) NumSamples() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Channel returns the samples of channel ch, or nil if it does not exist
func (b *Buffer) Channel(ch int) []float32 {
	if ch < 0 || ch >= len(b.Channels) {
		return nil
	}
	return b.Channels[ch]
}

// SetNumSamples re-slices every channel to n frames within its capacity.
// Used by hosts delivering short blocks - no allocations.
func (b *Buffer) SetNumSamples(n int) {
	if n < 0 {
		n = 0
	}
	for ch, samples := range b.Channels {
		if n > cap(samples) {
			b.Channels[ch] = samples[:cap(samples)]
			continue
		}
		b.Channels[ch] = samples[:n]
	}
}

// ClearChannel zeroes one channel - no allocations
func (b *Buffer) ClearChannel(ch int) {
	dsp.Clear(b.Channel(ch))
}

// Clear zeroes every channel
func (b *Buffer) Clear() {
	for ch := range b.Channels {
		dsp.Clear(b.Channels[ch])
	}
}

// ClampChannels limits a requested channel count to what the buffer holds.
// Negative counts become 0.
func (b *Buffer) ClampChannels(n int) int {
	if n < 0 {
		return 0
	}
	if n > len(b.Channels) {
		return len(b.Channels)
	}
	return n
}

// Package dsp provides digital signal processing utilities and algorithms.
package dsp

// Common audio constants used throughout the DSP package and plugins.
const (
	// Gain/Level constants
	MinDB     = -200.0 // Minimum dB value (effectively silence)
	UnityGain = 1.0    // Unity gain (0 dB)

	// Channel counts
	Mono   = 1
	Stereo = 2

	SampleRate48k     = 48000
	DefaultBufferSize = 512

	TwoPi = 6.283185307179586
)

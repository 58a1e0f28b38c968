// Package dsp provides digital signal processing utilities for audio
package dsp

import "math"

// Buffer utilities for common audio operations

// Clear zeroes a buffer - no allocations
func Clear(buffer []float32) {
	for i := range buffer {
		buffer[i] = 0
	}
}

// Copy copies from source to destination - no allocations
func Copy(dst, src []float32) {
	copy(dst, src)
}

// Peak returns the largest absolute sample value
func Peak(buffer []float32) float32 {
	var peak float32
	for _, s := range buffer {
		if abs := float32(math.Abs(float64(s))); abs > peak {
			peak = abs
		}
	}
	return peak
}

// IsSilent reports whether every sample is exactly zero
func IsSilent(buffer []float32) bool {
	for _, s := range buffer {
		if s != 0 {
			return false
		}
	}
	return true
}

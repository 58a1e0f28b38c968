// Package gain provides amplitude and gain-related DSP operations.
package gain

import (
	"math"

	"github.com/justyntemme/gainknob/pkg/dsp"
)

// Constants for dB conversion
const (
	// MinDB is the floor for dB conversion. Anything lower converts as MinDB,
	// so the linear scalar stays finite and strictly positive (1e-10).
	MinDB = dsp.MinDB

	// Reference amplitude for dB calculations
	RefAmplitude = dsp.UnityGain
)

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	db := 20.0 * math.Log10(linear/RefAmplitude)
	if db < MinDB {
		return MinDB
	}
	return db
}

// DbToLinear converts a decibel value to linear amplitude: 10^(dB/20).
// 0 dB is exactly 1. Values below MinDB (including -Inf) are floored.
func DbToLinear(db float64) float64 {
	if db == 0 {
		return RefAmplitude
	}
	if !(db > MinDB) { // also catches NaN
		db = MinDB
	}
	return RefAmplitude * math.Pow(10.0, db/20.0)
}

// DbToLinear32 is the float32 version of DbToLinear.
// The result is computed in float64 and stays a normal float32 down to MinDB.
func DbToLinear32(db float32) float32 {
	return float32(DbToLinear(float64(db)))
}

// Apply applies a gain factor to a sample.
func Apply(sample, gain float32) float32 {
	return sample * gain
}

// ApplyBuffer applies gain to an entire buffer in-place.
func ApplyBuffer(buffer []float32, gain float32) {
	for i := range buffer {
		buffer[i] *= gain
	}
}

// ApplyDbBuffer applies dB gain to an entire buffer in-place.
// The conversion happens once, not per sample.
func ApplyDbBuffer(buffer []float32, db float32) {
	ApplyBuffer(buffer, DbToLinear32(db))
}

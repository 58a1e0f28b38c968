package editor

import (
	"math"

	"github.com/justyntemme/gainknob/pkg/framework/param"
)

// Interaction defaults
const (
	// DefaultDragSensitivity is the drag distance in pixels for the full range
	DefaultDragSensitivity = 250.0
	// ScrollStep is the value change per scroll notch, in dB
	ScrollStep = 0.5
)

// DragValue returns the value after a vertical drag of dy pixels.
// Dragging up (negative dy) increases the value. The result is clamped to rng.
func DragValue(value, dy, sensitivity float64, rng param.Range) float64 {
	if !(sensitivity > 0) {
		sensitivity = DefaultDragSensitivity
	}
	if math.IsNaN(dy) || math.IsInf(dy, 0) {
		return rng.Clamp(value)
	}
	return rng.Clamp(value - dy/sensitivity*rng.Span())
}

// ScrollValue returns the value after a scroll of dy. Any upward scroll is one step up.
func ScrollValue(value, dy float64, rng param.Range) float64 {
	switch {
	case dy > 0:
		value += ScrollStep
	case dy < 0:
		value -= ScrollStep
	}
	return rng.Clamp(value)
}

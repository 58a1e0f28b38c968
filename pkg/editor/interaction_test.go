package editor

import (
	"math"
	"testing"

	"github.com/justyntemme/gainknob/pkg/framework/param"
)

var wide = param.Range{Min: -20, Max: 20}

func TestDragValue(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		dy          float64
		sensitivity float64
		want        float64
	}{
		{"Full drag up", -20, -250, 250, 20},
		{"Quarter drag up", 0, -62.5, 250, 10},
		{"Drag down", 0, 25, 250, -4},
		{"Clamped", 15, -250, 250, 20},
		{"Default sensitivity", 0, -125, 0, 20},
		{"NaN delta", 3, math.NaN(), 250, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DragValue(tt.value, tt.dy, tt.sensitivity, wide)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DragValue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDragIsRelative(t *testing.T) {
	// The same drag from different values moves by the same amount
	a := DragValue(-5, -10, 250, wide) - (-5)
	b := DragValue(5, -10, 250, wide) - 5
	if math.Abs(a-b) > 1e-12 {
		t.Errorf("drag deltas differ: %v vs %v", a, b)
	}
}

func TestScrollValue(t *testing.T) {
	if got := ScrollValue(0, 1, wide); got != 0.5 {
		t.Errorf("scroll up = %v", got)
	}
	if got := ScrollValue(0, -3, wide); got != -0.5 {
		t.Errorf("scroll down = %v", got)
	}
	if got := ScrollValue(20, 1, wide); got != 20 {
		t.Errorf("scroll past max = %v", got)
	}
	if got := ScrollValue(2, 0, wide); got != 2 {
		t.Errorf("no scroll = %v", got)
	}
}

package oscillator

import (
	"math"
	"testing"
)

func TestSinePhaseContinuity(t *testing.T) {
	// 12 kHz at 48 kHz: exactly four samples per cycle
	osc := New(48000)
	osc.SetFrequency(12000)

	want := []float64{0, 1, 0, -1, 0, 1}
	for i, w := range want {
		if got := float64(osc.Sine()); math.Abs(got-w) > 1e-6 {
			t.Errorf("sample %d = %f, want %f", i, got, w)
		}
	}
}

func TestProcessSineLevel(t *testing.T) {
	osc := New(48000)
	osc.SetFrequency(1000)

	buf := make([]float32, 480)
	osc.ProcessSine(buf, 0.5)

	var peak float32
	for _, s := range buf {
		if s > peak {
			peak = s
		}
		if s < -0.5001 || s > 0.5001 {
			t.Fatalf("sample %f exceeds level", s)
		}
	}
	if peak < 0.49 {
		t.Errorf("peak = %f, want ~0.5", peak)
	}
}

func TestZeroSampleRate(t *testing.T) {
	osc := New(0)
	for i := 0; i < 4; i++ {
		if s := osc.Sine(); s != 0 {
			t.Fatalf("expected silence at zero sample rate, got %f", s)
		}
	}
}

package editor

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/justyntemme/gainknob/pkg/dial"
	"github.com/justyntemme/gainknob/pkg/framework/param"
)

func newKnob(t *testing.T) (*Knob, *param.Parameter) {
	t.Helper()
	test.NewTempApp(t)
	p := param.GainParameter(0, "gain", -20, 20, 0).Build()
	k := NewKnob(p, dial.DefaultLayout(), DefaultDragSensitivity)
	k.Resize(fyne.NewSize(300, 400))
	return k, p
}

func TestKnobInteraction(t *testing.T) {
	k, p := newKnob(t)

	var changes []float64
	k.OnChanged = func(v float64) { changes = append(changes, v) }

	k.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: -62.5}})
	if p.Get() != 10 {
		t.Errorf("after drag = %v, want 10", p.Get())
	}

	k.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -1}})
	if p.Get() != 9.5 {
		t.Errorf("after scroll = %v, want 9.5", p.Get())
	}

	k.DoubleTapped(&fyne.PointEvent{})
	if p.Get() != 0 {
		t.Errorf("after double tap = %v, want default", p.Get())
	}

	// A move that clamps to the current value does not notify
	p.Set(20)
	k.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}})

	if len(changes) != 3 {
		t.Errorf("OnChanged calls = %v, want 3", changes)
	}
}

func TestKnobDraw(t *testing.T) {
	k, _ := newKnob(t)

	var calls int
	k.Render = func(s dial.Surface, b dial.Rect, value float64, rng param.Range, layout dial.Layout) {
		calls++
		if layout.Radius != 2*dial.ReferenceRadius {
			t.Errorf("radius = %v, want scaled to pixel density", layout.Radius)
		}
		if layout.PixelRatio != 2 {
			t.Errorf("pixel ratio = %v, want 2", layout.PixelRatio)
		}
		dial.Render(s, b, value, rng, layout)
	}

	img := k.draw(600, 800)
	if img.Bounds().Dx() != 600 || img.Bounds().Dy() != 800 {
		t.Errorf("image = %v", img.Bounds())
	}
	if calls != 1 {
		t.Errorf("render calls = %d", calls)
	}

	k.Render = dial.Render
	k.draw(0, 0)
}

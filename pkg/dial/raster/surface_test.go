package raster

import (
	"image/color"
	"testing"

	"github.com/justyntemme/gainknob/pkg/dial"
	"github.com/justyntemme/gainknob/pkg/framework/param"
)

var wide = param.Range{Min: -20, Max: 20}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestRenderDefaultDial(t *testing.T) {
	s := NewImage(300, 400)
	defer s.Close()

	dial.Render(s, s.Bounds(), 0, wide, dial.DefaultLayout())
	img := s.Image()

	// Top-left corner is the start of the background gradient
	bg := img.RGBAAt(1, 1)
	if !near(bg.R, 0x22, 2) || !near(bg.G, 0x22, 2) || !near(bg.B, 0x22, 2) {
		t.Errorf("background corner = %+v, want ~#222222", bg)
	}

	// Knob body is red
	g := dial.Compute(s.Bounds(), 0, wide, dial.DefaultLayout())
	knob := img.RGBAAt(int(g.Center.X), int(g.Center.Y))
	if int(knob.R) < int(knob.G)+50 {
		t.Errorf("knob center = %+v, want red", knob)
	}

	// Pointer at 0 dB is straight up, bright
	tip := g.Pointer.Rim
	p := img.RGBAAt(int(tip.X), int(tip.Y+3))
	if p.R < 0xC0 || p.G < 0xC0 {
		t.Errorf("pointer pixel = %+v, want antique white", p)
	}

	// Outer end of the zero tick is scale colored
	zero := g.Ticks[dial.Steps/2]
	mid := dial.Point{X: (zero.Inner.X + zero.Outer.X) / 2, Y: (zero.Inner.Y + zero.Outer.Y) / 2}
	tick := img.RGBAAt(int(mid.X), int(mid.Y))
	if tick.R < 0xA0 {
		t.Errorf("tick pixel = %+v, want light", tick)
	}
}

func TestTextDrawsPixels(t *testing.T) {
	s := NewImage(100, 40)
	defer s.Close()
	box := dial.Rect{W: 100, H: 40}

	s.Text("+20", box, dial.Font{Size: 20}, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	lit := 0
	img := s.Image()
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).A > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("text drew nothing")
	}
}

func TestDegenerateImages(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {-5, 3}, {3, 1}} {
		s := NewImage(size[0], size[1])
		dial.Render(s, s.Bounds(), 0, wide, dial.DefaultLayout())
		s.Close()
	}
}

func TestWithFontsFallsBack(t *testing.T) {
	s := NewImage(50, 20, WithFonts([]byte("not a font"), nil))
	defer s.Close()
	if s.regular == nil || s.bold == nil {
		t.Fatal("invalid font data replaced the built-in fonts")
	}
	s.Text("0", dial.Rect{W: 50, H: 20}, dial.Font{Size: 12, Bold: true}, color.NRGBA{A: 255})
}

func TestGradient(t *testing.T) {
	g := dial.Gradient{
		From:  color.NRGBA{R: 0, A: 255},
		To:    color.NRGBA{R: 200, A: 255},
		Start: dial.Point{X: 0, Y: 0},
		End:   dial.Point{X: 100, Y: 0},
	}
	src := source(g)

	if c := src.At(-10, 0).(color.NRGBA); c.R != 0 {
		t.Errorf("before start = %v", c.R)
	}
	if c := src.At(49, 0).(color.NRGBA); !near(c.R, 100, 2) {
		t.Errorf("middle = %v, want ~100", c.R)
	}
	if c := src.At(500, 0).(color.NRGBA); c.R != 200 {
		t.Errorf("past end = %v", c.R)
	}

	if _, ok := source(dial.Solid(color.NRGBA{A: 255})).(*linearGradient); ok {
		t.Error("solid fill should be uniform")
	}
}

func BenchmarkRender(b *testing.B) {
	s := NewImage(300, 400)
	defer s.Close()
	layout := dial.DefaultLayout()
	for i := 0; i < b.N; i++ {
		dial.Render(s, s.Bounds(), float64(i%40)-20, wide, layout)
	}
}

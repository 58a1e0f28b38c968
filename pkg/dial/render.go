package dial

import (
	"image/color"
	"math"

	"github.com/justyntemme/gainknob/pkg/framework/param"
)

// Font selects a text size and weight. Surfaces pick the actual face.
type Font struct {
	Size float64
	Bold bool
}

// Gradient is a linear fill from From at Start to To at End.
// From == To is a solid fill.
type Gradient struct {
	From, To   color.NRGBA
	Start, End Point
}

// Solid returns a single-color fill
func Solid(c color.NRGBA) Gradient {
	return Gradient{From: c, To: c}
}

// Surface receives draw calls. Implementations clip to their own bounds.
type Surface interface {
	FillRect(r Rect, fill Gradient)
	FillCircle(c Point, radius float64, fill Gradient)
	StrokeCircle(c Point, radius, width float64, col color.NRGBA)
	Line(a, b Point, width float64, col color.NRGBA)
	FillPolygon(pts []Point, col color.NRGBA)
	// Text draws s centered in box
	Text(s string, box Rect, font Font, col color.NRGBA)
}

// Style holds the colors, fonts and texts of a dial
type Style struct {
	BackgroundFrom color.NRGBA
	BackgroundTo   color.NRGBA

	Scale     color.NRGBA
	LabelFont Font
	// Label formats a major tick value; nil uses param.SignedLabel
	Label func(float64) string

	Title         string
	TitleFont     Font
	TitleColor    color.NRGBA
	Subtitle      string
	SubtitleFont  Font
	SubtitleColor color.NRGBA

	Knob          color.NRGBA
	HighlightFrom color.NRGBA
	HighlightTo   color.NRGBA
	Pointer       color.NRGBA
	Rim           color.NRGBA
	RimWidth      float64
}

var antiqueWhite = color.NRGBA{R: 0xFA, G: 0xEB, B: 0xD7, A: 0xFF}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(a*255 + 0.5)
	return c
}

// DefaultStyle is the red knob on brushed dark metal
func DefaultStyle() Style {
	return Style{
		BackgroundFrom: color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF},
		BackgroundTo:   color.NRGBA{R: 0x0F, G: 0x0F, B: 0x0F, A: 0xFF},

		Scale:     withAlpha(antiqueWhite, 0.9),
		LabelFont: Font{Size: LabelSize},
		Label:     param.SignedLabel,

		Title:         "JESSE SHAFER",
		TitleFont:     Font{Size: 24, Bold: true},
		TitleColor:    antiqueWhite,
		Subtitle:      "MODEL 1 - GAIN STAGE",
		SubtitleFont:  Font{Size: 11},
		SubtitleColor: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF},

		Knob:          color.NRGBA{R: 0x8B, A: 0xFF},
		HighlightFrom: withAlpha(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF}, 0.15),
		HighlightTo:   withAlpha(color.NRGBA{}, 0.3),
		Pointer:       antiqueWhite,
		Rim:           withAlpha(color.NRGBA{}, 0.5),
		RimWidth:      1.5,
	}
}

// Layout is the static configuration of a dial
type Layout struct {
	// Radius of the scale at full size; shrunk to fit small bounds
	Radius float64
	// PixelRatio is surface pixels per layout unit; 0 means 1.
	// It scales the label margin and the branding with the surface.
	PixelRatio float64
	Style      Style
}

func (l Layout) pixelRatio() float64 {
	if !(l.PixelRatio > 0) || math.IsInf(l.PixelRatio, 0) {
		return 1
	}
	return l.PixelRatio
}

// DefaultLayout returns the full size layout with the default style
func DefaultLayout() Layout {
	return Layout{Radius: ReferenceRadius, Style: DefaultStyle()}
}

// RenderFunc draws a dial. Swapping styles means passing a different function or Layout.
type RenderFunc func(s Surface, bounds Rect, value float64, rng param.Range, layout Layout)

var _ RenderFunc = Render

// Render draws the background, scale, branding and knob for value within rng
func Render(s Surface, bounds Rect, value float64, rng param.Range, layout Layout) {
	g := Compute(bounds, value, rng, layout)
	st := layout.Style

	b := g.Bounds
	s.FillRect(b, Gradient{
		From:  st.BackgroundFrom,
		To:    st.BackgroundTo,
		Start: Point{X: b.X, Y: b.Y},
		End:   Point{X: b.X + b.W, Y: b.Y + b.H},
	})

	labelFont := st.LabelFont
	labelFont.Size *= g.Scale
	for i := range g.Ticks {
		t := &g.Ticks[i]
		s.Line(t.Inner, t.Outer, t.Thickness, st.Scale)
		if t.HasLabel {
			s.Text(t.Label, t.LabelBox, labelFont, st.Scale)
		}
	}

	if st.Title != "" {
		titleFont := st.TitleFont
		titleFont.Size *= g.PixelRatio
		s.Text(st.Title, g.TitleBox, titleFont, st.TitleColor)
	}
	if st.Subtitle != "" {
		subtitleFont := st.SubtitleFont
		subtitleFont.Size *= g.PixelRatio
		s.Text(st.Subtitle, g.SubtitleBox, subtitleFont, st.SubtitleColor)
	}

	kr := g.KnobRadius
	s.FillCircle(g.Center, kr, Solid(st.Knob))
	s.FillCircle(g.Center, kr, Gradient{
		From:  st.HighlightFrom,
		To:    st.HighlightTo,
		Start: Point{X: g.Center.X, Y: g.Center.Y - kr},
		End:   Point{X: g.Center.X, Y: g.Center.Y + kr},
	})
	s.FillPolygon(g.Pointer.Outline[:], st.Pointer)
	s.StrokeCircle(g.Center, kr, st.RimWidth, st.Rim)
}

package raster

import (
	"image"
	"image/color"

	"github.com/justyntemme/gainknob/pkg/dial"
)

// linearGradient is an unbounded image whose color varies along Start→End
type linearGradient struct {
	g      dial.Gradient
	dx, dy float64
	len2   float64
}

func source(g dial.Gradient) image.Image {
	if g.From == g.To {
		return image.NewUniform(g.From)
	}
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	return &linearGradient{g: g, dx: dx, dy: dy, len2: dx*dx + dy*dy}
}

func (l *linearGradient) ColorModel() color.Model {
	return color.NRGBAModel
}

func (l *linearGradient) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (l *linearGradient) At(x, y int) color.Color {
	t := 0.0
	if l.len2 > 0 {
		px, py := float64(x)+0.5-l.g.Start.X, float64(y)+0.5-l.g.Start.Y
		t = (px*l.dx + py*l.dy) / l.len2
	}
	if !(t > 0) {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return lerpColor(l.g.From, l.g.To, t)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

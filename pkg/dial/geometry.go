// Package dial computes and draws the calibrated gain scale and knob.
//
// Everything is derived from the bounds and the parameter value on each
// call. Nothing is cached between calls, so resizes need no bookkeeping.
package dial

import (
	"math"

	"github.com/justyntemme/gainknob/pkg/framework/param"
)

// Sweep and scale constants. Angles are radians, 0 at 12 o'clock, clockwise positive.
const (
	StartAngle = -2.1
	EndAngle   = 2.1
	Steps      = 16
	NumTicks   = Steps + 1

	// ReferenceRadius is the scale radius all lengths below are given at
	ReferenceRadius = 95.0
	// MinRadius is the floor for tiny or degenerate bounds
	MinRadius = 1.0

	MajorLength    = 15.0
	MidLength      = 10.0
	MinorLength    = 5.0
	MajorThickness = 2.5
	TickThickness  = 1.0

	LabelOffset = 35.0
	LabelWidth  = 50.0
	LabelHeight = 20.0
	LabelSize   = 20.0

	// LabelMargin is the room kept outside the scale radius for labels
	LabelMargin = LabelOffset + LabelHeight/2

	CenterOffsetY = 20.0
	KnobRatio     = 0.42

	PointerThickness   = 3.5
	PointerLengthRatio = 0.8
	PointerCorner      = 1.0

	cornerSegments = 4
	// PointerOutlinePoints is the vertex count of the pointer outline
	PointerOutlinePoints = 4 * (cornerSegments + 1)
)

// Point is a position in surface coordinates (y grows downward)
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box with its top-left corner at X, Y
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the box
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TickClass orders ticks by visual weight
type TickClass int

const (
	Minor TickClass = iota
	Mid
	Major
)

// String returns the class name
func (c TickClass) String() string {
	switch c {
	case Major:
		return "major"
	case Mid:
		return "mid"
	default:
		return "minor"
	}
}

// IsMajor reports whether tick i carries a label
func IsMajor(i int) bool {
	return i%4 == 0
}

// IsMid reports whether tick i is at least a medium tick
func IsMid(i int) bool {
	return i%2 == 0
}

// Classify returns the class of tick i
func Classify(i int) TickClass {
	switch {
	case IsMajor(i):
		return Major
	case IsMid(i):
		return Mid
	default:
		return Minor
	}
}

// TickAngle returns the angle of tick i
func TickAngle(i int) float64 {
	return param.Lerp(StartAngle, EndAngle, float64(i)/Steps)
}

// PointerAngle maps a normalized value onto the sweep.
// NaN is treated as 0; values outside [0, 1] are clamped.
func PointerAngle(normalized float64) float64 {
	if !(normalized >= 0) {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	return param.Lerp(StartAngle, EndAngle, normalized)
}

// LabelValue returns the scale value printed at tick i for rng
func LabelValue(rng param.Range, i int) float64 {
	return param.Lerp(rng.Min, rng.Max, float64(i)/Steps)
}

// OnCircumference returns the point at distance r from c along angle a
func OnCircumference(c Point, r, a float64) Point {
	return Point{X: c.X + r*math.Sin(a), Y: c.Y - r*math.Cos(a)}
}

// Tick is one scale mark
type Tick struct {
	Index     int
	Angle     float64
	Class     TickClass
	Inner     Point
	Outer     Point
	Length    float64
	Thickness float64

	// Set for major ticks only
	HasLabel   bool
	LabelValue float64
	Label      string
	LabelBox   Rect
}

// Pointer is the knob indicator, a rounded bar running inward from the knob rim
type Pointer struct {
	Angle     float64
	Rim       Point
	Inner     Point
	Length    float64
	Thickness float64
	Outline   [PointerOutlinePoints]Point
}

// Geometry is everything needed to draw one frame
type Geometry struct {
	Bounds     Rect
	Center     Point
	Radius     float64
	Scale      float64
	PixelRatio float64
	KnobRadius float64
	Normalized float64

	Ticks   [NumTicks]Tick
	Pointer Pointer

	TitleBox    Rect
	SubtitleBox Rect
}

// finite replaces NaN and infinities with 0
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// sanitize makes bounds finite with non-negative size
func sanitize(b Rect) Rect {
	b = Rect{X: finite(b.X), Y: finite(b.Y), W: finite(b.W), H: finite(b.H)}
	if b.W < 0 {
		b.W = 0
	}
	if b.H < 0 {
		b.H = 0
	}
	return b
}

// FitRadius shrinks the wanted radius so the scale and its labels fit the bounds
func FitRadius(bounds Rect, want float64) float64 {
	return fitRadius(sanitize(bounds), want, LabelMargin)
}

func fitRadius(b Rect, want, margin float64) float64 {
	if !(want > 0) || math.IsInf(want, 0) {
		want = ReferenceRadius
	}
	if avail := math.Min(b.W, b.H)/2 - margin; avail < want {
		want = avail
	}
	if !(want >= MinRadius) {
		want = MinRadius
	}
	return want
}

// Compute derives the frame geometry for value within rng
func Compute(bounds Rect, value float64, rng param.Range, layout Layout) Geometry {
	b := sanitize(bounds)
	ratio := layout.pixelRatio()
	radius := fitRadius(b, layout.Radius, LabelMargin*ratio)
	scale := radius / ReferenceRadius

	g := Geometry{
		Bounds:     b,
		Radius:     radius,
		Scale:      scale,
		PixelRatio: ratio,
		KnobRadius: radius * KnobRatio,
	}
	c := b.Center()
	g.Center = Point{X: c.X, Y: c.Y + CenterOffsetY*scale}

	for i := range g.Ticks {
		g.Ticks[i] = computeTick(g.Center, radius, scale, rng, i, layout.Style.Label)
	}

	g.Normalized = rng.Normalize(value)
	if math.IsNaN(g.Normalized) {
		g.Normalized = 0
	}
	g.Pointer = computePointer(g.Center, g.KnobRadius, scale, PointerAngle(g.Normalized))

	g.TitleBox = Rect{X: b.X, Y: b.Y + 30*ratio, W: b.W, H: 30 * ratio}
	g.SubtitleBox = Rect{X: b.X, Y: b.Y + 55*ratio, W: b.W, H: 20 * ratio}
	return g
}

func computeTick(c Point, radius, scale float64, rng param.Range, i int, format func(float64) string) Tick {
	t := Tick{Index: i, Angle: TickAngle(i), Class: Classify(i)}

	switch t.Class {
	case Major:
		t.Length, t.Thickness = MajorLength, MajorThickness
	case Mid:
		t.Length, t.Thickness = MidLength, TickThickness
	default:
		t.Length, t.Thickness = MinorLength, TickThickness
	}
	t.Length *= scale
	t.Thickness *= scale

	t.Inner = OnCircumference(c, radius, t.Angle)
	t.Outer = OnCircumference(c, radius+t.Length, t.Angle)

	if t.Class == Major {
		if format == nil {
			format = param.SignedLabel
		}
		t.HasLabel = true
		t.LabelValue = LabelValue(rng, i)
		t.Label = format(t.LabelValue)
		anchor := OnCircumference(c, radius+LabelOffset*scale, t.Angle)
		w, h := LabelWidth*scale, LabelHeight*scale
		t.LabelBox = Rect{X: anchor.X - w/2, Y: anchor.Y - h/2, W: w, H: h}
	}
	return t
}

func computePointer(c Point, knobRadius, scale, angle float64) Pointer {
	p := Pointer{
		Angle:     angle,
		Length:    knobRadius * PointerLengthRatio,
		Thickness: PointerThickness * scale,
	}
	p.Rim = OnCircumference(c, knobRadius, angle)
	p.Inner = OnCircumference(c, knobRadius-p.Length, angle)

	// Outline in knob-local coordinates, pointing up, then rotated into place
	half := p.Thickness / 2
	corner := math.Min(PointerCorner*scale, math.Min(half, p.Length/2))
	top, bottom := -knobRadius, -knobRadius+p.Length
	centers := [4]Point{
		{X: -half + corner, Y: top + corner},
		{X: half - corner, Y: top + corner},
		{X: half - corner, Y: bottom - corner},
		{X: -half + corner, Y: bottom - corner},
	}
	sin, cos := math.Sincos(angle)
	n := 0
	for k, cc := range centers {
		start := math.Pi + float64(k)*math.Pi/2
		for s := 0; s <= cornerSegments; s++ {
			theta := start + float64(s)*(math.Pi/2)/cornerSegments
			x := cc.X + corner*math.Cos(theta)
			y := cc.Y + corner*math.Sin(theta)
			p.Outline[n] = Point{X: c.X + x*cos - y*sin, Y: c.Y + x*sin + y*cos}
			n++
		}
	}
	return p
}

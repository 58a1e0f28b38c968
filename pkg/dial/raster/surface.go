// Package raster implements dial.Surface on an *image.RGBA.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/justyntemme/gainknob/pkg/dial"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Option configures a Surface
type Option func(*Surface)

// WithFonts replaces the built-in Go fonts with TTF/OTF data.
// Data that does not parse keeps the built-in font.
func WithFonts(regular, bold []byte) Option {
	return func(s *Surface) {
		if f, err := opentype.Parse(regular); err == nil {
			s.regular = f
		}
		if f, err := opentype.Parse(bold); err == nil {
			s.bold = f
		}
	}
}

type faceKey struct {
	size float64
	bold bool
}

// Surface draws anti-aliased paths and text into an image.
// It is not safe for concurrent use.
type Surface struct {
	img     *image.RGBA
	z       *vector.Rasterizer
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

// New wraps img
func New(img *image.RGBA, opts ...Option) *Surface {
	s := &Surface{
		img:   img,
		z:     vector.NewRasterizer(0, 0),
		faces: make(map[faceKey]font.Face),
	}
	s.regular, _ = opentype.Parse(goregular.TTF)
	s.bold, _ = opentype.Parse(gobold.TTF)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewImage allocates a w×h image and wraps it. Negative sizes become 0.
func NewImage(w, h int, opts ...Option) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return New(image.NewRGBA(image.Rect(0, 0, w, h)), opts...)
}

// Image returns the target image
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Bounds returns the image bounds as a dial rectangle
func (s *Surface) Bounds() dial.Rect {
	b := s.img.Bounds()
	return dial.Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), W: float64(b.Dx()), H: float64(b.Dy())}
}

// Close releases cached font faces
func (s *Surface) Close() error {
	for k, f := range s.faces {
		f.Close()
		delete(s.faces, k)
	}
	return nil
}

func (s *Surface) empty() bool {
	b := s.img.Bounds()
	return b.Dx() <= 0 || b.Dy() <= 0
}

func finite(pts ...dial.Point) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// begin resets the rasterizer to the image size
func (s *Surface) begin() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
}

func (s *Surface) moveTo(p dial.Point) {
	o := s.img.Bounds().Min
	s.z.MoveTo(float32(p.X-float64(o.X)), float32(p.Y-float64(o.Y)))
}

func (s *Surface) lineTo(p dial.Point) {
	o := s.img.Bounds().Min
	s.z.LineTo(float32(p.X-float64(o.X)), float32(p.Y-float64(o.Y)))
}

func (s *Surface) polygon(pts []dial.Point) {
	if len(pts) < 3 {
		return
	}
	s.moveTo(pts[0])
	for _, p := range pts[1:] {
		s.lineTo(p)
	}
	s.z.ClosePath()
}

// circle adds a circle path. Reverse winding cuts a hole in an enclosing path.
func (s *Surface) circle(c dial.Point, r float64, reverse bool) {
	n := int(2 * math.Pi * r / 2)
	if n < 24 {
		n = 24
	} else if n > 512 {
		n = 512
	}
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		p := dial.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
		if i == 0 {
			s.moveTo(p)
		} else {
			s.lineTo(p)
		}
	}
	s.z.ClosePath()
}

func (s *Surface) paint(src image.Image) {
	b := s.img.Bounds()
	s.z.Draw(s.img, b, src, b.Min)
}

// FillRect fills r with fill
func (s *Surface) FillRect(r dial.Rect, fill dial.Gradient) {
	if s.empty() || !(r.W > 0 && r.H > 0) {
		return
	}
	corners := []dial.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
	if !finite(corners...) {
		return
	}
	s.begin()
	s.polygon(corners)
	s.paint(source(fill))
}

// FillCircle fills a disc
func (s *Surface) FillCircle(c dial.Point, radius float64, fill dial.Gradient) {
	if s.empty() || !(radius > 0) || !finite(c) || math.IsInf(radius, 0) {
		return
	}
	s.begin()
	s.circle(c, radius, false)
	s.paint(source(fill))
}

// StrokeCircle draws a ring of the given width centered on the radius
func (s *Surface) StrokeCircle(c dial.Point, radius, width float64, col color.NRGBA) {
	if s.empty() || !(radius > 0) || !(width > 0) || !finite(c) || math.IsInf(radius+width, 0) {
		return
	}
	s.begin()
	s.circle(c, radius+width/2, false)
	if inner := radius - width/2; inner > 0 {
		s.circle(c, inner, true)
	}
	s.paint(image.NewUniform(col))
}

// Line draws a segment of the given width with butt ends
func (s *Surface) Line(a, b dial.Point, width float64, col color.NRGBA) {
	if s.empty() || !(width > 0) || !finite(a, b) {
		return
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	s.begin()
	s.polygon([]dial.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	})
	s.paint(image.NewUniform(col))
}

// FillPolygon fills a closed polygon
func (s *Surface) FillPolygon(pts []dial.Point, col color.NRGBA) {
	if s.empty() || !finite(pts...) {
		return
	}
	s.begin()
	s.polygon(pts)
	s.paint(image.NewUniform(col))
}

// Text draws str centered in box. Sizes below one pixel draw nothing.
func (s *Surface) Text(str string, box dial.Rect, f dial.Font, col color.NRGBA) {
	if s.empty() || str == "" || !(f.Size >= 1) || !finite(box.Center()) {
		return
	}
	face := s.face(f)
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	adv := d.MeasureString(str)
	m := face.Metrics()
	c := box.Center()
	x := fixed.Int26_6(c.X*64) - adv/2
	y := fixed.Int26_6(c.Y*64) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(str)
}

// face returns a cached face for f, falling back to the bitmap font
func (s *Surface) face(f dial.Font) font.Face {
	key := faceKey{size: math.Round(f.Size*2) / 2, bold: f.Bold}
	if face, ok := s.faces[key]; ok {
		return face
	}
	ttf := s.regular
	if f.Bold && s.bold != nil {
		ttf = s.bold
	}
	var face font.Face = basicfont.Face7x13
	if ttf != nil {
		if ff, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: key.size, DPI: 72, Hinting: font.HintingFull}); err == nil {
			face = ff
		}
	}
	s.faces[key] = face
	return face
}

var _ dial.Surface = (*Surface)(nil)

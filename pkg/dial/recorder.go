package dial

import "image/color"

// Op identifies a recorded draw call
type Op int

const (
	OpFillRect Op = iota
	OpFillCircle
	OpStrokeCircle
	OpLine
	OpFillPolygon
	OpText
)

// Command is one recorded draw call. Only the fields of its Op are set.
type Command struct {
	Op     Op
	Rect   Rect
	Points []Point
	Radius float64
	Width  float64
	Fill   Gradient
	Color  color.NRGBA
	Text   string
	Font   Font
}

// Recorder is a Surface that keeps every call, for tests and headless inspection
type Recorder struct {
	Commands []Command
}

func (r *Recorder) FillRect(rect Rect, fill Gradient) {
	r.Commands = append(r.Commands, Command{Op: OpFillRect, Rect: rect, Fill: fill})
}

func (r *Recorder) FillCircle(c Point, radius float64, fill Gradient) {
	r.Commands = append(r.Commands, Command{Op: OpFillCircle, Points: []Point{c}, Radius: radius, Fill: fill})
}

func (r *Recorder) StrokeCircle(c Point, radius, width float64, col color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeCircle, Points: []Point{c}, Radius: radius, Width: width, Color: col})
}

func (r *Recorder) Line(a, b Point, width float64, col color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: OpLine, Points: []Point{a, b}, Width: width, Color: col})
}

func (r *Recorder) FillPolygon(pts []Point, col color.NRGBA) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.Commands = append(r.Commands, Command{Op: OpFillPolygon, Points: cp, Color: col})
}

func (r *Recorder) Text(s string, box Rect, font Font, col color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: OpText, Rect: box, Text: s, Font: font, Color: col})
}

// Count returns how many calls of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns the recorded strings in draw order
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Commands {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

var _ Surface = (*Recorder)(nil)

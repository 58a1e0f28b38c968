package param

import "math"

// Range is a closed interval of plain parameter values.
type Range struct {
	Min float64
	Max float64
}

// NewRange creates a range, swapping the bounds if given in reverse order.
func NewRange(min, max float64) Range {
	if min > max {
		min, max = max, min
	}
	return Range{Min: min, Max: max}
}

// Valid reports whether the range has finite bounds with Min < Max.
func (r Range) Valid() bool {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return false
	}
	return r.Min < r.Max
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return r.Min + r.Span()/2
}

// Contains reports whether v lies inside [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Normalize maps v into [0, 1]. A degenerate range maps everything to 0.
func (r Range) Normalize(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	n := (v - r.Min) / r.Span()
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Denormalize maps n in [0, 1] back to a plain value. n is clamped first.
func (r Range) Denormalize(n float64) float64 {
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}
	return r.Min + n*r.Span()
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

package geom

import (
	"math"

	"curvesweep/internal/calculus"
)

// Kind tags a segment for the renderer's palette.
type Kind uint8

const (
	Tangent Kind = iota
	Normal
)

func (k Kind) String() string {
	switch k {
	case Tangent:
		return "tangent"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// Segment is a drawable line segment.
type Segment struct {
	P0, P1 Point
	Kind   Kind
}

// Project returns the two points on l at distance length/2 from center, one
// on each side. P0 lies at center − d and P1 at center + d, where d points
// along the line. ok is false when l has no direction (A = B = 0) or when l
// or center is not finite; no segment can be drawn then.
//
// center is assumed to lie on l.
func Project(l calculus.Line, center Point, length float64) (p0, p1 Point, ok bool) {
	a, b := l.A, l.B
	if !finite(a) || !finite(b) || !center.IsFinite() {
		return Point{}, Point{}, false
	}
	// Hypot and the ratios a/n, b/n stay in range for tiny or huge
	// coefficients where a*a+b*b would not.
	n := math.Hypot(a, b)
	half := length / 2

	var d Vec
	switch {
	case a != 0:
		d.Y = half * (a / n)
		d.X = -half * (b / n)
	case b != 0:
		d.X = half * (b / n)
		d.Y = -half * (a / n)
	default:
		return Point{}, Point{}, false
	}
	p0, p1 = center.Add(d.Neg()), center.Add(d)
	if !p0.IsFinite() || !p1.IsFinite() {
		return Point{}, Point{}, false
	}
	return p0, p1, true
}

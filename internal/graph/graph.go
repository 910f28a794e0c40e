// Package graph samples parametric curves into polylines and builds the
// tangent/normal segment pair at a point of the curve.
package graph

import (
	"curvesweep/internal/calculus"
	"curvesweep/internal/geom"
)

// Curve is the parametric curve (X(t), Y(t)) over [Start, End].
type Curve struct {
	Name       string
	X, Y       calculus.Func
	Start, End float64
}

// At returns the point of c at parameter t.
func (c Curve) At(t float64) geom.Point {
	return geom.Pt(c.X(t), c.Y(t))
}

// Sample is a curve point together with its parameter value.
type Sample struct {
	T float64
	P geom.Point
}

// Polyline is an ordered sequence of curve samples.
type Polyline []Sample

// Plot evaluates (x(t), y(t)) at steps+1 evenly spaced values of t from start
// to end inclusive. It panics if steps is not positive.
func Plot(x, y calculus.Func, start, end float64, steps int) Polyline {
	if steps <= 0 {
		panic("graph: Plot with non-positive step count")
	}
	pl := make(Polyline, 0, steps+1)
	h := (end - start) / float64(steps)
	for i := 0; i <= steps; i++ {
		t := start + float64(i)*h
		if i == steps {
			t = end
		}
		pl = append(pl, Sample{T: t, P: geom.Pt(x(t), y(t))})
	}
	return pl
}

// Runs splits pl at non-finite samples and returns the maximal runs of
// consecutive finite points. Runs shorter than two points are dropped.
func (pl Polyline) Runs() [][]geom.Point {
	var (
		runs [][]geom.Point
		cur  []geom.Point
	)
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}
	for _, s := range pl {
		if !s.P.IsFinite() {
			flush()
			continue
		}
		cur = append(cur, s.P)
	}
	flush()
	return runs
}

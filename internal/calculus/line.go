package calculus

import (
	"log/slog"
	"math"
)

// Line is the implicit line A·x + B·y = C.
type Line struct {
	A, B, C float64
}

// Degenerate reports whether the line has no direction (A = B = 0).
func (l Line) Degenerate() bool {
	return l.A == 0 && l.B == 0
}

// IsFinite reports whether no coefficient is NaN or infinite.
func (l Line) IsFinite() bool {
	return !math.IsNaN(l.A+l.B+l.C) && !math.IsInf(l.A, 0) && !math.IsInf(l.B, 0) && !math.IsInf(l.C, 0)
}

// Eval returns A·x + B·y − C, which is zero for points on the line.
func (l Line) Eval(x, y float64) float64 {
	return l.A*x + l.B*y - l.C
}

// Tangent returns the tangent line of the curve (x(t), y(t)) at t0.
func Tangent(x, y Func, t0 float64, log *slog.Logger) Line {
	dx, dy := Derivative(x, log)(t0), Derivative(y, log)(t0)
	vx, vy := x(t0), y(t0)
	return Line{A: dy, B: -dx, C: dy*vx - dx*vy}
}

// Normal returns the normal line of the curve (x(t), y(t)) at t0.
func Normal(x, y Func, t0 float64, log *slog.Logger) Line {
	dx, dy := Derivative(x, log)(t0), Derivative(y, log)(t0)
	vx, vy := x(t0), y(t0)
	return Line{A: dx, B: dy, C: dx*vx + dy*vy}
}

// Package calculus approximates derivatives of scalar functions and derives
// tangent and normal lines of parametric curves from them.
package calculus

import (
	"log/slog"
	"math"
)

// Epsilon is the finite-difference step.
const Epsilon = 1e-3

// Func is a scalar function of one real parameter.
type Func func(t float64) float64

// Estimate approximates f'(t). The forward difference is preferred; the
// backward difference is used when the forward one is NaN. ok is false when
// both are NaN, in which case d is 0.
func Estimate(f Func, t float64) (d float64, ok bool) {
	ft := f(t)
	if r := (f(t+Epsilon) - ft) / Epsilon; !math.IsNaN(r) {
		return r, true
	}
	if l := (ft - f(t-Epsilon)) / Epsilon; !math.IsNaN(l) {
		return l, true
	}
	return 0, false
}

// Derivative returns an approximation of f'. Where no estimate exists the
// returned function logs a warning and yields 0, so callers never see NaN.
func Derivative(f Func, log *slog.Logger) Func {
	if log == nil {
		log = discard
	}
	return func(t float64) float64 {
		d, ok := Estimate(f, t)
		if !ok {
			log.Warn("non-existent derivative", "t", t)
		}
		return d
	}
}

var discard = slog.New(slog.DiscardHandler)

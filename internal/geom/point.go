// Package geom holds the 2D value types handed to renderers and projects
// implicit lines onto drawable segments.
package geom

import (
	"fmt"
	"math"
)

// Point is a position in curve space.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec is a displacement in curve space.
type Vec struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vec {
	return Vec{X: p.X - o.X, Y: p.Y - o.Y}
}

// Midpoint returns the point halfway between p and o.
func (p Point) Midpoint(o Point) Point {
	return Point{X: (p.X + o.X) / 2, Y: (p.Y + o.Y) / 2}
}

// Distance returns the euclidean distance between p and o.
func (p Point) Distance(o Point) float64 {
	return p.Sub(o).Len()
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return finite(p.X) && finite(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Neg returns −v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Package config holds the startup configuration of the sweep viewer.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"curvesweep/internal/graph"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Config is built once at startup and passed by value afterwards.
type Config struct {
	// Window
	Title         string
	Width, Height int
	FPS           int

	Curve graph.Curve
	// Steps is the number of intervals the curve is sampled at.
	Steps int
	// Cycle is the time of one full sweep of the parameter domain.
	Cycle time.Duration
	// SegmentLength is the length of the tangent and normal segments, in
	// curve units.
	SegmentLength float64
	LineWidth     float64
	Palette       Palette
}

// Default returns the configuration of the folium curve in an 800×800
// window at 60 frames per second.
func Default() Config {
	return Config{
		Title:         "Graph",
		Width:         800,
		Height:        800,
		FPS:           60,
		Curve:         Folium(),
		Steps:         1000,
		Cycle:         10 * time.Second,
		SegmentLength: 100,
		LineWidth:     2,
		Palette:       DefaultPalette,
	}
}

// Tick returns the duration of one logical animation tick.
func (c Config) Tick() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FPS <= 0 || c.Tick() <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Curve.X == nil || c.Curve.Y == nil:
		return fmt.Errorf("%w: curve %q has no component function", ErrInvalid, c.Curve.Name)
	case math.IsNaN(c.Curve.Start) || math.IsInf(c.Curve.Start, 0) ||
		math.IsNaN(c.Curve.End) || math.IsInf(c.Curve.End, 0):
		return fmt.Errorf("%w: domain [%g, %g] is not finite", ErrInvalid, c.Curve.Start, c.Curve.End)
	case c.Curve.Start >= c.Curve.End:
		return fmt.Errorf("%w: empty domain [%g, %g]", ErrInvalid, c.Curve.Start, c.Curve.End)
	case c.Steps <= 0:
		return fmt.Errorf("%w: steps %d", ErrInvalid, c.Steps)
	case c.Cycle <= 0:
		return fmt.Errorf("%w: cycle %v", ErrInvalid, c.Cycle)
	case !(c.SegmentLength > 0) || math.IsInf(c.SegmentLength, 0):
		return fmt.Errorf("%w: segment length %g", ErrInvalid, c.SegmentLength)
	case !(c.LineWidth > 0):
		return fmt.Errorf("%w: line width %g", ErrInvalid, c.LineWidth)
	}
	return nil
}

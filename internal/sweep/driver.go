// Package sweep animates the tangent and normal of a curve with a point that
// sweeps the parameter domain at a fixed logical rate.
package sweep

import (
	"log/slog"
	"time"

	"curvesweep/internal/config"
	"curvesweep/internal/geom"
	"curvesweep/internal/graph"
)

// Driver owns the sweep parameter and the current segment pair. It is not
// safe for concurrent use.
type Driver struct {
	curve  graph.Curve
	length float64
	tick   time.Duration
	step   float64 // parameter advance per tick
	log    *slog.Logger

	t    float64
	acc  time.Duration
	segs []geom.Segment
}

// NewDriver returns a driver positioned at the start of cfg's domain with
// the segment pair for that point already computed. cfg must be valid.
func NewDriver(cfg config.Config, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	c := cfg.Curve
	tick := cfg.Tick()
	d := &Driver{
		curve:  c,
		length: cfg.SegmentLength,
		tick:   tick,
		step:   (c.End - c.Start) / cfg.Cycle.Seconds() * tick.Seconds(),
		log:    log,
		t:      c.Start,
		segs:   make([]geom.Segment, 0, 2),
	}
	d.update()
	return d
}

// Param returns the current sweep parameter.
func (d *Driver) Param() float64 { return d.t }

// Segments returns the current tangent/normal segments. The slice is
// overwritten by the next tick.
func (d *Driver) Segments() []geom.Segment { return d.segs }

// Step advances the sweep by one tick.
func (d *Driver) Step() {
	d.t = Wrap(d.t+d.step, d.curve.Start, d.curve.End)
	d.update()
}

// Advance adds elapsed real time to the accumulator and consumes as many
// whole ticks as it holds. It returns the number of ticks consumed.
func (d *Driver) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		d.acc += elapsed
	}
	n := 0
	for d.acc >= d.tick {
		d.acc -= d.tick
		d.Step()
		n++
	}
	return n
}

func (d *Driver) update() {
	d.segs = graph.AppendAtPoint(d.segs[:0], d.curve, d.t, d.length, d.log)
}

// Wrap folds t into [start, end) by subtracting whole domain lengths, so any
// overshoot past end carries over.
func Wrap(t, start, end float64) float64 {
	for t >= end {
		t -= end - start
	}
	return t
}

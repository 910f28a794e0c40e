package sweep

import (
	"time"

	"curvesweep/internal/geom"
	"curvesweep/internal/graph"
)

// Frame is what a renderer draws each frame: the static curve and the
// current segments. Segments is only valid until Present returns.
type Frame struct {
	Curve    graph.Polyline
	Segments []geom.Segment
	T        float64
}

// Renderer displays frames.
type Renderer interface {
	// PollEvents processes pending input without blocking.
	PollEvents()
	// ShouldClose reports whether a close was requested.
	ShouldClose() bool
	// Present draws f and blocks until it is displayed.
	Present(f Frame) error
}

// Clock reports monotonic time since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// Run drives d and r until r requests close. Each frame polls events,
// consumes the ticks accumulated since the previous frame and presents the
// curve with the current segments.
func Run(d *Driver, curve graph.Polyline, r Renderer, clock Clock) error {
	last := clock.Now()
	for {
		r.PollEvents()
		if r.ShouldClose() {
			return nil
		}
		now := clock.Now()
		d.Advance(now - last)
		last = now

		f := Frame{Curve: curve, Segments: d.Segments(), T: d.Param()}
		if err := r.Present(f); err != nil {
			return err
		}
	}
}

// SystemClock is a Clock backed by the monotonic wall clock.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock returns a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

func (c *SystemClock) Now() time.Duration { return time.Since(c.origin) }

// FixedClock advances by a fixed interval each time it is read. It makes
// runs without a display deterministic.
type FixedClock struct {
	now, interval time.Duration
}

// NewFixedClock returns a clock that advances by interval per read.
func NewFixedClock(interval time.Duration) *FixedClock {
	return &FixedClock{interval: interval}
}

func (c *FixedClock) Now() time.Duration {
	now := c.now
	c.now += c.interval
	return now
}

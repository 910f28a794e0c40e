package graph

import (
	"log/slog"

	"curvesweep/internal/calculus"
	"curvesweep/internal/geom"
)

// AtPoint returns the tangent and normal segments of c at t0, each of the
// given length and centered on c.At(t0). A line without direction yields no
// segment, so the result holds zero, one or two segments.
func AtPoint(c Curve, t0, length float64, log *slog.Logger) []geom.Segment {
	return AppendAtPoint(make([]geom.Segment, 0, 2), c, t0, length, log)
}

// AppendAtPoint is like AtPoint but appends to dst.
func AppendAtPoint(dst []geom.Segment, c Curve, t0, length float64, log *slog.Logger) []geom.Segment {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	center := c.At(t0)
	lines := [...]struct {
		kind geom.Kind
		line calculus.Line
	}{
		{geom.Tangent, calculus.Tangent(c.X, c.Y, t0, log)},
		{geom.Normal, calculus.Normal(c.X, c.Y, t0, log)},
	}
	for _, l := range lines {
		p0, p1, ok := geom.Project(l.line, center, length)
		if !ok {
			if !l.line.IsFinite() || !center.IsFinite() {
				log.Debug("non-finite line", "kind", l.kind, "t", t0, "center", center)
			} else {
				log.Debug("degenerate line", "kind", l.kind, "t", t0)
			}
			continue
		}
		dst = append(dst, geom.Segment{P0: p0, P1: p1, Kind: l.kind})
	}
	return dst
}

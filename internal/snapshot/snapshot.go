// Package snapshot renders sweep frames off-screen with gg and writes them as
// PNG files, for runs without a display.
package snapshot

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/gogpu/gg"

	"curvesweep/internal/config"
	"curvesweep/internal/geom"
	"curvesweep/internal/sweep"
)

// Renderer draws onto an off-screen surface and closes after a fixed number
// of frames.
type Renderer struct {
	dc        *gg.Context
	palette   config.Palette
	lineWidth float64
	frames    int
	presented int
	out       string
	log       *slog.Logger
}

var _ sweep.Renderer = (*Renderer)(nil)

// frameVerb matches a %d verb, with optional flags and width, in an output path.
var frameVerb = regexp.MustCompile(`%[-+ #0]*[0-9]*d`)

// New returns a renderer that closes after frames frames. If out contains a
// %d verb it is used as a format for the frame number and every frame is saved;
// otherwise only the last frame is written to out. An empty out saves
// nothing.
func New(cfg config.Config, frames int, out string, log *slog.Logger) (*Renderer, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("snapshot: frame count %d", frames)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Renderer{
		dc:        gg.NewContext(cfg.Width, cfg.Height),
		palette:   cfg.Palette,
		lineWidth: cfg.LineWidth,
		frames:    frames,
		out:       out,
		log:       log,
	}, nil
}

func (r *Renderer) PollEvents() {}

func (r *Renderer) ShouldClose() bool { return r.presented >= r.frames }

// Present draws f. The origin is at the center of the surface and y points
// up.
func (r *Renderer) Present(f sweep.Frame) error {
	dc := r.dc
	dc.ClearWithColor(gg.FromColor(r.palette.Background))
	dc.Push()
	defer dc.Pop()
	dc.Translate(float64(dc.Width())/2, float64(dc.Height())/2)
	dc.Scale(1, -1)
	dc.SetLineWidth(r.lineWidth)

	dc.SetColor(r.palette.Curve)
	for _, run := range f.Curve.Runs() {
		dc.MoveTo(run[0].X, run[0].Y)
		for _, p := range run[1:] {
			dc.LineTo(p.X, p.Y)
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke curve: %w", err)
		}
	}
	for _, s := range f.Segments {
		if err := r.stroke(s); err != nil {
			return err
		}
	}

	r.presented++
	return r.save(f.T)
}

func (r *Renderer) stroke(s geom.Segment) error {
	r.dc.SetColor(r.palette.Segment(s.Kind))
	r.dc.DrawLine(s.P0.X, s.P0.Y, s.P1.X, s.P1.Y)
	if err := r.dc.Stroke(); err != nil {
		return fmt.Errorf("stroke %v: %w", s.Kind, err)
	}
	return nil
}

func (r *Renderer) save(t float64) error {
	var path string
	switch {
	case r.out == "":
		return nil
	case frameVerb.MatchString(r.out):
		path = fmt.Sprintf(r.out, r.presented)
	case r.presented == r.frames:
		path = r.out
	default:
		return nil
	}
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	r.log.Info("snapshot written", "path", path, "frame", r.presented, "t", t)
	return nil
}

// Close releases the drawing surface.
func (r *Renderer) Close() error {
	return r.dc.Close()
}

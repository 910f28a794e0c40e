// Command curvesweep plots a parametric curve and animates its tangent and
// normal at a point sweeping the parameter domain.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"curvesweep/internal/config"
	"curvesweep/internal/graph"
	"curvesweep/internal/snapshot"
	"curvesweep/internal/sweep"
	"curvesweep/internal/window"
)

func init() {
	// GLFW and GL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		curve    = flag.String("curve", "folium", "curve to plot: "+strings.Join(config.PresetNames(), ", "))
		steps    = flag.Int("steps", 0, "sample count of the curve (0: default)")
		cycle    = flag.Duration("cycle", 0, "duration of one full sweep (0: default)")
		length   = flag.Float64("length", 0, "length of the tangent and normal segments (0: default)")
		fps      = flag.Int("fps", 0, "frame and tick rate (0: default)")
		size     = flag.Int("size", 0, "window width and height in pixels (0: default)")
		headless = flag.Bool("headless", false, "render off-screen instead of opening a window")
		frames   = flag.Int("frames", 120, "frames to render in headless mode")
		out      = flag.String("out", "sweep.png", "headless output PNG; a %d verb saves every frame")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Preset(*curve)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(2)
	}
	if *steps != 0 {
		cfg.Steps = *steps
	}
	if *cycle != 0 {
		cfg.Cycle = *cycle
	}
	if *length != 0 {
		cfg.SegmentLength = *length
	}
	if *fps != 0 {
		cfg.FPS = *fps
	}
	if *size != 0 {
		cfg.Width, cfg.Height = *size, *size
	}

	if err := run(cfg, *headless, *frames, *out, log); err != nil {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, headless bool, frames int, out string, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c := cfg.Curve
	log.Info("plotting",
		"curve", c.Name,
		"domain", fmt.Sprintf("[%g, %g]", c.Start, c.End),
		"steps", cfg.Steps,
		"cycle", cfg.Cycle,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	curve := graph.Plot(c.X, c.Y, c.Start, c.End, cfg.Steps)
	driver := sweep.NewDriver(cfg, log)

	if headless {
		r, err := snapshot.New(cfg, frames, out, log)
		if err != nil {
			return err
		}
		defer r.Close()
		return sweep.Run(driver, curve, r, sweep.NewFixedClock(cfg.Tick()))
	}

	w, err := window.New(cfg, log)
	if err != nil {
		return err
	}
	defer w.Close()
	return sweep.Run(driver, curve, w, w)
}

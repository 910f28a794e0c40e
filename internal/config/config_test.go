package config

import (
	"errors"
	"math"
	"testing"
	"time"

	"curvesweep/internal/geom"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if got, want := c.Tick(), time.Second/60; got != want {
		t.Errorf("tick %v, want %v", got, want)
	}
	if c.Curve.Name != "folium" {
		t.Errorf("default curve %q, want folium", c.Curve.Name)
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range PresetNames() {
		c, err := Preset(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if c.Curve.Name != name {
			t.Errorf("preset %s has curve name %q", name, c.Curve.Name)
		}
	}
}

func TestPresetNames(t *testing.T) {
	want := []string{"cardioid", "circle", "folium", "lissajous", "parabola"}
	if d := cmp.Diff(want, PresetNames()); d != "" {
		t.Error(d)
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, err := Preset("spiral"); !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"sub-nanosecond tick", func(c *Config) { c.FPS = 2_000_000_000 }},
		{"no x", func(c *Config) { c.Curve.X = nil }},
		{"no y", func(c *Config) { c.Curve.Y = nil }},
		{"empty domain", func(c *Config) { c.Curve.Start, c.Curve.End = 1, 1 }},
		{"reversed domain", func(c *Config) { c.Curve.Start, c.Curve.End = 2, 1 }},
		{"infinite domain", func(c *Config) { c.Curve.End = math.Inf(1) }},
		{"nan domain", func(c *Config) { c.Curve.Start = math.NaN() }},
		{"zero steps", func(c *Config) { c.Steps = 0 }},
		{"zero cycle", func(c *Config) { c.Cycle = 0 }},
		{"zero segment length", func(c *Config) { c.SegmentLength = 0 }},
		{"nan segment length", func(c *Config) { c.SegmentLength = math.NaN() }},
		{"zero line width", func(c *Config) { c.LineWidth = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mod(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("got %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPaletteSegment(t *testing.T) {
	p := DefaultPalette
	if p.Segment(geom.Tangent) != p.Tangent {
		t.Error("tangent color mismatch")
	}
	if p.Segment(geom.Normal) != p.Normal {
		t.Error("normal color mismatch")
	}
}

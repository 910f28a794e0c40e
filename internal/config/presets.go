package config

import (
	"fmt"
	"math"
	"slices"

	"curvesweep/internal/graph"
)

// Presets maps curve names to constructors. All curves are scaled to fit an
// 800×800 view centered on the origin.
var Presets = map[string]func() graph.Curve{
	"folium":    Folium,
	"circle":    Circle,
	"cardioid":  Cardioid,
	"lissajous": Lissajous,
	"parabola":  Parabola,
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset returns the default configuration with the named curve.
func Preset(name string) (Config, error) {
	curve, ok := Presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown curve %q (have %v)", ErrInvalid, name, PresetNames())
	}
	c := Default()
	c.Curve = curve()
	return c, nil
}

// Folium is the folium of Descartes, x = 300t/(1+t)³, y = 300t²/(1+t)³,
// over [−√300, √300]. It has a pole at t = −1.
func Folium() graph.Curve {
	return graph.Curve{
		Name: "folium",
		X: func(t float64) float64 {
			return 100 * 3 * t / (1 + t) / (1 + t) / (1 + t)
		},
		Y: func(t float64) float64 {
			return 100 * 3 * t * t / (1 + t) / (1 + t) / (1 + t)
		},
		Start: -math.Sqrt(300),
		End:   math.Sqrt(300),
	}
}

func Circle() graph.Curve {
	return graph.Curve{
		Name:  "circle",
		X:     func(t float64) float64 { return 250 * math.Cos(t) },
		Y:     func(t float64) float64 { return 250 * math.Sin(t) },
		Start: 0,
		End:   2 * math.Pi,
	}
}

// Cardioid has a cusp at t = 0 where both derivatives vanish.
func Cardioid() graph.Curve {
	return graph.Curve{
		Name:  "cardioid",
		X:     func(t float64) float64 { return 120 * (2*math.Cos(t) - math.Cos(2*t)) },
		Y:     func(t float64) float64 { return 120 * (2*math.Sin(t) - math.Sin(2*t)) },
		Start: 0,
		End:   2 * math.Pi,
	}
}

func Lissajous() graph.Curve {
	return graph.Curve{
		Name:  "lissajous",
		X:     func(t float64) float64 { return 300 * math.Sin(3*t+math.Pi/2) },
		Y:     func(t float64) float64 { return 300 * math.Sin(2*t) },
		Start: 0,
		End:   2 * math.Pi,
	}
}

func Parabola() graph.Curve {
	return graph.Curve{
		Name:  "parabola",
		X:     func(t float64) float64 { return 50 * t },
		Y:     func(t float64) float64 { return 10*t*t - 300 },
		Start: -7,
		End:   7,
	}
}

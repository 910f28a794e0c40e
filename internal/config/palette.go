package config

import (
	"image/color"

	"curvesweep/internal/geom"
)

// Palette holds the colors renderers draw with.
type Palette struct {
	Background color.NRGBA
	Curve      color.NRGBA
	Tangent    color.NRGBA
	Normal     color.NRGBA
}

// DefaultPalette draws a red curve on white with a blue tangent and a green
// normal.
var DefaultPalette = Palette{
	Background: color.NRGBA{0xff, 0xff, 0xff, 0xff},
	Curve:      color.NRGBA{0xff, 0x00, 0x00, 0xff},
	Tangent:    color.NRGBA{0x00, 0x00, 0xff, 0xff},
	Normal:     color.NRGBA{0x00, 0xff, 0x00, 0xff},
}

// Segment returns the color of segments of kind k.
func (p Palette) Segment(k geom.Kind) color.NRGBA {
	if k == geom.Normal {
		return p.Normal
	}
	return p.Tangent
}

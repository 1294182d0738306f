package probe

import (
	"image/color"
	"math"
)

// Bright/saturated sub-range for randomized marker colors, so markers stay
// visually distinct and legible against the scene.
const (
	minRandomSaturation = 0.7
	minRandomValue      = 0.7
)

// Color is an 8-bit RGB triple.
type Color [3]uint8

// RGBA converts the color to an opaque color.RGBA for rendering.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

// randomColor draws a marker color with hue uniform over the full range and
// saturation/value uniform over the bright sub-range. rand is a source of
// uniform draws in [0, 1).
func randomColor(rand func() float64) Color {
	h := rand()
	s := minRandomSaturation + rand()*(1-minRandomSaturation)
	v := minRandomValue + rand()*(1-minRandomValue)
	return HSV(h, s, v)
}

// HSV converts hue/saturation/value in [0, 1] to 8-bit RGB.
func HSV(h, s, v float64) Color {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return Color{
		uint8(math.Round(r * 255)),
		uint8(math.Round(g * 255)),
		uint8(math.Round(b * 255)),
	}
}

// Package palette provides color palettes and color theory utilities for
// the art generators.
//
// color.go contains the Color atom and pure color-manipulation functions:
// HSV and Lab conversion, tinting, shading, and toning. These are the
// building blocks the harmony and gradient molecules compose.
package palette

import (
	"image/color"
	"math"
)

// Color is an 8-bit RGB color. It implements image/color.Color so palette
// entries can be handed directly to the raster primitives in artgen.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface. Palette colors are always
// fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Brightness returns the mean channel value in [0, 255].
// This is a pure function with no side effects.
func (c Color) Brightness() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3.0
}

// clamp8 clamps v into the valid 8-bit channel range.
func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Tint lightens a color by mixing in white. amount is in [0, 1] where 0
// returns the color unchanged and 1 returns pure white.
// This is a pure function with no side effects.
func Tint(c Color, amount float64) Color {
	return Color{
		R: clamp8(float64(c.R) + (255-float64(c.R))*amount),
		G: clamp8(float64(c.G) + (255-float64(c.G))*amount),
		B: clamp8(float64(c.B) + (255-float64(c.B))*amount),
	}
}

// Shade darkens a color by mixing in black. amount is in [0, 1] where 0
// returns the color unchanged and 1 returns pure black.
// This is a pure function with no side effects.
func Shade(c Color, amount float64) Color {
	return Color{
		R: clamp8(float64(c.R) * (1 - amount)),
		G: clamp8(float64(c.G) * (1 - amount)),
		B: clamp8(float64(c.B) * (1 - amount)),
	}
}

// Tone desaturates a color by mixing in its own gray value. amount is in
// [0, 1] where 0 returns the color unchanged and 1 returns pure gray.
// This is a pure function with no side effects.
func Tone(c Color, amount float64) Color {
	gray := (float64(c.R) + float64(c.G) + float64(c.B)) / 3.0
	return Color{
		R: clamp8(float64(c.R)*(1-amount) + gray*amount),
		G: clamp8(float64(c.G)*(1-amount) + gray*amount),
		B: clamp8(float64(c.B)*(1-amount) + gray*amount),
	}
}

// Scale multiplies each channel by factor, clamping to the valid range.
// Factors above 1 intensify the color, below 1 darken it.
// This is a pure function with no side effects.
func Scale(c Color, factor float64) Color {
	return Color{
		R: clamp8(float64(c.R) * factor),
		G: clamp8(float64(c.G) * factor),
		B: clamp8(float64(c.B) * factor),
	}
}

// RGBToHSV converts a Color to hue [0, 360), saturation [0, 1], value [0, 1].
// This is a pure function with no side effects.
func RGBToHSV(c Color) (h, s, v float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	v = maxC
	if maxC > 0 {
		s = delta / maxC
	}

	switch {
	case delta == 0:
		h = 0
	case maxC == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case maxC == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// HSVToRGB converts hue [0, 360), saturation [0, 1], value [0, 1] to a Color.
// This is a pure function with no side effects.
func HSVToRGB(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: clamp8((r + m) * 255),
		G: clamp8((g + m) * 255),
		B: clamp8((b + m) * 255),
	}
}

// RGBToLab converts a Color to the CIE Lab color space using the D65 white
// point. The conversion is the simplified sRGB path: gamma expansion,
// linear transform to XYZ, then the Lab companding function.
// This is a pure function with no side effects.
func RGBToLab(c Color) (l, a, b float64) {
	expand := func(ch float64) float64 {
		if ch <= 0.04045 {
			return ch / 12.92
		}
		return math.Pow((ch+0.055)/1.055, 2.4)
	}

	r := expand(float64(c.R) / 255.0)
	g := expand(float64(c.G) / 255.0)
	bb := expand(float64(c.B) / 255.0)

	x := r*0.4124 + g*0.3576 + bb*0.1805
	y := r*0.2126 + g*0.7152 + bb*0.0722
	z := r*0.0193 + g*0.1192 + bb*0.9505

	x /= 0.95047
	z /= 1.08883

	f := func(t float64) float64 {
		if t > 0.008856 {
			return math.Cbrt(t)
		}
		return 7.787*t + 16.0/116.0
	}

	fx, fy, fz := f(x), f(y), f(z)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

// Lerp linearly interpolates between two colors. t is in [0, 1].
// This is a pure function with no side effects.
func Lerp(c1, c2 Color, t float64) Color {
	return Color{
		R: clamp8(float64(c1.R)*(1-t) + float64(c2.R)*t),
		G: clamp8(float64(c1.G)*(1-t) + float64(c2.G)*t),
		B: clamp8(float64(c1.B)*(1-t) + float64(c2.B)*t),
	}
}

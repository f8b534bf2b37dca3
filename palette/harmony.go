package palette

import (
	"math"
	"math/rand"
)

// HarmonyKind selects the hue relationship used by ComplexHarmony.
type HarmonyKind string

const (
	// HarmonyTetradic uses four hues forming a rectangle on the color wheel.
	HarmonyTetradic HarmonyKind = "tetradic"
	// HarmonySplitTriadic uses the base hue plus the two hues adjacent to
	// its complement.
	HarmonySplitTriadic HarmonyKind = "split_triadic"
	// HarmonyAnalogousExtended uses five adjacent hues at 15 degree steps.
	HarmonyAnalogousExtended HarmonyKind = "analogous_extended"
	// HarmonyDoubleComplementary uses two complementary hue pairs.
	HarmonyDoubleComplementary HarmonyKind = "double_complementary"
	// HarmonyComplexTriadic uses three hues at 120 degree steps.
	HarmonyComplexTriadic HarmonyKind = "complex_triadic"
)

// ComplexHarmony builds a palette from a base color by walking the color
// wheel according to kind, then adding tinted, shaded, and toned variations
// of each hue. The result is truncated to at most variations colors.
// This is a pure function with no side effects.
func ComplexHarmony(base Color, kind HarmonyKind, variations int) Palette {
	if variations <= 0 {
		return nil
	}

	hue, s, v := RGBToHSV(base)

	var hues []float64
	switch kind {
	case HarmonyTetradic:
		hues = []float64{hue, hue + 60, hue + 180, hue + 240}
	case HarmonySplitTriadic:
		comp := hue + 180
		hues = []float64{hue, comp - 30, comp + 30}
	case HarmonyAnalogousExtended:
		hues = []float64{hue, hue + 15, hue + 30, hue + 45, hue + 60}
	case HarmonyDoubleComplementary:
		hues = []float64{hue, hue + 180, hue + 30, hue + 210}
	default: // complex triadic
		hues = []float64{hue, hue + 120, hue + 240}
	}

	palette := make(Palette, 0, len(hues)*4)
	for _, h := range hues {
		c := HSVToRGB(math.Mod(h+360, 360), s, v)
		palette = append(palette,
			c,
			Tint(c, 0.2),
			Shade(c, 0.2),
			Tone(c, 0.2),
		)
	}

	if len(palette) > variations {
		palette = palette[:variations]
	}
	return palette
}

// EasingCurve selects the interpolation curve used by Gradient.
type EasingCurve string

const (
	// EaseLinear interpolates without easing.
	EaseLinear EasingCurve = "linear"
	// EaseInOut applies a smoothstep curve.
	EaseInOut EasingCurve = "ease_in_out"
	// EaseIn accelerates from the start color.
	EaseIn EasingCurve = "ease_in"
	// EaseOut decelerates toward the end color.
	EaseOut EasingCurve = "ease_out"
	// EaseSine follows a half cosine wave.
	EaseSine EasingCurve = "sine"
)

// Gradient interpolates between two colors over the given number of steps,
// applying the easing curve to the interpolation parameter. steps below 2
// yields a single-entry gradient of c1.
// This is a pure function with no side effects.
func Gradient(c1, c2 Color, steps int, curve EasingCurve) Palette {
	if steps < 2 {
		return Palette{c1}
	}

	gradient := make(Palette, 0, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)

		switch curve {
		case EaseInOut:
			t = t * t * (3 - 2*t)
		case EaseIn:
			t = t * t
		case EaseOut:
			t = 1 - (1-t)*(1-t)
		case EaseSine:
			t = (1 - math.Cos(t*math.Pi)) / 2
		}

		gradient = append(gradient, Lerp(c1, c2, t))
	}
	return gradient
}

// Random builds a palette of n uniformly random colors. Dadaist
// compositions use this instead of a fixed table.
func Random(rng *rand.Rand, n int) Palette {
	p := make(Palette, n)
	for i := range p {
		p[i] = Color{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		}
	}
	return p
}

// Pick returns a uniformly random color from the palette.
func (p Palette) Pick(rng *rand.Rand) Color {
	return p[rng.Intn(len(p))]
}

// Background chooses a background color from the palette, weighting very
// dark and very light colors three times heavier than midtones. This
// mirrors how painters reserve midtones for the subject.
func (p Palette) Background(rng *rand.Rand) Color {
	weights := make([]int, len(p))
	total := 0
	for i, c := range p {
		w := 1
		if b := c.Brightness(); b < 50 || b > 200 {
			w = 3
		}
		weights[i] = w
		total += w
	}

	pick := rng.Intn(total)
	for i, w := range weights {
		if pick < w {
			return p[i]
		}
		pick -= w
	}
	return p[len(p)-1]
}

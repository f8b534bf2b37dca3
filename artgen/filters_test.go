package artgen

import (
	"image"
	"testing"

	"malevich/palette"
)

func solidImage(w, h int, col palette.Color) *image.RGBA {
	c := newCanvas(w, h, col)
	return c.img
}

func TestGaussianBlurPreservesSolidColor(t *testing.T) {
	src := solidImage(16, 16, palette.Color{R: 120, G: 60, B: 200})
	out := GaussianBlur(src, 1.5)

	i := out.PixOffset(8, 8)
	r, g, b := out.Pix[i], out.Pix[i+1], out.Pix[i+2]
	if absDiff(r, 120) > 1 || absDiff(g, 60) > 1 || absDiff(b, 200) > 1 {
		t.Errorf("blurred solid color drifted to (%d, %d, %d)", r, g, b)
	}
}

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		in     uint8
		want   uint8
	}{
		{name: "identity", factor: 1.0, in: 100, want: 100},
		{name: "brighten", factor: 1.5, in: 100, want: 150},
		{name: "darken", factor: 0.5, in: 100, want: 50},
		{name: "clamps at white", factor: 3.0, in: 200, want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := solidImage(4, 4, palette.Color{R: tt.in, G: tt.in, B: tt.in})
			out := AdjustBrightness(src, tt.factor)
			got := out.Pix[out.PixOffset(2, 2)]
			if absDiff(got, tt.want) > 1 {
				t.Errorf("AdjustBrightness(%d, %.1f) = %d, want %d", tt.in, tt.factor, got, tt.want)
			}
		})
	}
}

func TestAdjustContrastMidpointFixed(t *testing.T) {
	// 128 is the contrast pivot and must not move.
	src := solidImage(4, 4, palette.Color{R: 128, G: 128, B: 128})
	out := AdjustContrast(src, 1.8)
	got := out.Pix[out.PixOffset(1, 1)]
	if absDiff(got, 128) > 1 {
		t.Errorf("contrast moved the midpoint to %d", got)
	}
}

func TestAdjustSaturationZeroIsGray(t *testing.T) {
	src := solidImage(4, 4, palette.Color{R: 200, G: 50, B: 50})
	out := AdjustSaturation(src, 0)

	i := out.PixOffset(2, 2)
	r, g, b := out.Pix[i], out.Pix[i+1], out.Pix[i+2]
	if absDiff(r, g) > 1 || absDiff(g, b) > 1 {
		t.Errorf("desaturated pixel (%d, %d, %d) is not gray", r, g, b)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := solidImage(4, 4, palette.Color{R: 0, G: 0, B: 0})
	b := solidImage(4, 4, palette.Color{R: 255, G: 255, B: 255})

	tests := []struct {
		name  string
		alpha float64
		want  uint8
	}{
		{name: "all first image", alpha: 0, want: 0},
		{name: "all second image", alpha: 1, want: 255},
		{name: "even mix", alpha: 0.5, want: 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Blend(a, b, tt.alpha)
			got := out.Pix[out.PixOffset(1, 1)]
			if absDiff(got, tt.want) > 1 {
				t.Errorf("Blend alpha %.1f = %d, want %d", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestSharpenPreservesSolidColor(t *testing.T) {
	src := solidImage(8, 8, palette.Color{R: 90, G: 140, B: 30})
	out := Sharpen(src)
	i := out.PixOffset(4, 4)
	if absDiff(out.Pix[i], 90) > 1 || absDiff(out.Pix[i+1], 140) > 1 || absDiff(out.Pix[i+2], 30) > 1 {
		t.Errorf("sharpened solid color drifted to (%d, %d, %d)", out.Pix[i], out.Pix[i+1], out.Pix[i+2])
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

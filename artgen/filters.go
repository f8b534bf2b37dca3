package artgen

import (
	"image"
	"math"
)

// filters.go implements the post-processing passes applied after a style
// composer finishes: gaussian blur, sharpening, and the contrast,
// saturation, and brightness adjustments of the style finish table.
// All filters return a new image and leave the source untouched.

// gaussianKernel builds a normalized 1-D gaussian kernel for the given
// radius. Sigma follows the common radius/2 heuristic with a floor so tiny
// radii still blur slightly.
// This is a pure function with no side effects.
func gaussianKernel(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1}
	}

	sigma := math.Max(radius/2, 0.3)
	size := int(math.Ceil(radius))*2 + 1
	kernel := make([]float64, size)
	center := size / 2

	sum := 0.0
	for i := range kernel {
		d := float64(i - center)
		kernel[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// GaussianBlur applies a separable gaussian blur with the given radius.
// A radius of 0 or less returns a copy of the source.
func GaussianBlur(src *image.RGBA, radius float64) *image.RGBA {
	bounds := src.Bounds()
	if radius <= 0 {
		out := image.NewRGBA(bounds)
		copy(out.Pix, src.Pix)
		return out
	}

	kernel := gaussianKernel(radius)
	half := len(kernel) / 2
	w := bounds.Dx()
	h := bounds.Dy()

	// Horizontal pass.
	tmp := image.NewRGBA(bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b float64
			for k, weight := range kernel {
				sx := x + k - half
				if sx < 0 {
					sx = 0
				} else if sx >= w {
					sx = w - 1
				}
				i := src.PixOffset(sx, y)
				r += float64(src.Pix[i]) * weight
				g += float64(src.Pix[i+1]) * weight
				b += float64(src.Pix[i+2]) * weight
			}
			i := tmp.PixOffset(x, y)
			tmp.Pix[i] = clampChannel(r)
			tmp.Pix[i+1] = clampChannel(g)
			tmp.Pix[i+2] = clampChannel(b)
			tmp.Pix[i+3] = 0xff
		}
	}

	// Vertical pass.
	out := image.NewRGBA(bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b float64
			for k, weight := range kernel {
				sy := y + k - half
				if sy < 0 {
					sy = 0
				} else if sy >= h {
					sy = h - 1
				}
				i := tmp.PixOffset(x, sy)
				r += float64(tmp.Pix[i]) * weight
				g += float64(tmp.Pix[i+1]) * weight
				b += float64(tmp.Pix[i+2]) * weight
			}
			i := out.PixOffset(x, y)
			out.Pix[i] = clampChannel(r)
			out.Pix[i+1] = clampChannel(g)
			out.Pix[i+2] = clampChannel(b)
			out.Pix[i+3] = 0xff
		}
	}

	return out
}

// sharpenKernel is the classic 3x3 sharpening convolution.
var sharpenKernel = [9]float64{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// Sharpen applies a 3x3 sharpening convolution.
func Sharpen(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	out := image.NewRGBA(bounds)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b float64
			ki := 0
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sx := clampInt(x+kx, 0, w-1)
					sy := clampInt(y+ky, 0, h-1)
					i := src.PixOffset(sx, sy)
					weight := sharpenKernel[ki]
					r += float64(src.Pix[i]) * weight
					g += float64(src.Pix[i+1]) * weight
					b += float64(src.Pix[i+2]) * weight
					ki++
				}
			}
			i := out.PixOffset(x, y)
			out.Pix[i] = clampChannel(r)
			out.Pix[i+1] = clampChannel(g)
			out.Pix[i+2] = clampChannel(b)
			out.Pix[i+3] = 0xff
		}
	}

	return out
}

// AdjustContrast scales pixel distance from middle gray. A factor of 1
// returns an unchanged copy; above 1 increases contrast.
func AdjustContrast(src *image.RGBA, factor float64) *image.RGBA {
	return mapPixels(src, func(r, g, b float64) (float64, float64, float64) {
		return 128 + (r-128)*factor,
			128 + (g-128)*factor,
			128 + (b-128)*factor
	})
}

// AdjustBrightness scales every channel. A factor of 1 returns an
// unchanged copy.
func AdjustBrightness(src *image.RGBA, factor float64) *image.RGBA {
	return mapPixels(src, func(r, g, b float64) (float64, float64, float64) {
		return r * factor, g * factor, b * factor
	})
}

// AdjustSaturation scales pixel distance from its own luminance. A factor
// of 0 produces grayscale, 1 an unchanged copy, above 1 more saturation.
func AdjustSaturation(src *image.RGBA, factor float64) *image.RGBA {
	return mapPixels(src, func(r, g, b float64) (float64, float64, float64) {
		// Rec. 601 luma weights.
		gray := 0.299*r + 0.587*g + 0.114*b
		return gray + (r-gray)*factor,
			gray + (g-gray)*factor,
			gray + (b-gray)*factor
	})
}

// Blend mixes two images of identical bounds: out = a*(1-alpha) + b*alpha.
func Blend(a, b *image.RGBA, alpha float64) *image.RGBA {
	bounds := a.Bounds()
	out := image.NewRGBA(bounds)
	inv := 1 - alpha

	for i := 0; i+3 < len(a.Pix); i += 4 {
		out.Pix[i] = clampChannel(float64(a.Pix[i])*inv + float64(b.Pix[i])*alpha)
		out.Pix[i+1] = clampChannel(float64(a.Pix[i+1])*inv + float64(b.Pix[i+1])*alpha)
		out.Pix[i+2] = clampChannel(float64(a.Pix[i+2])*inv + float64(b.Pix[i+2])*alpha)
		out.Pix[i+3] = 0xff
	}
	return out
}

// mapPixels applies fn to every pixel's RGB channels and clamps the result.
func mapPixels(src *image.RGBA, fn func(r, g, b float64) (float64, float64, float64)) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		r, g, b := fn(float64(src.Pix[i]), float64(src.Pix[i+1]), float64(src.Pix[i+2]))
		out.Pix[i] = clampChannel(r)
		out.Pix[i+1] = clampChannel(g)
		out.Pix[i+2] = clampChannel(b)
		out.Pix[i+3] = 0xff
	}
	return out
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

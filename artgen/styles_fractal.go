package artgen

import (
	"math"

	"malevich/palette"
)

// fractalMaxIterLo and fractalMaxIterHi bound the escape-time iteration
// budget. More iterations sharpen the set boundary at the cost of
// render time.
const (
	fractalMaxIterLo = 40
	fractalMaxIterHi = 70
)

// escapeRatio runs the z = z*z + c escape-time iteration and returns
// how quickly the orbit escaped as a value in [0, 1]. 1 means the point
// never escaped and belongs to the set.
func escapeRatio(zx, zy, cx, cy float64, maxIter int) float64 {
	for i := 0; i < maxIter; i++ {
		if zx*zx+zy*zy > 4 {
			return float64(i) / float64(maxIter)
		}
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
	}
	return 1
}

// fractalRamp builds the escape-count color ramp from two palette
// picks. In-set pixels use the dark interior color instead.
func (r *renderer) fractalRamp(steps int) palette.Palette {
	c1 := r.pick()
	c2 := r.pick()
	// Identical picks flatten the ramp to a single color; tint one end.
	if c1 == c2 {
		c2 = palette.Tint(c2, 0.6)
	}
	return palette.Gradient(c1, c2, steps, palette.EaseSine)
}

// fractalInterior is the near-black the set itself is painted with.
var fractalInterior = palette.Color{R: 20, G: 20, B: 30}

// composeMandelbrot renders the Mandelbrot set at a random zoom and
// offset, mapping escape counts through a palette gradient.
func (r *renderer) composeMandelbrot() {
	maxIter := r.randRange(fractalMaxIterLo, fractalMaxIterHi)
	zoom := 0.5 + r.rng.Float64()
	offX := r.rng.Float64() - 0.5
	offY := r.rng.Float64() - 0.5
	ramp := r.fractalRamp(maxIter)

	for y := 0; y < r.h; y++ {
		cy := (float64(y)/float64(r.h)-0.5)*4.0/zoom + offY
		for x := 0; x < r.w; x++ {
			cx := (float64(x)/float64(r.w)-0.5)*4.0/zoom + offX
			t := escapeRatio(0, 0, cx, cy, maxIter)
			r.c.set(x, y, fractalColor(ramp, t))
		}
	}
}

// composeJulia renders a Julia set for a jittered constant near the
// classic c = -0.7 + 0.27015i, the parameter the original pipeline
// defaults to.
func (r *renderer) composeJulia() {
	maxIter := r.randRange(fractalMaxIterLo, fractalMaxIterHi)
	cx := -0.7 + (r.rng.Float64()-0.5)*0.2
	cy := 0.27015 + (r.rng.Float64()-0.5)*0.2
	ramp := r.fractalRamp(maxIter)

	for y := 0; y < r.h; y++ {
		zy := (float64(y)/float64(r.h) - 0.5) * 4.0
		for x := 0; x < r.w; x++ {
			zx := (float64(x)/float64(r.w) - 0.5) * 4.0
			t := escapeRatio(zx, zy, cx, cy, maxIter)
			r.c.set(x, y, fractalColor(ramp, t))
		}
	}
}

// fractalColor maps one escape ratio onto the ramp. In-set points get
// the interior color; the boundary glow follows a half sine so mid
// escape counts read brightest.
func fractalColor(ramp palette.Palette, t float64) palette.Color {
	if t >= 1 {
		return fractalInterior
	}
	idx := int(math.Sin(t*math.Pi) * float64(len(ramp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}

package artgen

import (
	"math"
	"math/rand"

	"malevich/palette"
)

// renderer carries the state a style composer needs for one render: the
// target canvas, the palette, and the seeded rng. All randomness flows
// through r.rng so a fixed seed reproduces the image exactly.
type renderer struct {
	c   *canvas
	rng *rand.Rand
	pal palette.Palette

	w, h   int
	cx, cy int
}

// composeFunc draws one style onto the renderer's canvas.
type composeFunc func(*renderer)

// styleComposers routes styles to their composers.
var styleComposers = map[Style]composeFunc{
	StyleHyperrealism:   (*renderer).composeHyperrealism,
	StylePhotorealism:   (*renderer).composePhotorealism,
	StyleMinimalism:     (*renderer).composeMinimalism,
	StylePopArt:         (*renderer).composePopArt,
	StyleOpArt:          (*renderer).composeOpArt,
	StyleFauvism:        (*renderer).composeFauvism,
	StyleFuturism:       (*renderer).composeFuturism,
	StyleDadaism:        (*renderer).composeDadaism,
	StyleConstructivism: (*renderer).composeConstructivism,
	StyleDeStijl:        (*renderer).composeDeStijl,
	StyleArtDeco:        (*renderer).composeArtDeco,
	StyleArtNouveau:     (*renderer).composeArtNouveau,
	StyleNeoclassicism:  (*renderer).composeNeoclassicism,
	StyleRomanticism:    (*renderer).composeRomanticism,
	StyleRealism:        (*renderer).composeRealism,
	StyleNaturalism:     (*renderer).composeNaturalism,
	StyleMannerism:      (*renderer).composeMannerism,
	StyleRococo:         (*renderer).composeRococo,
	StyleClassicism:     (*renderer).composeClassicism,
	StyleSymbolism:      (*renderer).composeSymbolism,
	StylePrecisionism:   (*renderer).composePrecisionism,

	StyleRenaissance:           (*renderer).composeRenaissance,
	StyleBaroque:               (*renderer).composeBaroque,
	StyleImpressionist:         (*renderer).composeImpressionist,
	StylePostImpressionist:     (*renderer).composePostImpressionist,
	StyleCubist:                (*renderer).composeCubist,
	StyleSurrealist:            (*renderer).composeSurrealist,
	StyleSuprematist:           (*renderer).composeSuprematist,
	StyleAbstractExpressionist: (*renderer).composeAbstractExpressionist,
	StyleExpressionist:         (*renderer).composeExpressionist,

	StyleMandelbrot: (*renderer).composeMandelbrot,
	StyleJulia:      (*renderer).composeJulia,
}

// randRange returns a uniform int in [lo, hi], both inclusive.
func (r *renderer) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// randX and randY pick a uniform coordinate on the canvas.
func (r *renderer) randX() int { return r.rng.Intn(r.w + 1) }
func (r *renderer) randY() int { return r.rng.Intn(r.h + 1) }

// pick returns a random palette color.
func (r *renderer) pick() palette.Color {
	return r.pal.Pick(r.rng)
}

// pickOf returns a uniform choice among the given strings.
func (r *renderer) pickOf(options ...string) string {
	return options[r.rng.Intn(len(options))]
}

// chance reports true with probability p.
func (r *renderer) chance(p float64) bool {
	return r.rng.Float64() < p
}

// angle returns a uniform angle in [0, 2*pi).
func (r *renderer) angle() float64 {
	return r.rng.Float64() * 2 * math.Pi
}

// rotatedRect builds the corner points of a w x h rectangle centered at
// (cx, cy) rotated by the given angle.
// This is a pure function with no side effects.
func rotatedRect(cx, cy, w, h int, angle float64) []Point {
	hw := float64(w) / 2
	hh := float64(h) / 2
	sin, cos := math.Sin(angle), math.Cos(angle)

	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	points := make([]Point, 4)
	for i, corner := range corners {
		points[i] = Point{
			X: cx + int(corner[0]*cos-corner[1]*sin),
			Y: cy + int(corner[0]*sin+corner[1]*cos),
		}
	}
	return points
}

// trianglePoints builds an upright triangle around (x, y) with the given
// half-size, the shape both classical composers reuse.
// This is a pure function with no side effects.
func trianglePoints(x, y, size int) []Point {
	return []Point{
		{x, y - size},
		{x - size, y + size},
		{x + size, y + size},
	}
}

package artgen

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"malevich/palette"
)

// goldenRatio is used for classical composition placement.
const goldenRatio = 1.618033988749895

// Default output parameters.
const (
	DefaultWidth       = 1080
	DefaultHeight      = 1080
	DefaultJPEGQuality = 95
)

// Generator renders complete artworks in a chosen style.
//
// Generator composes the canvas primitives, the palette package, and the
// filter passes into the full rendering pipeline:
// palette selection -> background -> style composer -> style finish.
//
// Thread-Safety: Generator itself is stateless and safe for concurrent
// use; each Generate call builds its own rng and canvas.
type Generator struct {
	width  int
	height int
}

// Options control a single Generate call.
type Options struct {
	// Style to render. StyleAuto picks a random style.
	Style Style

	// PaletteName optionally overrides the style's default palette with a
	// named palette (style or sophisticated mood palette).
	PaletteName string

	// Seed makes the render reproducible. Zero means a crypto-random seed.
	Seed int64
}

// Artwork is a rendered image together with the parameters that made it.
type Artwork struct {
	Image       *image.RGBA
	Style       Style
	PaletteName string
	Seed        int64
}

// NewGenerator creates a Generator with the given canvas size.
// Non-positive dimensions fall back to the 1080x1080 default.
func NewGenerator(width, height int) *Generator {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Generator{width: width, height: height}
}

// Width returns the canvas width in pixels.
func (g *Generator) Width() int { return g.width }

// Height returns the canvas height in pixels.
func (g *Generator) Height() int { return g.height }

// RandomSeed generates a cryptographically random non-negative seed for
// image generation.
func RandomSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively impossible; a fixed seed is
		// still a valid render.
		return 42
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	if seed < 0 {
		seed = -seed
	}
	if seed < 0 { // -MinInt64 stays negative
		seed = 0
	}
	return seed
}

// Generate renders one artwork.
//
// The style is resolved first (auto picks randomly), then the palette:
// an explicit PaletteName wins, dadaism gets a fresh random palette, and
// every other style uses its own table. The composer draws onto a
// background chosen with the painter's weighting, and the finish pass
// applies the style's contrast, saturation, blur, and sharpen settings.
func (g *Generator) Generate(opts Options) (*Artwork, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = RandomSeed()
	}
	rng := rand.New(rand.NewSource(seed))

	style := opts.Style
	if style == "" || style == StyleAuto {
		style = RandomStyle(rng)
	}
	if !style.IsValid() {
		return nil, fmt.Errorf("artgen: unknown style %q", style)
	}

	pal, paletteName, err := resolvePalette(style, opts.PaletteName, rng)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		c:   newCanvas(g.width, g.height, pal.Background(rng)),
		rng: rng,
		pal: pal,
		w:   g.width,
		h:   g.height,
		cx:  g.width / 2,
		cy:  g.height / 2,
	}

	composer, ok := styleComposers[style]
	if !ok {
		composer = (*renderer).composeAbstract
	}
	composer(r)

	img := applyStyleFinish(r.c.img, style)

	return &Artwork{
		Image:       img,
		Style:       style,
		PaletteName: paletteName,
		Seed:        seed,
	}, nil
}

// resolvePalette picks the palette for a render.
func resolvePalette(style Style, paletteName string, rng *rand.Rand) (palette.Palette, string, error) {
	if paletteName != "" {
		p, ok := palette.ByName(paletteName)
		if !ok {
			return nil, "", fmt.Errorf("artgen: unknown palette %q", paletteName)
		}
		return p, paletteName, nil
	}
	if style == StyleDadaism {
		// Dada refuses a fixed palette.
		return palette.Random(rng, 12), string(style), nil
	}
	return palette.ForStyle(string(style)), string(style), nil
}

// contrastFactors holds the per-style contrast applied by the finish pass.
var contrastFactors = map[Style]float64{
	StyleHyperrealism:   1.15,
	StylePhotorealism:   1.12,
	StylePopArt:         1.3,
	StyleOpArt:          1.4,
	StyleFauvism:        1.2,
	StyleFuturism:       1.15,
	StyleConstructivism: 1.2,
	StylePrecisionism:   1.1,
	StyleMinimalism:     1.05,
	StyleBaroque:        1.25,
	StyleSuprematist:    1.15,
	StyleExpressionist:  1.2,
	StyleMandelbrot:     1.1,
	StyleJulia:          1.1,
}

// saturationFactors holds the per-style saturation applied by the finish pass.
var saturationFactors = map[Style]float64{
	StylePopArt:            1.4,
	StyleFauvism:           1.5,
	StyleFuturism:          1.3,
	StyleHyperrealism:      0.95,
	StylePhotorealism:      0.95,
	StyleRealism:           0.9,
	StyleNaturalism:        0.9,
	StyleMinimalism:        0.8,
	StylePostImpressionist: 1.3,
	StyleExpressionist:     1.25,
	StyleSurrealist:        1.2,
	StyleJulia:             1.2,
}

// softBlurStyles get a texture-softening blur in the finish pass.
var softBlurStyles = map[Style]float64{
	StyleHyperrealism:  0.2,
	StylePhotorealism:  0.2,
	StyleRealism:       0.2,
	StyleNaturalism:    0.2,
	StyleRococo:        0.5,
	StyleImpressionist: 0.6,
}

// sharpenStyles get a final sharpening pass for crisp geometry.
var sharpenStyles = map[Style]bool{
	StylePrecisionism:   true,
	StyleOpArt:          true,
	StyleConstructivism: true,
	StyleDeStijl:        true,
	StyleSuprematist:    true,
}

// applyStyleFinish runs the per-style contrast, saturation, blur, and
// sharpen adjustments.
func applyStyleFinish(img *image.RGBA, style Style) *image.RGBA {
	contrast := 1.1
	if f, ok := contrastFactors[style]; ok {
		contrast = f
	}
	img = AdjustContrast(img, contrast)

	saturation := 1.05
	if f, ok := saturationFactors[style]; ok {
		saturation = f
	}
	img = AdjustSaturation(img, saturation)

	if radius, ok := softBlurStyles[style]; ok {
		img = GaussianBlur(img, radius)
	}
	if sharpenStyles[style] {
		img = Sharpen(img)
	}
	return img
}

// Filename returns the output file name for the artwork:
// <style>_<uuid-prefix>.<ext>. UUIDs replace the original 5-digit random
// suffix so concurrent generation cannot collide.
func (a *Artwork) Filename(ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s_%s.%s", a.Style, id, ext)
}

// SaveJPEG writes the artwork to dir as a JPEG with the given quality
// (1-100; out-of-range values use the default). The directory is created
// if missing. Returns the full path of the written file.
func (a *Artwork) SaveJPEG(dir string, quality int) (string, error) {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("artgen: failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, a.Filename("jpg"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("artgen: failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, a.Image, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("artgen: failed to encode JPEG: %w", err)
	}
	return path, nil
}

// SavePNG writes the artwork to dir as a PNG. Returns the full path of
// the written file.
func (a *Artwork) SavePNG(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("artgen: failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, a.Filename("png"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("artgen: failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, a.Image); err != nil {
		return "", fmt.Errorf("artgen: failed to encode PNG: %w", err)
	}
	return path, nil
}

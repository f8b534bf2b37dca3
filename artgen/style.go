// Package artgen implements the parameterized art style renderer.
//
// The package is organized the same way as the rest of the codebase:
// style.go and canvas.go hold the atoms (style names, raster primitives),
// filters.go holds the filter molecules, and generator.go composes them
// into the Generator organism that renders a complete image.
package artgen

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Style names an art style the generator can render.
type Style string

// Comprehensive style set.
const (
	StyleHyperrealism   Style = "hyperrealism"
	StylePhotorealism   Style = "photorealism"
	StyleMinimalism     Style = "minimalism"
	StylePopArt         Style = "pop_art"
	StyleOpArt          Style = "op_art"
	StyleFauvism        Style = "fauvism"
	StyleFuturism       Style = "futurism"
	StyleDadaism        Style = "dadaism"
	StyleConstructivism Style = "constructivism"
	StyleDeStijl        Style = "de_stijl"
	StyleArtDeco        Style = "art_deco"
	StyleArtNouveau     Style = "art_nouveau"
	StyleNeoclassicism  Style = "neoclassicism"
	StyleRomanticism    Style = "romanticism"
	StyleRealism        Style = "realism"
	StyleNaturalism     Style = "naturalism"
	StyleMannerism      Style = "mannerism"
	StyleRococo         Style = "rococo"
	StyleClassicism     Style = "classicism"
	StyleSymbolism      Style = "symbolism"
	StylePrecisionism   Style = "precisionism"
)

// Art-movement style set.
const (
	StyleRenaissance           Style = "renaissance"
	StyleBaroque               Style = "baroque"
	StyleImpressionist         Style = "impressionist"
	StylePostImpressionist     Style = "post_impressionist"
	StyleCubist                Style = "cubist"
	StyleSurrealist            Style = "surrealist"
	StyleSuprematist           Style = "suprematist"
	StyleAbstractExpressionist Style = "abstract_expressionist"
	StyleExpressionist         Style = "expressionist"
)

// Fractal style set: escape-time renders on the complex plane.
const (
	StyleMandelbrot Style = "mandelbrot"
	StyleJulia      Style = "julia"
)

// StyleAuto selects a random style at generation time.
const StyleAuto Style = "auto"

// allStyles is the canonical ordered list of renderable styles.
var allStyles = []Style{
	StyleHyperrealism, StylePhotorealism, StyleMinimalism, StylePopArt,
	StyleOpArt, StyleFauvism, StyleFuturism, StyleDadaism,
	StyleConstructivism, StyleDeStijl, StyleArtDeco, StyleArtNouveau,
	StyleNeoclassicism, StyleRomanticism, StyleRealism, StyleNaturalism,
	StyleMannerism, StyleRococo, StyleClassicism, StyleSymbolism,
	StylePrecisionism,
	StyleRenaissance, StyleBaroque, StyleImpressionist,
	StylePostImpressionist, StyleCubist, StyleSurrealist, StyleSuprematist,
	StyleAbstractExpressionist, StyleExpressionist,
	StyleMandelbrot, StyleJulia,
}

// styleAliases maps accepted user spellings to canonical style names.
var styleAliases = map[string]Style{
	"cubism":                "cubist",
	"expressionism":         "expressionist",
	"surrealism":            "surrealist",
	"suprematism":           "suprematist",
	"impressionism":         "impressionist",
	"post-impressionist":    "post_impressionist",
	"post_impressionism":    "post_impressionist",
	"popart":                "pop_art",
	"pop-art":               "pop_art",
	"opart":                 "op_art",
	"op-art":                "op_art",
	"destijl":               "de_stijl",
	"de-stijl":              "de_stijl",
	"artdeco":               "art_deco",
	"art-deco":              "art_deco",
	"artnouveau":            "art_nouveau",
	"art-nouveau":           "art_nouveau",
	"abstract-expressionist": "abstract_expressionist",
	"abstract_expressionism": "abstract_expressionist",
	"fractal":                "mandelbrot",
	"mandelbrot_set":         "mandelbrot",
	"julia_set":              "julia",
}

// AllStyles returns a copy of the renderable style list in canonical order.
func AllStyles() []Style {
	styles := make([]Style, len(allStyles))
	copy(styles, allStyles)
	return styles
}

// StyleNames returns the sorted names of all renderable styles.
func StyleNames() []string {
	names := make([]string, len(allStyles))
	for i, s := range allStyles {
		names[i] = string(s)
	}
	sort.Strings(names)
	return names
}

// NormalizeStyle resolves user input (case-insensitive, hyphen or space
// separated, common aliases like "cubism") to a canonical Style.
// Empty input resolves to StyleAuto.
func NormalizeStyle(input string) (Style, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" || trimmed == string(StyleAuto) {
		return StyleAuto, nil
	}

	normalized := strings.ReplaceAll(trimmed, " ", "_")
	if alias, ok := styleAliases[normalized]; ok {
		return alias, nil
	}

	candidate := Style(normalized)
	for _, s := range allStyles {
		if s == candidate {
			return s, nil
		}
	}
	return "", fmt.Errorf("artgen: unknown style %q", input)
}

// RandomStyle picks a uniformly random renderable style.
func RandomStyle(rng *rand.Rand) Style {
	return allStyles[rng.Intn(len(allStyles))]
}

// IsValid reports whether s names a renderable style.
func (s Style) IsValid() bool {
	for _, known := range allStyles {
		if known == s {
			return true
		}
	}
	return false
}

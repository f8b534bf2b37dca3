package palette

import "sort"

// Palette is an ordered list of colors associated with an art style or a
// named mood. Palettes are value types; callers may modify their copies
// freely.
type Palette []Color

// stylePalettes maps style names to their color palettes. The tables cover
// both the comprehensive style set (hyperrealism through precisionism) and
// the art-movement set (renaissance through expressionist).
var stylePalettes = map[string]Palette{
	// Hyperrealism: natural, realistic colors with subtle variations.
	"hyperrealism": {
		{240, 235, 230}, {220, 210, 200}, {200, 190, 180},
		{180, 170, 160}, {160, 150, 140}, {140, 130, 120},
		{120, 110, 100}, {100, 90, 80}, {80, 70, 60},
	},
	"photorealism": {
		{250, 245, 240}, {230, 225, 220}, {210, 205, 200},
		{190, 185, 180}, {170, 165, 160}, {150, 145, 140},
	},
	// Minimalism: limited, muted palette.
	"minimalism": {
		{255, 255, 255}, {240, 240, 240}, {220, 220, 220},
		{200, 200, 200}, {180, 180, 180}, {0, 0, 0},
		{50, 50, 50}, {100, 100, 100},
	},
	// Pop Art: bright, saturated colors.
	"pop_art": {
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 0}, {255, 0, 255}, {0, 255, 255},
		{255, 128, 0}, {128, 0, 255}, {255, 192, 203},
	},
	// Op Art: high contrast black and white with accents.
	"op_art": {
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128},
		{200, 200, 200}, {50, 50, 50}, {255, 0, 0},
		{0, 0, 255}, {255, 255, 0},
	},
	// Fauvism: wild, unnatural colors.
	"fauvism": {
		{255, 50, 50}, {50, 255, 50}, {50, 50, 255},
		{255, 200, 50}, {200, 50, 255}, {50, 255, 200},
		{255, 100, 100}, {100, 255, 100}, {100, 100, 255},
	},
	// Futurism: dynamic, vibrant colors.
	"futurism": {
		{255, 100, 0}, {0, 200, 255}, {255, 200, 0},
		{200, 0, 255}, {0, 255, 150}, {255, 0, 150},
		{150, 0, 255}, {255, 150, 0},
	},
	// Constructivism: red, black, white, geometric.
	"constructivism": {
		{220, 20, 60}, {0, 0, 0}, {255, 255, 255},
		{128, 128, 128}, {192, 192, 192}, {255, 0, 0},
	},
	// De Stijl: primary colors plus black and white.
	"de_stijl": {
		{255, 0, 0}, {0, 0, 255}, {255, 255, 0},
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128},
	},
	// Art Deco: metallic, luxurious colors.
	"art_deco": {
		{220, 200, 150}, {180, 160, 140}, {200, 180, 160},
		{240, 220, 200}, {160, 140, 120}, {255, 215, 0},
		{192, 192, 192}, {139, 69, 19},
	},
	// Art Nouveau: natural, organic colors.
	"art_nouveau": {
		{200, 220, 200}, {220, 200, 180}, {180, 200, 220},
		{200, 180, 200}, {220, 220, 180}, {180, 220, 220},
		{200, 200, 160}, {160, 200, 200},
	},
	"neoclassicism": {
		{200, 190, 180}, {180, 170, 160}, {160, 150, 140},
		{220, 210, 200}, {140, 130, 120}, {240, 230, 220},
		{120, 110, 100}, {100, 90, 80},
	},
	// Romanticism: dramatic, emotional colors.
	"romanticism": {
		{180, 100, 80}, {100, 80, 120}, {120, 100, 140},
		{140, 120, 100}, {160, 140, 120}, {100, 120, 140},
		{120, 140, 160}, {80, 100, 120},
	},
	"realism": {
		{200, 180, 160}, {180, 160, 140}, {160, 140, 120},
		{140, 120, 100}, {220, 200, 180}, {200, 190, 170},
		{180, 170, 150}, {160, 150, 130},
	},
	"naturalism": {
		{100, 130, 80}, {120, 150, 100}, {140, 170, 120},
		{80, 100, 60}, {160, 140, 100}, {180, 160, 120},
		{200, 180, 140}, {120, 100, 80},
	},
	"mannerism": {
		{180, 160, 200}, {200, 180, 160}, {160, 200, 180},
		{220, 200, 180}, {180, 200, 220}, {200, 220, 180},
		{160, 180, 200}, {200, 160, 180},
	},
	// Rococo: light, decorative colors.
	"rococo": {
		{255, 250, 240}, {255, 240, 230}, {240, 255, 250},
		{250, 240, 255}, {240, 250, 255}, {255, 245, 240},
		{245, 255, 240}, {240, 245, 255},
	},
	"classicism": {
		{200, 190, 180}, {190, 180, 170}, {180, 170, 160},
		{210, 200, 190}, {170, 160, 150}, {220, 210, 200},
		{160, 150, 140}, {150, 140, 130},
	},
	"symbolism": {
		{120, 100, 140}, {140, 120, 100}, {100, 140, 120},
		{160, 140, 160}, {140, 160, 140}, {160, 160, 140},
		{140, 140, 160}, {120, 120, 140},
	},
	// Precisionism: precise, industrial grays.
	"precisionism": {
		{200, 200, 200}, {180, 180, 180}, {160, 160, 160},
		{140, 140, 140}, {120, 120, 120}, {100, 100, 100},
		{220, 220, 220}, {80, 80, 80},
	},

	// Art-movement palettes.

	// Renaissance: earthy tones, natural colors.
	"renaissance": {
		{139, 90, 43}, {101, 67, 33}, {160, 82, 45},
		{205, 133, 63}, {139, 69, 19}, {85, 107, 47},
		{72, 61, 139}, {105, 105, 105}, {176, 196, 222},
	},
	// Baroque: rich, dramatic colors with high contrast.
	"baroque": {
		{139, 0, 0}, {0, 0, 139}, {139, 69, 19},
		{25, 25, 112}, {184, 134, 11}, {139, 0, 139},
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128},
	},
	// Impressionism: light, bright pastels.
	"impressionist": {
		{255, 250, 240}, {255, 228, 196}, {255, 218, 185},
		{176, 224, 230}, {255, 182, 193}, {221, 160, 221},
		{255, 239, 213}, {240, 248, 255}, {255, 228, 225},
	},
	// Post-Impressionism: vibrant, intense colors.
	"post_impressionist": {
		{255, 215, 0}, {255, 140, 0}, {255, 69, 0},
		{50, 205, 50}, {0, 191, 255}, {138, 43, 226},
		{220, 20, 60}, {255, 20, 147}, {255, 255, 0},
	},
	// Cubism: muted earth tones and grays.
	"cubist": {
		{139, 90, 43}, {101, 67, 33}, {160, 82, 45},
		{205, 133, 63}, {139, 69, 19}, {85, 107, 47},
		{72, 61, 139}, {105, 105, 105}, {128, 128, 128},
	},
	// Surrealism: dreamlike, vibrant, unexpected.
	"surrealist": {
		{255, 255, 0}, {255, 165, 0}, {255, 20, 147},
		{0, 191, 255}, {138, 43, 226}, {255, 0, 127},
		{0, 255, 127}, {255, 192, 203}, {255, 218, 185},
	},
	// Suprematism: pure, bold colors.
	"suprematist": {
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0},
		{0, 0, 255}, {255, 255, 0}, {0, 255, 0},
	},
	"abstract_expressionist": {
		{255, 0, 0}, {0, 0, 0}, {255, 255, 255},
		{255, 255, 0}, {0, 0, 255}, {255, 0, 255},
		{0, 255, 255}, {128, 0, 128}, {139, 69, 19},
	},
	// Expressionism: emotional, intense.
	"expressionist": {
		{255, 69, 0}, {255, 140, 0}, {255, 215, 0},
		{50, 205, 50}, {0, 191, 255}, {138, 43, 226},
		{220, 20, 60}, {255, 20, 147}, {139, 0, 0},
	},
	// Mandelbrot: mystery and sadness tones for the escape gradient.
	"mandelbrot": {
		{100, 80, 130}, {120, 100, 150}, {80, 60, 110},
		{110, 90, 140}, {60, 80, 120}, {80, 100, 140},
		{50, 70, 100}, {70, 90, 130}, {40, 60, 90},
	},
	// Julia: energy and calm tones for the orbit glow.
	"julia": {
		{220, 80, 60}, {240, 100, 80}, {230, 90, 70},
		{150, 200, 220}, {170, 210, 230}, {130, 180, 200},
		{160, 190, 210}, {200, 70, 50}, {140, 190, 210},
	},
}

// sophisticatedPalettes are mood palettes built from desaturated, tinted,
// shaded, and toned colors. They can be requested by name for any style.
var sophisticatedPalettes = map[string]Palette{
	"luxury": {
		{45, 45, 65}, {120, 100, 80}, {180, 150, 120}, {200, 180, 160},
		{85, 65, 95}, {140, 120, 100}, {220, 200, 180}, {95, 85, 110},
	},
	"vibrant_sophisticated": {
		{220, 50, 80}, {180, 70, 120}, {100, 150, 200}, {250, 180, 100},
		{160, 200, 180}, {200, 150, 180}, {140, 120, 200}, {220, 160, 140},
	},
	"moody_dark": {
		{25, 30, 45}, {60, 45, 55}, {45, 55, 65}, {80, 60, 50},
		{55, 65, 75}, {70, 50, 60}, {40, 50, 60}, {90, 70, 55},
	},
	"pastel_sophisticated": {
		{240, 230, 220}, {220, 210, 200}, {200, 220, 240}, {240, 220, 200},
		{220, 240, 220}, {240, 220, 240}, {240, 240, 220}, {220, 220, 240},
	},
	"earth_rich": {
		{95, 75, 55}, {120, 100, 80}, {140, 120, 100}, {110, 90, 70},
		{85, 95, 75}, {100, 85, 70}, {130, 110, 90}, {75, 85, 95},
	},
	"jewel_tones": {
		{100, 50, 120}, {50, 100, 150}, {150, 100, 50}, {120, 50, 100},
		{50, 150, 100}, {150, 120, 50}, {100, 120, 150}, {120, 100, 150},
	},
	"sunset_complex": {
		{255, 120, 80}, {255, 160, 100}, {200, 100, 120}, {180, 140, 160},
		{220, 180, 140}, {160, 120, 140}, {240, 200, 160}, {200, 160, 180},
	},
	"ocean_depth": {
		{20, 40, 60}, {40, 70, 90}, {60, 100, 120}, {80, 120, 140},
		{100, 140, 160}, {50, 80, 100}, {70, 90, 110}, {30, 50, 70},
	},
	"forest_mystery": {
		{30, 50, 40}, {50, 70, 60}, {70, 90, 80}, {90, 110, 100},
		{40, 60, 50}, {60, 80, 70}, {80, 100, 90}, {50, 70, 55},
	},
	"metallic_sophisticated": {
		{180, 170, 160}, {200, 190, 180}, {220, 200, 150}, {160, 150, 140},
		{190, 180, 170}, {170, 160, 150}, {210, 190, 160}, {150, 140, 130},
	},
}

// ForStyle returns the palette for the given style name. Unknown styles
// fall back to the realism palette so callers always get a usable palette.
func ForStyle(style string) Palette {
	if p, ok := stylePalettes[style]; ok {
		return p
	}
	return stylePalettes["realism"]
}

// ByName looks up a palette by name across the style palettes and the
// sophisticated mood palettes. The second return value reports whether the
// name was found.
func ByName(name string) (Palette, bool) {
	if p, ok := stylePalettes[name]; ok {
		return p, true
	}
	if p, ok := sophisticatedPalettes[name]; ok {
		return p, true
	}
	return nil, false
}

// Names returns the sorted list of all palette names, styles and moods.
func Names() []string {
	names := make([]string, 0, len(stylePalettes)+len(sophisticatedPalettes))
	for name := range stylePalettes {
		names = append(names, name)
	}
	for name := range sophisticatedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleNames returns the sorted list of style palette names.
func StyleNames() []string {
	names := make([]string, 0, len(stylePalettes))
	for name := range stylePalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

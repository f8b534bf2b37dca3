package artgen

import (
	"math"

	"malevich/palette"
)

// composeHyperrealism layers a fine harmony texture over the background,
// scatters small detail points, and sharpens the result.
func (r *renderer) composeHyperrealism() {
	base := r.pick()
	harmony := palette.ComplexHarmony(base, palette.HarmonyAnalogousExtended, 20)

	// Texture layer: each pixel takes a harmony color with a tiny jitter,
	// blended 70/30 over the background.
	texture := newCanvas(r.w, r.h, r.c.at(0, 0))
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			col := harmony[(x+y)%len(harmony)]
			jitter := float64(r.randRange(-3, 3))
			texture.set(x, y, palette.Color{
				R: clampJitter(col.R, jitter),
				G: clampJitter(col.G, jitter),
				B: clampJitter(col.B, jitter),
			})
		}
	}
	r.c.img = Blend(r.c.img, texture.img, 0.7)

	for i := 0; i < r.randRange(50, 100); i++ {
		x, y := r.randX(), r.randY()
		size := r.randRange(1, 3)
		col := harmony[r.rng.Intn(len(harmony))]
		for dy := -size; dy <= size; dy++ {
			for dx := -size; dx <= size; dx++ {
				if dx*dx+dy*dy <= size*size {
					r.c.blendAt(x+dx, y+dy, col)
				}
			}
		}
	}

	r.c.img = Sharpen(r.c.img)
}

func clampJitter(v uint8, jitter float64) uint8 {
	n := float64(v) + jitter
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// composePhotorealism builds on the hyperrealism texture and nudges
// contrast and brightness toward a photographic register.
func (r *renderer) composePhotorealism() {
	r.composeHyperrealism()
	r.c.img = AdjustContrast(r.c.img, 1.1)
	r.c.img = AdjustBrightness(r.c.img, 1.05)
}

// composeMinimalism places one to four sparse elements at golden-ratio
// positions on an otherwise empty field.
func (r *renderer) composeMinimalism() {
	positions := []Point{
		{int(float64(r.w) / goldenRatio), int(float64(r.h) / goldenRatio)},
		{r.w - int(float64(r.w)/goldenRatio), int(float64(r.h) / goldenRatio)},
		{int(float64(r.w) / goldenRatio), r.h - int(float64(r.h)/goldenRatio)},
		{r.cx, r.cy},
	}

	count := r.randRange(1, 4)
	for i := 0; i < count; i++ {
		p := positions[i%len(positions)]
		col := r.pick()
		size := r.randRange(40, 120)

		switch r.pickOf("rectangle", "circle", "line") {
		case "rectangle":
			r.c.fillRect(p.X-size/2, p.Y-size/2, p.X+size/2, p.Y+size/2, col)
		case "circle":
			r.c.fillEllipse(p.X, p.Y, size/2, size/2, col)
		case "line":
			if r.chance(0.5) {
				r.c.line(p.X-size, p.Y, p.X+size, p.Y, 3, col)
			} else {
				r.c.line(p.X, p.Y-size, p.X, p.Y+size, 3, col)
			}
		}
	}
}

// composePopArt fills the frame with bold outlined shapes in boosted
// saturation, with optional Ben-Day dot fields.
func (r *renderer) composePopArt() {
	black := palette.Color{R: 0, G: 0, B: 0}

	for i := 0; i < r.randRange(5, 12); i++ {
		col := boostSaturation(r.pick(), 1.5)
		x, y := r.randX(), r.randY()
		size := r.randRange(50, 200)

		switch r.pickOf("circle", "square", "star") {
		case "circle":
			r.c.fillEllipse(x, y, size/2, size/2, col)
			r.c.strokeEllipse(x, y, size/2, size/2, 4, black)
		case "square":
			r.c.fillRect(x-size/2, y-size/2, x+size/2, y+size/2, col)
			r.c.strokeRect(x-size/2, y-size/2, x+size/2, y+size/2, 4, black)
		case "star":
			pts := starPoints(x, y, size/2, size/4, 5)
			r.c.fillPolygon(pts, col)
			r.c.strokePolygon(pts, 4, black)
		}
	}

	// Ben-Day dots over a random region.
	if r.chance(0.6) {
		col := boostSaturation(r.pick(), 1.5)
		x0, y0 := r.randX(), r.randY()
		fieldW := r.randRange(150, 400)
		fieldH := r.randRange(150, 400)
		spacing := r.randRange(12, 24)
		dot := spacing / 4
		for y := y0; y < y0+fieldH; y += spacing {
			for x := x0; x < x0+fieldW; x += spacing {
				r.c.fillEllipse(x, y, dot, dot, col)
			}
		}
	}
}

func boostSaturation(c palette.Color, factor float64) palette.Color {
	h, s, v := palette.RGBToHSV(c)
	s *= factor
	if s > 1 {
		s = 1
	}
	return palette.HSVToRGB(h, s, v)
}

// composeOpArt draws a single high-contrast optical pattern: spiral,
// checker grid, concentric rings, or moire lines.
func (r *renderer) composeOpArt() {
	a := r.pick()
	b := r.pick()

	switch r.pickOf("spiral", "grid", "concentric", "moire") {
	case "spiral":
		turns := r.randRange(8, 16)
		steps := turns * 60
		maxRadius := float64(minInt(r.w, r.h)) / 2
		prev := Point{r.cx, r.cy}
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			angle := t * float64(turns) * 2 * math.Pi
			radius := t * maxRadius
			p := Point{
				X: r.cx + int(radius*math.Cos(angle)),
				Y: r.cy + int(radius*math.Sin(angle)),
			}
			col := a
			if (i/30)%2 == 1 {
				col = b
			}
			r.c.line(prev.X, prev.Y, p.X, p.Y, 6, col)
			prev = p
		}
	case "grid":
		cell := r.randRange(30, 80)
		for y := 0; y < r.h; y += cell {
			for x := 0; x < r.w; x += cell {
				col := a
				if (x/cell+y/cell)%2 == 1 {
					col = b
				}
				r.c.fillRect(x, y, x+cell, y+cell, col)
			}
		}
	case "concentric":
		ring := r.randRange(15, 40)
		maxRadius := intHypot(r.w, r.h) / 2
		for radius := maxRadius; radius > 0; radius -= ring {
			col := a
			if (radius/ring)%2 == 1 {
				col = b
			}
			r.c.fillEllipse(r.cx, r.cy, radius, radius, col)
		}
	case "moire":
		gap := r.randRange(8, 20)
		for x := 0; x < r.w; x += gap {
			r.c.line(x, 0, x, r.h, 2, a)
		}
		offset := r.randRange(2, gap-1)
		for x := offset; x < r.w; x += gap {
			r.c.line(x, 0, x+r.randRange(-40, 40), r.h, 2, b)
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func intHypot(a, b int) int {
	return int(math.Hypot(float64(a), float64(b)))
}

// composeFauvism throws wild, intensified strokes and a few loose color
// blocks across the frame.
func (r *renderer) composeFauvism() {
	for i := 0; i < r.randRange(100, 200); i++ {
		col := palette.Scale(r.pick(), 1.3)
		x, y := r.randX(), r.randY()
		length := r.randRange(20, 60)
		angle := r.angle()
		r.c.line(x, y,
			x+int(float64(length)*math.Cos(angle)),
			y+int(float64(length)*math.Sin(angle)),
			r.randRange(5, 15), col)
	}

	for i := 0; i < r.randRange(3, 8); i++ {
		col := palette.Scale(r.pick(), 1.3)
		x, y := r.randX(), r.randY()
		blockW := r.randRange(60, 180)
		blockH := r.randRange(60, 180)
		r.c.fillRect(x, y, x+blockW, y+blockH, col)
	}
}

// composeFuturism renders chains of motion lines and fragmented
// hexagonal forms suggesting speed.
func (r *renderer) composeFuturism() {
	for i := 0; i < r.randRange(6, 12); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		angle := r.angle()
		step := r.randRange(30, 70)

		// Repeated offset strokes trailing the same direction.
		for rep := 0; rep < r.randRange(3, 6); rep++ {
			off := rep * step / 2
			x0 := x + int(float64(off)*math.Cos(angle))
			y0 := y + int(float64(off)*math.Sin(angle))
			x1 := x0 + int(float64(step*2)*math.Cos(angle))
			y1 := y0 + int(float64(step*2)*math.Sin(angle))
			r.c.line(x0, y0, x1, y1, 4-minInt(rep, 3), col)
		}
	}

	for i := 0; i < r.randRange(4, 8); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(30, 90)
		pts := regularPolygon(x, y, size, 6, func(int) float64 {
			return float64(r.randRange(-size/4, size/4))
		})
		r.c.fillPolygon(pts, col)
	}
}

// composeDadaism piles up deliberately unrelated elements in random
// colors, sizes, and kinds.
func (r *renderer) composeDadaism() {
	for i := 0; i < r.randRange(10, 25); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(20, 150)

		switch r.pickOf("circle", "rectangle", "line", "polygon", "scribble") {
		case "circle":
			r.c.fillEllipse(x, y, size/2, size/2, col)
		case "rectangle":
			r.c.fillRect(x, y, x+size, y+r.randRange(20, 150), col)
		case "line":
			r.c.line(x, y, r.randX(), r.randY(), r.randRange(1, 8), col)
		case "polygon":
			sides := r.randRange(3, 7)
			pts := regularPolygon(x, y, size/2, sides, func(int) float64 {
				return float64(r.randRange(-size/4, size/4))
			})
			r.c.fillPolygon(pts, col)
		case "scribble":
			prev := Point{x, y}
			for s := 0; s < r.randRange(4, 10); s++ {
				next := Point{prev.X + r.randRange(-60, 60), prev.Y + r.randRange(-60, 60)}
				r.c.line(prev.X, prev.Y, next.X, next.Y, 2, col)
				prev = next
			}
		}
	}
}

// composeConstructivism arranges hard-edged geometric shapes with thin
// black outlines, in the poster tradition.
func (r *renderer) composeConstructivism() {
	black := palette.Color{R: 0, G: 0, B: 0}

	for i := 0; i < r.randRange(6, 12); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(40, 180)

		switch r.pickOf("rectangle", "triangle", "circle", "bar") {
		case "rectangle":
			pts := rotatedRect(x, y, size, size*2/3, r.angle())
			r.c.fillPolygon(pts, col)
			r.c.strokePolygon(pts, 2, black)
		case "triangle":
			pts := trianglePoints(x, y, size/2)
			r.c.fillPolygon(pts, col)
			r.c.strokePolygon(pts, 2, black)
		case "circle":
			r.c.fillEllipse(x, y, size/2, size/2, col)
			r.c.strokeEllipse(x, y, size/2, size/2, 2, black)
		case "bar":
			pts := rotatedRect(x, y, size*3, size/5, r.angle())
			r.c.fillPolygon(pts, col)
			r.c.strokePolygon(pts, 2, black)
		}
	}
}

// composeDeStijl lays out a rectangular grid, fills a scatter of cells
// with primaries, and crosses it with bold full-span lines.
func (r *renderer) composeDeStijl() {
	black := palette.Color{R: 0, G: 0, B: 0}
	cell := r.w / 8

	for y := 0; y < r.h; y += cell {
		for x := 0; x < r.w; x += cell {
			if r.chance(0.3) {
				r.c.fillRect(x, y, x+cell, y+cell, r.pick())
			}
			r.c.strokeRect(x, y, x+cell, y+cell, 2, black)
		}
	}

	for i := 0; i < r.randRange(3, 6); i++ {
		if r.chance(0.5) {
			y := r.randY()
			r.c.line(0, y, r.w, y, 4, black)
		} else {
			x := r.randX()
			r.c.line(x, 0, x, r.h, 4, black)
		}
	}
}

// composeArtDeco draws sunbursts, chevrons, zigzags, and fans, the
// ornamental vocabulary of the style.
func (r *renderer) composeArtDeco() {
	for i := 0; i < r.randRange(4, 8); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(60, 200)

		switch r.pickOf("sunburst", "chevron", "zigzag", "fan") {
		case "sunburst":
			rays := r.randRange(8, 16)
			for ray := 0; ray < rays; ray++ {
				angle := float64(ray) / float64(rays) * 2 * math.Pi
				r.c.line(x, y,
					x+int(float64(size)*math.Cos(angle)),
					y+int(float64(size)*math.Sin(angle)),
					3, col)
			}
		case "chevron":
			for row := 0; row < r.randRange(3, 6); row++ {
				yy := y + row*size/4
				r.c.line(x-size/2, yy+size/4, x, yy, 4, col)
				r.c.line(x, yy, x+size/2, yy+size/4, 4, col)
			}
		case "zigzag":
			prev := Point{x, y}
			up := true
			for s := 0; s < r.randRange(5, 10); s++ {
				dy := size / 4
				if up {
					dy = -dy
				}
				next := Point{prev.X + size/4, prev.Y + dy}
				r.c.line(prev.X, prev.Y, next.X, next.Y, 4, col)
				prev = next
				up = !up
			}
		case "fan":
			blades := r.randRange(5, 9)
			for blade := 0; blade < blades; blade++ {
				angle := math.Pi + float64(blade)/float64(blades-1)*math.Pi
				tip := Point{
					X: x + int(float64(size)*math.Cos(angle)),
					Y: y + int(float64(size)*math.Sin(angle)),
				}
				r.c.fillPolygon([]Point{{x, y}, tip, {tip.X + size/10, tip.Y}}, col)
			}
		}
	}
}

// composeArtNouveau traces whiplash spiral curves with floral accents.
func (r *renderer) composeArtNouveau() {
	for i := 0; i < r.randRange(8, 15); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(40, 140)

		// Expanding spiral polyline.
		pts := make([]Point, 0, 40)
		start := r.angle()
		for s := 0; s < 40; s++ {
			t := float64(s) / 40
			angle := start + t*3*math.Pi
			radius := t * float64(size)
			pts = append(pts, Point{
				X: x + int(radius*math.Cos(angle)),
				Y: y + int(radius*math.Sin(angle)),
			})
		}
		r.c.polyline(pts, 3, col)
	}

	for i := 0; i < r.randRange(3, 6); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := float64(r.randRange(20, 60))

		// Trefoil outline: radius modulated by a three-lobed sine.
		pts := make([]Point, 0, 36)
		for s := 0; s < 36; s++ {
			angle := float64(s) / 36 * 2 * math.Pi
			radius := size * (1 + 0.3*math.Sin(3*angle))
			pts = append(pts, Point{
				X: x + int(radius*math.Cos(angle)),
				Y: y + int(radius*math.Sin(angle)),
			})
		}
		r.c.fillPolygon(pts, col)
	}
}

// composeNeoclassicism places restrained classical forms on thirds and
// golden-ratio positions.
func (r *renderer) composeNeoclassicism() {
	positions := []Point{
		{r.w / 3, r.h / 3},
		{2 * r.w / 3, r.h / 3},
		{r.w / 3, 2 * r.h / 3},
		{2 * r.w / 3, 2 * r.h / 3},
		{int(float64(r.w) / goldenRatio), int(float64(r.h) / goldenRatio)},
		{r.cx, r.cy},
	}

	for i := 0; i < r.randRange(4, 8); i++ {
		p := positions[r.rng.Intn(len(positions))]
		col := r.pick()
		size := r.randRange(50, 130)

		switch r.pickOf("column", "pediment", "circle") {
		case "column":
			colH := int(float64(size) * goldenRatio)
			r.c.fillRect(p.X-size/4, p.Y-colH/2, p.X+size/4, p.Y+colH/2, col)
		case "pediment":
			r.c.fillPolygon(trianglePoints(p.X, p.Y, size/2), col)
		case "circle":
			r.c.fillEllipse(p.X, p.Y, size/2, size/2, col)
		}
	}
}

// composeRomanticism paints an atmospheric radial light field, brightest
// at a randomly placed source.
func (r *renderer) composeRomanticism() {
	srcX := r.randRange(r.w/4, 3*r.w/4)
	srcY := r.randRange(r.h/4, 3*r.h/4)
	maxDist := math.Hypot(float64(r.w), float64(r.h))

	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			dist := math.Hypot(float64(x-srcX), float64(y-srcY))
			factor := 1.4 - dist/maxDist
			r.c.set(x, y, palette.Scale(r.pick(), factor))
		}
	}

	// Heavy cloud masses around the light.
	for i := 0; i < r.randRange(4, 8); i++ {
		col := palette.Shade(r.pick(), 0.3)
		x, y := r.randX(), r.randY()
		r.c.fillEllipse(x, y, r.randRange(80, 200), r.randRange(40, 100), col)
	}
}

// composeRealism draws measured natural shapes and softens the result.
func (r *renderer) composeRealism() {
	for i := 0; i < r.randRange(6, 12); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(40, 160)

		switch r.pickOf("circle", "ellipse", "organic") {
		case "circle":
			r.c.fillEllipse(x, y, size/2, size/2, col)
		case "ellipse":
			r.c.fillEllipse(x, y, size/2, size/3, col)
		case "organic":
			pts := regularPolygon(x, y, size/2, r.randRange(6, 10), func(int) float64 {
				return float64(r.randRange(-size/6, size/6))
			})
			r.c.fillPolygon(pts, col)
		}
	}

	r.c.img = GaussianBlur(r.c.img, 0.3)
}

// composeNaturalism extends realism with a scatter of fine detail dots.
func (r *renderer) composeNaturalism() {
	r.composeRealism()

	for i := 0; i < r.randRange(30, 60); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(1, 3)
		r.c.fillEllipse(x, y, size, size, col)
	}
}

// composeMannerism favors elongated ellipses and complex many-sided
// forms over natural proportion.
func (r *renderer) composeMannerism() {
	for i := 0; i < r.randRange(5, 10); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		width := r.randRange(30, 90)
		stretch := 1.5 + r.rng.Float64()*1.5
		r.c.fillEllipse(x, y, width/2, int(float64(width)*stretch)/2, col)
	}

	for i := 0; i < r.randRange(3, 6); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(40, 120)
		pts := regularPolygon(x, y, size/2, r.randRange(6, 10), func(int) float64 {
			return float64(r.randRange(-size/3, size/3))
		})
		r.c.fillPolygon(pts, col)
	}
}

// composeRococo scatters pastel circles, dotted flowers, and scroll
// curves in a light ornamental register.
func (r *renderer) composeRococo() {
	for i := 0; i < r.randRange(8, 15); i++ {
		col := palette.Tint(r.pick(), 0.4)
		x, y := r.randX(), r.randY()
		size := r.randRange(20, 80)

		switch r.pickOf("circle", "flower", "scroll") {
		case "circle":
			r.c.fillEllipse(x, y, size/2, size/2, col)
		case "flower":
			for petal := 0; petal < 8; petal++ {
				angle := float64(petal) / 8 * 2 * math.Pi
				px := x + int(float64(size)/2*math.Cos(angle))
				py := y + int(float64(size)/2*math.Sin(angle))
				r.c.fillEllipse(px, py, size/5, size/5, col)
			}
			r.c.fillEllipse(x, y, size/4, size/4, palette.Tint(col, 0.3))
		case "scroll":
			pts := make([]Point, 0, 30)
			start := r.angle()
			for s := 0; s < 30; s++ {
				t := float64(s) / 30
				angle := start + t*2.5*math.Pi
				radius := (1 - t) * float64(size)
				pts = append(pts, Point{
					X: x + int(radius*math.Cos(angle)),
					Y: y + int(radius*math.Sin(angle)),
				})
			}
			r.c.polyline(pts, 2, col)
		}
	}
}

// composeClassicism mirrors simple forms across the vertical axis for a
// strictly balanced composition.
func (r *renderer) composeClassicism() {
	count := r.randRange(2, 5)
	for i := 0; i < count; i++ {
		col := r.pick()
		x := r.randRange(r.w/8, r.cx-40)
		y := r.randY()
		size := r.randRange(40, 120)
		mirror := r.w - x

		switch r.pickOf("circle", "square") {
		case "circle":
			r.c.fillEllipse(x, y, size/2, size/2, col)
			r.c.fillEllipse(mirror, y, size/2, size/2, col)
		case "square":
			r.c.fillRect(x-size/2, y-size/2, x+size/2, y+size/2, col)
			r.c.fillRect(mirror-size/2, y-size/2, mirror+size/2, y+size/2, col)
		}
	}

	// Center anchor.
	r.c.fillEllipse(r.cx, r.cy, r.randRange(30, 70), r.randRange(30, 70), r.pick())
}

// composeSymbolism builds spirals, mandalas, and veiled abstract forms.
func (r *renderer) composeSymbolism() {
	for i := 0; i < r.randRange(6, 12); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(40, 140)

		switch r.pickOf("spiral", "mandala", "abstract") {
		case "spiral":
			pts := make([]Point, 0, 50)
			for s := 0; s < 50; s++ {
				t := float64(s) / 50
				angle := t * 4 * math.Pi
				radius := t * float64(size)
				pts = append(pts, Point{
					X: x + int(radius*math.Cos(angle)),
					Y: y + int(radius*math.Sin(angle)),
				})
			}
			r.c.polyline(pts, 2, col)
		case "mandala":
			rings := r.randRange(3, 5)
			for ring := 1; ring <= rings; ring++ {
				radius := size * ring / rings / 2
				r.c.strokeEllipse(x, y, radius, radius, 2, col)
				for spoke := 0; spoke < ring*4; spoke++ {
					angle := float64(spoke) / float64(ring*4) * 2 * math.Pi
					px := x + int(float64(radius)*math.Cos(angle))
					py := y + int(float64(radius)*math.Sin(angle))
					r.c.fillEllipse(px, py, 3, 3, col)
				}
			}
		case "abstract":
			pts := regularPolygon(x, y, size/2, r.randRange(5, 9), func(int) float64 {
				return float64(r.randRange(-size/4, size/4))
			})
			r.c.fillPolygon(pts, col)
		}
	}
}

// composePrecisionism draws sharply outlined geometry and ruler-straight
// lines with no painterly softness.
func (r *renderer) composePrecisionism() {
	black := palette.Color{R: 0, G: 0, B: 0}

	for i := 0; i < r.randRange(6, 12); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(50, 180)

		switch r.pickOf("rectangle", "triangle", "trapezoid") {
		case "rectangle":
			r.c.fillRect(x-size/2, y-size/2, x+size/2, y+size/2, col)
			r.c.strokeRect(x-size/2, y-size/2, x+size/2, y+size/2, 1, black)
		case "triangle":
			pts := trianglePoints(x, y, size/2)
			r.c.fillPolygon(pts, col)
			r.c.strokePolygon(pts, 1, black)
		case "trapezoid":
			pts := []Point{
				{x - size/3, y - size/2},
				{x + size/3, y - size/2},
				{x + size/2, y + size/2},
				{x - size/2, y + size/2},
			}
			r.c.fillPolygon(pts, col)
			r.c.strokePolygon(pts, 1, black)
		}
	}

	for i := 0; i < r.randRange(5, 10); i++ {
		if r.chance(0.5) {
			y := r.randY()
			r.c.line(0, y, r.w, y, 1, black)
		} else {
			x := r.randX()
			r.c.line(x, 0, x, r.h, 1, black)
		}
	}
}

// composeAbstract is the fallback composer: a loose field of mixed
// shapes in the style palette.
func (r *renderer) composeAbstract() {
	for i := 0; i < r.randRange(8, 15); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(30, 150)

		switch r.pickOf("circle", "rectangle", "polygon", "line") {
		case "circle":
			r.c.fillEllipse(x, y, size/2, size/2, col)
		case "rectangle":
			r.c.fillRect(x-size/2, y-size/2, x+size/2, y+size/2, col)
		case "polygon":
			pts := regularPolygon(x, y, size/2, r.randRange(3, 7), func(int) float64 {
				return float64(r.randRange(-size/4, size/4))
			})
			r.c.fillPolygon(pts, col)
		case "line":
			r.c.line(x, y, r.randX(), r.randY(), r.randRange(2, 6), col)
		}
	}
}

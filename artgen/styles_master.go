package artgen

import (
	"math"

	"malevich/palette"
)

// composeRenaissance builds a golden-ratio composition with chiaroscuro
// shading and vanishing-point construction lines.
func (r *renderer) composeRenaissance() {
	vanish := Point{
		X: r.randRange(r.w/3, 2*r.w/3),
		Y: r.randRange(r.h/4, r.h/2),
	}

	// Faint construction lines converging on the vanishing point.
	lineCol := palette.Tone(r.pick(), 0.5)
	for i := 0; i < r.randRange(5, 9); i++ {
		edge := Point{X: r.randX(), Y: r.h}
		r.c.line(edge.X, edge.Y, vanish.X, vanish.Y, 1, lineCol)
	}

	positions := []Point{
		{int(float64(r.w) / goldenRatio), int(float64(r.h) / goldenRatio)},
		{r.w - int(float64(r.w)/goldenRatio), int(float64(r.h) / goldenRatio)},
		{int(float64(r.w) / goldenRatio), r.h - int(float64(r.h)/goldenRatio)},
	}

	for i := 0; i < r.randRange(3, 6); i++ {
		p := positions[i%len(positions)]
		p.X += r.randRange(-40, 40)
		p.Y += r.randRange(-40, 40)
		col := r.pick()

		// Shapes nearer the vanishing point render smaller.
		dist := math.Hypot(float64(p.X-vanish.X), float64(p.Y-vanish.Y))
		maxDist := math.Hypot(float64(r.w), float64(r.h))
		size := int(float64(r.randRange(60, 160)) * (0.4 + 0.6*dist/maxDist))

		r.chiaroscuro(p.X, p.Y, size, col)
	}
}

// chiaroscuro renders a form with a lit side and a shadowed side, the
// light falling from the upper left.
func (r *renderer) chiaroscuro(x, y, size int, col palette.Color) {
	r.c.fillEllipse(x, y, size/2, size/2, col)
	r.c.fillEllipse(x-size/6, y-size/6, size/4, size/4, palette.Tint(col, 0.35))
	r.c.fillEllipse(x+size/5, y+size/5, size/3, size/3, palette.Shade(col, 0.35))
}

// composeBaroque floods the frame with a dramatic radial light gradient,
// then cuts it with bold diagonals and heavy ellipses.
func (r *renderer) composeBaroque() {
	light := palette.Color{R: 255, G: 255, B: 200}
	dark := palette.Color{R: 20, G: 20, B: 20}
	srcX := r.randRange(r.w/4, 3*r.w/4)
	srcY := r.randRange(r.h/4, 3*r.h/4)
	maxDist := math.Hypot(float64(r.w), float64(r.h)) * 0.6

	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			t := math.Hypot(float64(x-srcX), float64(y-srcY)) / maxDist
			if t > 1 {
				t = 1
			}
			r.c.set(x, y, palette.Lerp(light, dark, t))
		}
	}

	for i := 0; i < r.randRange(3, 6); i++ {
		col := r.pick()
		x0 := r.randX()
		r.c.line(x0, 0, x0+r.randRange(-r.w/3, r.w/3), r.h, r.randRange(6, 14), col)
	}

	for i := 0; i < r.randRange(4, 8); i++ {
		col := palette.Shade(r.pick(), 0.2)
		x, y := r.randX(), r.randY()
		r.c.fillEllipse(x, y, r.randRange(40, 120), r.randRange(30, 90), col)
	}
}

// composeImpressionist lays down hundreds of short broken strokes and a
// few soft light patches, then blurs everything slightly.
func (r *renderer) composeImpressionist() {
	for i := 0; i < r.randRange(200, 400); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		length := r.randRange(5, 25)
		angle := r.angle()
		r.c.line(x, y,
			x+int(float64(length)*math.Cos(angle)),
			y+int(float64(length)*math.Sin(angle)),
			r.randRange(1, 4), col)
	}

	for i := 0; i < r.randRange(3, 6); i++ {
		col := palette.Tint(r.pick(), 0.3)
		x, y := r.randX(), r.randY()
		size := r.randRange(40, 100)
		r.c.fillEllipse(x, y, size/2, size/2, col)
	}

	r.c.img = GaussianBlur(r.c.img, 1.0)
}

// composePostImpressionist draws swirling curved strokes with bold
// circles and stars as focal points.
func (r *renderer) composePostImpressionist() {
	for i := 0; i < r.randRange(150, 300); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := float64(r.randRange(10, 40))
		start := r.angle()

		// Short spiral arc, the swirling stroke of the style.
		pts := make([]Point, 0, 10)
		for s := 0; s < 10; s++ {
			t := float64(s) / 10
			angle := start + t*1.5*math.Pi
			radius := t * size
			pts = append(pts, Point{
				X: x + int(radius*math.Cos(angle)),
				Y: y + int(radius*math.Sin(angle)),
			})
		}
		r.c.polyline(pts, r.randRange(2, 4), col)
	}

	for i := 0; i < r.randRange(3, 7); i++ {
		col := palette.Scale(r.pick(), 1.2)
		x, y := r.randX(), r.randY()
		size := r.randRange(20, 60)
		if r.chance(0.5) {
			r.c.fillEllipse(x, y, size/2, size/2, col)
		} else {
			r.c.fillPolygon(starPoints(x, y, size/2, size/4, 5), col)
		}
	}
}

// composeCubist fragments the frame into angular outlined facets
// clustered on the thirds, crossed by intersecting lines.
func (r *renderer) composeCubist() {
	black := palette.Color{R: 0, G: 0, B: 0}
	anchors := []Point{
		{r.w / 3, r.h / 3},
		{2 * r.w / 3, r.h / 3},
		{r.w / 3, 2 * r.h / 3},
		{2 * r.w / 3, 2 * r.h / 3},
	}

	for i := 0; i < r.randRange(12, 25); i++ {
		a := anchors[r.rng.Intn(len(anchors))]
		x := a.X + r.randRange(-r.w/4, r.w/4)
		y := a.Y + r.randRange(-r.h/4, r.h/4)
		col := r.pick()
		size := r.randRange(40, 140)
		pts := regularPolygon(x, y, size/2, r.randRange(3, 7), func(int) float64 {
			return float64(r.randRange(-size/3, size/3))
		})
		r.c.fillPolygon(pts, col)
		r.c.strokePolygon(pts, 2, black)
	}

	for i := 0; i < r.randRange(8, 18); i++ {
		r.c.line(r.randX(), r.randY(), r.randX(), r.randY(), 1, black)
	}
}

// composeSurrealist mixes melting forms, impossible outlines, floating
// shapes with shadows, and heavily distorted polygons.
func (r *renderer) composeSurrealist() {
	for i := 0; i < r.randRange(5, 10); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(50, 150)

		switch r.pickOf("melting", "impossible", "floating", "distorted") {
		case "melting":
			r.c.fillEllipse(x, y, size/2, size/3, col)
			// Drips falling from the underside.
			for d := 0; d < r.randRange(3, 6); d++ {
				dx := x + r.randRange(-size/3, size/3)
				dripLen := r.randRange(size/2, size*2)
				r.c.fillEllipse(dx, y+size/4+dripLen/2, size/12, dripLen/2, col)
			}
		case "impossible":
			pts := trianglePoints(x, y, size/2)
			r.c.strokePolygon(pts, 5, col)
			inner := trianglePoints(x+size/8, y+size/10, size/3)
			r.c.strokePolygon(inner, 5, palette.Shade(col, 0.3))
		case "floating":
			// Shadow first, detached below the shape.
			r.c.fillEllipse(x, y+size, size/2, size/8, palette.Shade(col, 0.6))
			r.c.fillEllipse(x, y, size/2, size/2, col)
		case "distorted":
			pts := regularPolygon(x, y, size/2, r.randRange(5, 9), func(int) float64 {
				return float64(r.randRange(-size/2, size/2))
			})
			r.c.fillPolygon(pts, col)
		}
	}
}

// composeSuprematist floats a few pure geometric forms on the empty
// field: rotated bars, squares, circles, and a cross.
func (r *renderer) composeSuprematist() {
	for i := 0; i < r.randRange(3, 7); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		size := r.randRange(60, 220)

		switch r.pickOf("square", "bar", "circle", "cross") {
		case "square":
			r.c.fillPolygon(rotatedRect(x, y, size, size, r.angle()), col)
		case "bar":
			r.c.fillPolygon(rotatedRect(x, y, size*2, size/4, r.angle()), col)
		case "circle":
			r.c.fillEllipse(x, y, size/2, size/2, col)
		case "cross":
			arm := size / 5
			r.c.fillRect(x-size/2, y-arm/2, x+size/2, y+arm/2, col)
			r.c.fillRect(x-arm/2, y-size/2, x+arm/2, y+size/2, col)
		}
	}
}

// composeAbstractExpressionist throws gesture: large color fields under
// random-walk drip lines and dense splatter.
func (r *renderer) composeAbstractExpressionist() {
	for i := 0; i < r.randRange(2, 4); i++ {
		col := r.pick()
		x, y := r.randX(), r.randY()
		r.c.fillRect(x, y, x+r.randRange(200, 500), y+r.randRange(200, 500), col)
	}

	for i := 0; i < r.randRange(8, 16); i++ {
		col := r.pick()
		width := r.randRange(2, 8)
		prev := Point{r.randX(), r.randY()}
		for s := 0; s < r.randRange(10, 30); s++ {
			next := Point{prev.X + r.randRange(-80, 80), prev.Y + r.randRange(-80, 80)}
			r.c.line(prev.X, prev.Y, next.X, next.Y, width, col)
			prev = next
		}
	}

	for i := 0; i < r.randRange(80, 160); i++ {
		col := r.pick()
		size := r.randRange(2, 10)
		r.c.fillEllipse(r.randX(), r.randY(), size, size, col)
	}
}

// composeExpressionist carves thick, agitated strokes that swirl around
// a handful of emotional centers.
func (r *renderer) composeExpressionist() {
	centers := make([]Point, r.randRange(2, 4))
	for i := range centers {
		centers[i] = Point{r.randX(), r.randY()}
	}

	for i := 0; i < r.randRange(50, 120); i++ {
		col := palette.Scale(r.pick(), 1.2)
		center := centers[r.rng.Intn(len(centers))]
		angle := r.angle()
		dist := float64(r.randRange(20, 300))
		x := center.X + int(dist*math.Cos(angle))
		y := center.Y + int(dist*math.Sin(angle))

		// Strokes curl tangentially around their center.
		tangent := angle + math.Pi/2 + (r.rng.Float64()-0.5)*0.8
		length := float64(r.randRange(25, 70))
		r.c.line(x, y,
			x+int(length*math.Cos(tangent)),
			y+int(length*math.Sin(tangent)),
			r.randRange(4, 12), col)
	}

	for i := 0; i < r.randRange(3, 6); i++ {
		col := palette.Scale(r.pick(), 1.3)
		x, y := r.randX(), r.randY()
		size := r.randRange(40, 110)
		pts := regularPolygon(x, y, size/2, r.randRange(3, 6), func(int) float64 {
			return float64(r.randRange(-size/3, size/3))
		})
		r.c.fillPolygon(pts, col)
	}
}

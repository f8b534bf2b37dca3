package artgen

import (
	"image"
	"math"
	"sort"

	"malevich/palette"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// canvas wraps an RGBA image with the raster primitives the style
// composers draw with. All primitives clip against the image bounds, so
// callers may draw partially or fully off-canvas.
type canvas struct {
	img    *image.RGBA
	width  int
	height int
}

// newCanvas allocates a canvas filled with the background color.
func newCanvas(width, height int, bg palette.Color) *canvas {
	c := &canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
	c.fill(bg)
	return c
}

// fill paints every pixel with the given color.
func (c *canvas) fill(col palette.Color) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = 0xff
	}
}

// set writes a pixel, ignoring out-of-bounds coordinates.
func (c *canvas) set(x, y int, col palette.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := c.img.PixOffset(x, y)
	c.img.Pix[i] = col.R
	c.img.Pix[i+1] = col.G
	c.img.Pix[i+2] = col.B
	c.img.Pix[i+3] = 0xff
}

// at reads a pixel. Out-of-bounds reads return black.
func (c *canvas) at(x, y int) palette.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return palette.Color{}
	}
	i := c.img.PixOffset(x, y)
	return palette.Color{R: c.img.Pix[i], G: c.img.Pix[i+1], B: c.img.Pix[i+2]}
}

// blendAt averages the existing pixel with col, the cheap 50/50 blend the
// hyperrealist detail pass uses.
func (c *canvas) blendAt(x, y int, col palette.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	existing := c.at(x, y)
	c.set(x, y, palette.Color{
		R: uint8((int(existing.R) + int(col.R)) / 2),
		G: uint8((int(existing.G) + int(col.G)) / 2),
		B: uint8((int(existing.B) + int(col.B)) / 2),
	})
}

// fillRect fills the rectangle spanning (x0,y0)-(x1,y1) inclusive.
func (c *canvas) fillRect(x0, y0, x1, y1 int, col palette.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, col)
		}
	}
}

// strokeRect draws a rectangle outline with the given stroke width.
func (c *canvas) strokeRect(x0, y0, x1, y1, width int, col palette.Color) {
	if width < 1 {
		width = 1
	}
	c.fillRect(x0, y0, x1, y0+width-1, col)
	c.fillRect(x0, y1-width+1, x1, y1, col)
	c.fillRect(x0, y0, x0+width-1, y1, col)
	c.fillRect(x1-width+1, y0, x1, y1, col)
}

// fillEllipse fills an axis-aligned ellipse centered at (cx,cy) with the
// given radii.
func (c *canvas) fillEllipse(cx, cy, rx, ry int, col palette.Color) {
	if rx < 0 || ry < 0 {
		return
	}
	if rx == 0 && ry == 0 {
		c.set(cx, cy, col)
		return
	}
	rxf := float64(rx)
	ryf := float64(ry)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx := float64(dx) / math.Max(rxf, 1)
			ny := float64(dy) / math.Max(ryf, 1)
			if nx*nx+ny*ny <= 1.0 {
				c.set(cx+dx, cy+dy, col)
			}
		}
	}
}

// strokeEllipse draws an ellipse outline with the given stroke width by
// filling the ring between the outer and inner ellipse.
func (c *canvas) strokeEllipse(cx, cy, rx, ry, width int, col palette.Color) {
	if width < 1 {
		width = 1
	}
	outerRx := float64(rx)
	outerRy := float64(ry)
	innerRx := math.Max(outerRx-float64(width), 0)
	innerRy := math.Max(outerRy-float64(width), 0)

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			ox := float64(dx) / math.Max(outerRx, 1)
			oy := float64(dy) / math.Max(outerRy, 1)
			if ox*ox+oy*oy > 1.0 {
				continue
			}
			ix := float64(dx) / math.Max(innerRx, 1)
			iy := float64(dy) / math.Max(innerRy, 1)
			if innerRx == 0 || innerRy == 0 || ix*ix+iy*iy >= 1.0 {
				c.set(cx+dx, cy+dy, col)
			}
		}
	}
}

// line draws a line from (x0,y0) to (x1,y1) with the given stroke width.
// Thick lines are rendered by stamping discs along the path, which keeps
// joints round the way brush strokes are.
func (c *canvas) line(x0, y0, x1, y1, width int, col palette.Color) {
	if width < 1 {
		width = 1
	}
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	length := math.Hypot(dx, dy)
	steps := int(length) + 1
	radius := width / 2

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(float64(x0) + dx*t)
		y := int(float64(y0) + dy*t)
		if radius == 0 {
			c.set(x, y, col)
		} else {
			c.fillEllipse(x, y, radius, radius, col)
		}
	}
}

// polyline draws connected line segments through the points.
func (c *canvas) polyline(points []Point, width int, col palette.Color) {
	for i := 0; i+1 < len(points); i++ {
		c.line(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y, width, col)
	}
}

// fillPolygon fills the polygon described by points using even-odd
// scanline filling. Degenerate polygons (fewer than 3 points) are ignored.
func (c *canvas) fillPolygon(points []Point, col palette.Color) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= c.height {
		maxY = c.height - 1
	}

	xs := make([]float64, 0, len(points))
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		fy := float64(y) + 0.5

		j := len(points) - 1
		for i := 0; i < len(points); i++ {
			pi, pj := points[i], points[j]
			yi, yj := float64(pi.Y), float64(pj.Y)
			if (yi <= fy && yj > fy) || (yj <= fy && yi > fy) {
				t := (fy - yi) / (yj - yi)
				xs = append(xs, float64(pi.X)+t*float64(pj.X-pi.X))
			}
			j = i
		}

		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			start := int(math.Ceil(xs[k] - 0.5))
			end := int(math.Floor(xs[k+1] - 0.5))
			for x := start; x <= end; x++ {
				c.set(x, y, col)
			}
		}
	}
}

// strokePolygon draws the polygon outline.
func (c *canvas) strokePolygon(points []Point, width int, col palette.Color) {
	if len(points) < 2 {
		return
	}
	for i := 0; i < len(points); i++ {
		next := points[(i+1)%len(points)]
		c.line(points[i].X, points[i].Y, next.X, next.Y, width, col)
	}
}

// starPoints builds the vertex list of a star with the given number of
// spikes alternating between outer and inner radius.
// This is a pure function with no side effects.
func starPoints(cx, cy, outer, inner, spikes int) []Point {
	points := make([]Point, 0, spikes*2)
	for i := 0; i < spikes*2; i++ {
		angle := math.Pi * float64(i) / float64(spikes)
		r := outer
		if i%2 == 1 {
			r = inner
		}
		points = append(points, Point{
			X: cx + int(float64(r)*math.Cos(angle)),
			Y: cy + int(float64(r)*math.Sin(angle)),
		})
	}
	return points
}

// regularPolygon builds the vertex list of a regular polygon, optionally
// jittering each vertex radius by the given factor through jitter(i).
// This is a pure function when jitter is deterministic.
func regularPolygon(cx, cy, radius, sides int, jitter func(i int) float64) []Point {
	points := make([]Point, 0, sides)
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		r := float64(radius)
		if jitter != nil {
			r *= jitter(i)
		}
		points = append(points, Point{
			X: cx + int(r*math.Cos(angle)),
			Y: cy + int(r*math.Sin(angle)),
		})
	}
	return points
}

package term

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// line visits every cell on the segment (x0,y0)-(x1,y1) using Bresenham's
// algorithm. Both ends are visited.
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// polyline plots the cells under consecutive screen-space points.
func polyline(pts []geom.Point, plot func(x, y int)) {
	if len(pts) == 1 {
		plot(cell(pts[0].X), cell(pts[0].Y))
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		line(cell(a.X), cell(a.Y), cell(b.X), cell(b.Y), plot)
	}
}

// fillPolygon plots every cell whose centre lies inside poly (screen space,
// even-odd rule).
func fillPolygon(poly []geom.Point, plot func(x, y int)) {
	if len(poly) < 3 {
		return
	}
	bb := geom.BBoxOf(poly...)
	for y := cell(bb.MinY); y <= cell(bb.MaxY); y++ {
		for x := cell(bb.MinX); x <= cell(bb.MaxX); x++ {
			if insidePolygon(poly, float64(x)+0.5, float64(y)+0.5) {
				plot(x, y)
			}
		}
	}
}

func insidePolygon(poly []geom.Point, x, y float64) bool {
	in := false
	j := len(poly) - 1
	for i := range poly {
		pi, pj := poly[i], poly[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}

func cell(v float64) int {
	return int(math.Floor(v))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

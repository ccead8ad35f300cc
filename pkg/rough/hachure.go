package rough

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// hachureLines returns the segments of parallel lines, gap apart and running
// at degrees, that lie inside poly. The polygon is rotated so the lines become
// horizontal scanlines, intersected edge by edge, and the segments rotated
// back.
func hachureLines(poly []geom.Point, gap, degrees float64) [][2]geom.Point {
	if len(poly) < 3 || gap <= 0 {
		return nil
	}
	center := geom.BBoxOf(poly...).Center()
	rot := geom.RotateAll(poly, center, -degrees)
	bb := geom.BBoxOf(rot...)

	var out [][2]geom.Point
	for y := bb.MinY + gap; y < bb.MaxY; y += gap {
		xs := scanline(rot, y)
		for i := 0; i+1 < len(xs); i += 2 {
			a := geom.RotateAround(geom.Pt(xs[i], y), center, degrees)
			b := geom.RotateAround(geom.Pt(xs[i+1], y), center, degrees)
			out = append(out, [2]geom.Point{a, b})
		}
	}
	return out
}

// scanline returns the sorted X coordinates where the horizontal line at y
// crosses the edges of poly. Edges are half-open in Y so shared vertices are
// counted once.
func scanline(poly []geom.Point, y float64) []float64 {
	var xs []float64
	n := len(poly)
	for i := 0; i < n; i++ {
		p, q := poly[i], poly[(i+1)%n]
		if (p.Y <= y && q.Y > y) || (q.Y <= y && p.Y > y) {
			xs = append(xs, p.X+(y-p.Y)*(q.X-p.X)/(q.Y-p.Y))
		}
	}
	sort.Float64s(xs)
	return xs
}

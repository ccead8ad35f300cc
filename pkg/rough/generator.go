package rough

import (
	"math"
	"math/rand/v2"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
)

const (
	maxRandomnessOffset = 2.0
	bowing              = 1.0
	curveSamples        = 10
	hachureAngle        = -41.0
)

// generator produces jittered polylines for one shape. A generator is
// created per shape from the shape's seed, so equal seeds give equal output
// regardless of what was drawn before.
type generator struct {
	rng *rand.Rand
	o   render.Options
}

func newGenerator(o render.Options) *generator {
	s := uint64(o.Seed)
	return &generator{
		rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
		o:   o,
	}
}

// jitter returns a random offset in [-offset, offset) scaled by roughness.
func (g *generator) jitter(offset, gain float64) float64 {
	return g.o.Roughness * gain * (g.rng.Float64()*2*offset - offset)
}

func (g *generator) jitterPt(offset, gain float64) geom.Point {
	return geom.Pt(g.jitter(offset, gain), g.jitter(offset, gain))
}

// line returns the strokes for a single segment: one straight polyline when
// roughness is zero, otherwise two overlapping bowed curves.
func (g *generator) line(p1, p2 geom.Point) [][]geom.Point {
	if g.o.Roughness <= 0 {
		return [][]geom.Point{{p1, p2}}
	}
	return [][]geom.Point{
		g.pass(p1, p2, false),
		g.pass(p1, p2, true),
	}
}

func (g *generator) pass(p1, p2 geom.Point, overlay bool) []geom.Point {
	length := geom.Distance(p1, p2)
	gain := 1.0
	switch {
	case length > 500:
		gain = 0.4
	case length > 200:
		gain = 1 - 0.6*(length-200)/300
	}

	offset := maxRandomnessOffset
	if offset*offset*100 > length*length {
		offset = length / 10
	}
	if overlay {
		offset /= 2
	}

	diverge := 0.2 + g.rng.Float64()*0.2
	mid := geom.Pt(
		bowing*maxRandomnessOffset*(p2.Y-p1.Y)/200,
		bowing*maxRandomnessOffset*(p1.X-p2.X)/200,
	).Add(g.jitterPt(offset, gain))

	start, end := p1, p2
	if !g.o.PreserveVertices {
		start = start.Add(g.jitterPt(offset, gain))
		end = end.Add(g.jitterPt(offset, gain))
	}

	d := p2.Sub(p1)
	c1 := p1.Add(d.Scale(diverge)).Add(mid).Add(g.jitterPt(offset, gain))
	c2 := p1.Add(d.Scale(2 * diverge)).Add(mid).Add(g.jitterPt(offset, gain))
	return bezier(start, c1, c2, end, curveSamples)
}

// polygon strokes every edge of pts, closing the outline when closed is set.
func (g *generator) polygon(pts []geom.Point, closed bool) [][]geom.Point {
	var strokes [][]geom.Point
	for i := 0; i+1 < len(pts); i++ {
		strokes = append(strokes, g.line(pts[i], pts[i+1])...)
	}
	if closed && len(pts) > 2 {
		strokes = append(strokes, g.line(pts[len(pts)-1], pts[0])...)
	}
	return strokes
}

// ellipse strokes a circle of the given diameter around c.
func (g *generator) ellipse(c geom.Point, diameter float64) [][]geom.Point {
	r := diameter / 2
	steps := ellipseSteps(diameter)
	if g.o.Roughness <= 0 {
		ring := circlePoints(c, r, steps)
		return [][]geom.Point{append(ring, ring[0])}
	}

	var strokes [][]geom.Point
	for pass := 0; pass < 2; pass++ {
		start := g.rng.Float64() * 2 * math.Pi
		step := 2 * math.Pi / float64(steps)
		amp := math.Min(r*0.1, maxRandomnessOffset)
		ring := make([]geom.Point, 0, steps+2)
		// one extra step so the stroke overlaps its own start
		for i := 0; i <= steps+1; i++ {
			a := start + float64(i)*step
			rr := r + g.jitter(amp, 1)
			ring = append(ring, geom.Pt(c.X+rr*math.Cos(a), c.Y+rr*math.Sin(a)))
		}
		strokes = append(strokes, ring)
	}
	return strokes
}

// hachure strokes the parallel fill lines of a polygon.
func (g *generator) hachure(poly []geom.Point) [][]geom.Point {
	gap := g.o.HachureGap
	if gap <= 0 {
		gap = 4 * g.o.StrokeWidth
	}
	var strokes [][]geom.Point
	for _, seg := range hachureLines(poly, gap, hachureAngle) {
		strokes = append(strokes, g.line(seg[0], seg[1])...)
	}
	return strokes
}

func ellipseSteps(diameter float64) int {
	steps := int(math.Ceil(math.Pi * diameter / 6))
	if steps < 12 {
		steps = 12
	}
	return steps
}

func circlePoints(c geom.Point, r float64, steps int) []geom.Point {
	pts := make([]geom.Point, steps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = geom.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

func bezier(p0, p1, p2, p3 geom.Point, samples int) []geom.Point {
	pts := make([]geom.Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		u := 1 - t
		a := u * u * u
		b := 3 * u * u * t
		c := 3 * u * t * t
		d := t * t * t
		pts = append(pts, geom.Pt(
			a*p0.X+b*p1.X+c*p2.X+d*p3.X,
			a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
		))
	}
	return pts
}

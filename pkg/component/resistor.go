package component

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
)

const (
	zigzagPeaks = 4

	// bounding box padding along and across the resistor axis
	lengthPadding = 5.0
	widthPadding  = 10.0
)

// buildResistor lays the body out horizontally around the midpoint of the
// terminals and rotates it by p.Angle. The body takes the middle half of the
// terminal distance and two leads join it to the terminals.
func buildResistor(p Params) (Component, error) {
	n1, n2 := p.Node1, p.Node2
	length := geom.Distance(n1, n2)
	if length == 0 {
		return Component{}, fmt.Errorf("%w: resistor terminals coincide at (%g, %g)", ErrDegenerate, n1.X, n1.Y)
	}
	mid := n1.Mid(n2)
	body := length / 2

	style := render.Options{Stroke: Black, StrokeWidth: 2, Roughness: 1, Seed: p.Seed}

	var (
		shapes  []Shape
		outline []geom.Point
	)
	switch p.Kind {
	case ResistorZigzag:
		h := length * 0.15
		startX := mid.X - body/2
		steps := zigzagPeaks * 2
		pts := make([]geom.Point, 0, steps+1)
		for i := 0; i <= steps; i++ {
			x := startX + float64(i)*body/float64(steps)
			y := mid.Y
			if i%2 == 1 {
				if i%4 == 1 {
					y -= h
				} else {
					y += h
				}
			}
			pts = append(pts, geom.RotateAround(geom.Pt(x, y), mid, p.Angle))
		}
		zz := style
		zz.Roughness = 2
		zz.PreserveVertices = true
		shapes = append(shapes, Shape{Kind: ShapePath, Points: pts, Style: zz})
		outline = append(outline, pts...)
	default:
		h := length * 0.1
		x, y := mid.X-body/2, mid.Y-h/2
		shapes = append(shapes, Shape{
			Kind:     ShapeRect,
			X:        x,
			Y:        y,
			W:        body,
			H:        h,
			Rotation: p.Angle,
			Center:   mid,
			Style:    style,
		})
		corners := geom.BBoxOf(geom.Pt(x, y), geom.Pt(x+body, y+h)).Corners()
		outline = geom.RotateAll(corners, mid, p.Angle)
	}

	leadStart := geom.RotateAround(geom.Pt(mid.X-body/2, mid.Y), mid, p.Angle)
	leadEnd := geom.RotateAround(geom.Pt(mid.X+body/2, mid.Y), mid, p.Angle)
	lead := style
	lead.PreserveVertices = true
	shapes = append(shapes,
		Shape{Kind: ShapeLine, Points: []geom.Point{n1, leadStart}, Style: lead},
		Shape{Kind: ShapeLine, Points: []geom.Point{n2, leadEnd}, Style: lead},
	)

	// The box covers body and lead ends but not the terminals.
	outline = append(outline, leadStart, leadEnd)
	rad := geom.Radians(p.Angle)
	cos, sin := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	bb := geom.BBoxOf(outline...).Pad(
		lengthPadding*cos+widthPadding*sin,
		lengthPadding*sin+widthPadding*cos,
	)

	return Component{
		Kind:   p.Kind,
		Anchor: mid,
		Angle:  p.Angle,
		Seed:   p.Seed,
		Node1:  n1,
		Node2:  n2,
		BBox:   bb,
		Shapes: shapes,
	}, nil
}

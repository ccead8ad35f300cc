package component

import (
	"unicode/utf8"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
)

// Tag label dimensions.
const (
	TagHeight    = 24.0
	TagMinWidth  = 60.0
	tagCharWidth = 8.0
	tagLeadGap   = 5.0
	tagFontSize  = 14.0
	labelPadding = 5.0
	nodeDiameter = 10.0
)

// Ground and positive marker dimensions.
const (
	markerLead   = 30.0
	markerBase   = 20.0
	markerHeight = 15.0
)

// TagWidth returns the width of a tag label holding text.
func TagWidth(text string) float64 {
	w := TagHeight + tagCharWidth*float64(utf8.RuneCountInString(text))
	if w < TagMinWidth {
		return TagMinWidth
	}
	return w
}

// buildTag draws a notched flag pointing back at the anchor:
//
//	  ____________
//	 /            |
//	<    text     |
//	 \____________|
//
// The outline is laid out at angle 0 and rotated around the anchor.
func buildTag(p Params) Component {
	text := p.Text
	if text == "" {
		text = DefaultText
	}
	a := p.Anchor
	w := TagWidth(text)
	notch := TagHeight / 2
	half := TagHeight / 2
	s := geom.Pt(a.X+tagLeadGap, a.Y)

	pts := geom.RotateAll([]geom.Point{
		geom.Pt(s.X+notch, s.Y-half),
		geom.Pt(s.X+w, s.Y-half),
		geom.Pt(s.X+w, s.Y+half),
		geom.Pt(s.X+notch, s.Y+half),
		s,
	}, a, p.Angle)

	textAngle := p.Angle
	if p.Angle > 90 && p.Angle <= 270 {
		textAngle += 180
	}
	center := geom.RotateAround(geom.Pt(a.X+(w+notch)/2, a.Y), a, p.Angle)

	shapes := []Shape{
		{
			Kind:   ShapePath,
			Points: pts,
			Closed: true,
			Style: render.Options{
				Stroke:      LightBlue,
				StrokeWidth: 2,
				Fill:        LightYellow,
				FillStyle:   render.FillSolid,
				Roughness:   1,
				Seed:        p.Seed,
			},
		},
		{
			Kind:     ShapeText,
			Center:   geom.Pt(center.X, center.Y+2),
			Rotation: textAngle,
			Text:     text,
			FontSize: tagFontSize,
			Style:    render.Options{Stroke: Black},
		},
		nodeMarker(a, p.Seed),
	}

	return Component{
		Kind:   LabelTag,
		Anchor: a,
		Angle:  p.Angle,
		Seed:   p.Seed,
		Node1:  a,
		Text:   text,
		BBox:   geom.BBoxOf(pts[:4]...).Pad(labelPadding, labelPadding),
		Shapes: shapes,
	}
}

// buildTriangle draws a lead from the anchor ending in a filled triangle:
// black for ground, red for the positive rail.
func buildTriangle(p Params) Component {
	a := p.Anchor
	local := func(x, y float64) geom.Point {
		return geom.RotateAround(geom.Pt(a.X+x, a.Y+y), a, p.Angle)
	}
	leadEnd := local(markerLead, 0)
	baseStart := local(markerLead, markerBase/2)
	baseEnd := local(markerLead, -markerBase/2)
	apex := local(markerLead+markerHeight, 0)

	fill := Black
	if p.Kind == LabelPositive {
		fill = Red
	}
	shapes := []Shape{
		{
			Kind:   ShapeLine,
			Points: []geom.Point{a, leadEnd},
			Style: render.Options{
				Stroke:           Black,
				StrokeWidth:      2,
				Roughness:        1,
				PreserveVertices: true,
				Seed:             p.Seed,
			},
		},
		{
			Kind:   ShapePath,
			Points: []geom.Point{baseStart, baseEnd, apex},
			Closed: true,
			Style: render.Options{
				Stroke:      Black,
				StrokeWidth: 2,
				Fill:        fill,
				FillStyle:   render.FillHachure,
				FillWeight:  3,
				HachureGap:  4,
				Roughness:   1,
				Seed:        p.Seed,
			},
		},
	}

	return Component{
		Kind:   p.Kind,
		Anchor: a,
		Angle:  p.Angle,
		Seed:   p.Seed,
		Node1:  a,
		BBox:   geom.BBoxOf(leadEnd, baseStart, baseEnd, apex).Pad(labelPadding, labelPadding),
		Shapes: shapes,
	}
}

func nodeMarker(at geom.Point, seed int64) Shape {
	return Shape{
		Kind:     ShapeCircle,
		Center:   at,
		Diameter: nodeDiameter,
		Style: render.Options{
			Stroke:      Black,
			StrokeWidth: 1,
			Fill:        Red,
			FillStyle:   render.FillSolid,
			Roughness:   1,
			Seed:        seed,
		},
	}
}

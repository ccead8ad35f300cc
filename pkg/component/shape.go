package component

import (
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
)

// ShapeKind selects which render primitive draws a Shape.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeLine
	ShapePath
	ShapeCircle
	ShapeText
)

// Shape is one drawing primitive of a component in canvas coordinates.
type Shape struct {
	Kind ShapeKind
	// Points holds the two ends of a line or the vertices of a path.
	Points []geom.Point
	Closed bool

	// Rectangle in its unrotated frame.
	X, Y, W, H float64

	// Rotation is applied around Center (rectangles and text). Center is
	// also the middle of a circle and the anchor of a text run.
	Rotation float64
	Center   geom.Point
	Diameter float64

	Text     string
	FontSize float64

	Style render.Options
}

// Draw hands every shape of c to canvas and groups the results into one
// handle. The handle is not appended to the surface.
func Draw(c Component, canvas render.Canvas) render.Handle {
	handles := make([]render.Handle, 0, len(c.Shapes))
	for _, s := range c.Shapes {
		if h := drawShape(s, canvas); h != nil {
			handles = append(handles, h)
		}
	}
	return canvas.Group(handles...)
}

func drawShape(s Shape, canvas render.Canvas) render.Handle {
	switch s.Kind {
	case ShapeRect:
		h := canvas.Rectangle(s.X, s.Y, s.W, s.H, s.Style)
		if s.Rotation != 0 {
			h = canvas.Rotate(h, s.Rotation, s.Center)
		}
		return h
	case ShapeLine:
		if len(s.Points) != 2 {
			return nil
		}
		return canvas.Line(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y, s.Style)
	case ShapePath:
		return canvas.Path(s.Points, s.Closed, s.Style)
	case ShapeCircle:
		return canvas.Circle(s.Center.X, s.Center.Y, s.Diameter, s.Style)
	case ShapeText:
		return canvas.Text(render.TextSpec{
			At:       s.Center,
			Text:     s.Text,
			Angle:    s.Rotation,
			FontSize: s.FontSize,
			Color:    s.Style.Stroke,
		})
	}
	return nil
}

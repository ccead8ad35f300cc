// Package render defines the drawing collaborator the component factory and
// the editor talk to. Shapes are created through a Renderer, composed through
// a Graph and shown by appending them to a Surface. The package holds no
// implementation; see package rough for the hand-drawn one.
package render

import (
	"image/color"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// FillStyle selects how a closed shape's interior is painted.
type FillStyle int

const (
	// FillNone leaves the interior empty.
	FillNone FillStyle = iota
	// FillSolid paints the interior with the fill color.
	FillSolid
	// FillHachure paints parallel strokes across the interior.
	FillHachure
)

// Options mirrors the per-shape style knobs of a sketchy renderer.
type Options struct {
	Stroke      color.NRGBA
	StrokeWidth float64
	Fill        color.NRGBA
	FillStyle   FillStyle
	// FillWeight is the stroke width used for hachure lines.
	FillWeight float64
	HachureGap float64
	// Roughness scales the jitter applied to strokes; 0 draws clean lines.
	Roughness float64
	// PreserveVertices pins stroke endpoints so joined shapes stay joined.
	PreserveVertices bool
	Seed             int64
}

// Handle is an opaque reference to a drawn element. Only the Canvas that
// produced a handle knows what is behind it.
type Handle interface{}

// TextSpec describes a text node centred on At and rotated by Angle degrees
// around that point.
type TextSpec struct {
	At       geom.Point
	Text     string
	Angle    float64
	FontSize float64
	Color    color.NRGBA
}

// Renderer creates primitive shapes.
type Renderer interface {
	Rectangle(x, y, w, h float64, o Options) Handle
	Line(x1, y1, x2, y2 float64, o Options) Handle
	// Circle draws a circle of the given diameter centred on (x, y).
	Circle(x, y, diameter float64, o Options) Handle
	Path(points []geom.Point, closed bool, o Options) Handle
}

// Graph composes handles.
type Graph interface {
	Group(children ...Handle) Handle
	// Rotate wraps h in a rotation of degrees around center.
	Rotate(h Handle, degrees float64, center geom.Point) Handle
	Text(spec TextSpec) Handle
}

// Surface is the ordered set of handles currently on screen.
type Surface interface {
	Append(h Handle)
	Remove(h Handle)
}

// Canvas bundles the three roles. Frontends pass one Canvas to the editor.
type Canvas interface {
	Renderer
	Graph
	Surface
}

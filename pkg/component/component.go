// Package component builds the editor's circuit symbols. A Component is an
// immutable snapshot: its geometry, bounding box and drawing primitives are
// computed once by Build and never edited afterwards. Moving or relabelling a
// symbol means building a new one.
package component

import (
	"fmt"
	"image/color"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// ID identifies a component within a scene. It survives replacements.
type ID int

// NoID is the zero ID, never assigned by a scene.
const NoID ID = 0

// DefaultText is the text of a fresh tag label.
const DefaultText = "Label"

var (
	Black       = color.NRGBA{A: 255}
	Red         = color.NRGBA{R: 255, A: 255}
	LightBlue   = color.NRGBA{R: 0xAD, G: 0xD8, B: 0xE6, A: 255}
	LightYellow = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xE0, A: 255}
)

// Component is a placed symbol.
type Component struct {
	ID   ID
	Kind Kind
	// Anchor is the midpoint of a resistor or the attachment point of a label.
	Anchor geom.Point
	Angle  float64
	Seed   int64
	// Node1 and Node2 are the resistor terminals. Labels carry their anchor
	// in Node1 and leave Node2 zero.
	Node1 geom.Point
	Node2 geom.Point
	// Text is only meaningful for tag labels.
	Text   string
	BBox   geom.BBox
	Shapes []Shape
}

// Params are the inputs of Build. Resistors read Node1, Node2, Angle and
// Seed; labels read Anchor, Angle, Seed and (tags only) Text.
type Params struct {
	Kind   Kind
	Node1  geom.Point
	Node2  geom.Point
	Anchor geom.Point
	Angle  float64
	Seed   int64
	Text   string
}

// Build computes the geometry of a component. It fails with ErrUnknownKind
// for KindUnknown or out-of-range kinds and with ErrDegenerate for a
// resistor whose terminals coincide.
func Build(p Params) (Component, error) {
	switch p.Kind {
	case ResistorRectangle, ResistorZigzag:
		return buildResistor(p)
	case LabelTag:
		return buildTag(p), nil
	case LabelGround, LabelPositive:
		return buildTriangle(p), nil
	}
	return Component{}, fmt.Errorf("%w %q", ErrUnknownKind, p.Kind.String())
}

// Params returns the inputs that rebuild c.
func (c Component) Params() Params {
	return Params{
		Kind:   c.Kind,
		Node1:  c.Node1,
		Node2:  c.Node2,
		Anchor: c.Anchor,
		Angle:  c.Angle,
		Seed:   c.Seed,
		Text:   c.Text,
	}
}

// Nodes returns the connection points other components may snap to.
func (c Component) Nodes() []geom.Point {
	if c.Kind.IsResistor() {
		return []geom.Point{c.Node1, c.Node2}
	}
	return []geom.Point{c.Anchor}
}

// Contains reports whether p hits the component's bounding box.
func (c Component) Contains(p geom.Point) bool {
	return c.BBox.Contains(p)
}

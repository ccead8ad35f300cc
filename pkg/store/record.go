// Package store persists sketches. A sketch is a flat list of Records, the
// minimal fields needed to rebuild each component through the factory.
// Records can be kept as a JSON array (FileStore) or as an s-expression
// sheet (WriteSheet, ReadSheet).
package store

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// ErrMissingNodes is returned for a resistor record without both terminals.
var ErrMissingNodes = errors.New("store: resistor record without node1/node2")

// Record is the serializable form of a component.
type Record struct {
	Type    string      `json:"type"`
	Subtype string      `json:"subtype"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Angle   float64     `json:"angle"`
	Seed    int64       `json:"seed"`
	Text    string      `json:"text,omitempty"`
	Node1   *geom.Point `json:"node1,omitempty"`
	Node2   *geom.Point `json:"node2,omitempty"`
}

// ToRecord captures c. Bounding box and drawing are derived data and are
// not stored.
func ToRecord(c component.Component) Record {
	r := Record{
		Type:    c.Kind.Type(),
		Subtype: c.Kind.Subtype(),
		X:       c.Anchor.X,
		Y:       c.Anchor.Y,
		Angle:   c.Angle,
		Seed:    c.Seed,
	}
	switch c.Kind {
	case component.ResistorRectangle, component.ResistorZigzag:
		n1, n2 := c.Node1, c.Node2
		r.Node1, r.Node2 = &n1, &n2
	case component.LabelGround, component.LabelPositive:
		n1 := c.Node1
		r.Node1 = &n1
	case component.LabelTag:
		r.Text = c.Text
	}
	return r
}

// FromRecord rebuilds a component. Unknown kinds fail with
// component.ErrUnknownKind, resistors without terminals with ErrMissingNodes.
func FromRecord(r Record) (component.Component, error) {
	kind, err := component.Lookup(r.Type, r.Subtype)
	if err != nil {
		return component.Component{}, err
	}
	p := component.Params{
		Kind:   kind,
		Anchor: geom.Pt(r.X, r.Y),
		Angle:  r.Angle,
		Seed:   r.Seed,
		Text:   r.Text,
	}
	if kind.IsResistor() {
		if r.Node1 == nil || r.Node2 == nil {
			return component.Component{}, fmt.Errorf("%w (%s)", ErrMissingNodes, kind)
		}
		p.Node1, p.Node2 = *r.Node1, *r.Node2
	}
	c, err := component.Build(p)
	if err != nil {
		return component.Component{}, fmt.Errorf("store: rebuild %s: %w", kind, err)
	}
	return c, nil
}

// ToRecords captures every component in order.
func ToRecords(comps []component.Component) []Record {
	records := make([]Record, 0, len(comps))
	for _, c := range comps {
		records = append(records, ToRecord(c))
	}
	return records
}

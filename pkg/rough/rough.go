// Package rough is a small seeded hand-drawn renderer. Shapes are turned into
// jittered polylines when they are created; the resulting handles form a tree
// of groups, rotations and text that Flatten resolves into world-space items
// for a backend to paint.
package rough

import (
	"image/color"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
)

// ItemKind says how a backend should paint an Item.
type ItemKind int

const (
	// ItemStroke is an open polyline drawn with Width.
	ItemStroke ItemKind = iota
	// ItemFill is a closed polygon painted solid.
	ItemFill
	// ItemText is a text run centred on At.
	ItemText
)

// Item is one paintable element in world space.
type Item struct {
	Kind   ItemKind
	Points []geom.Point
	Width  float64
	Color  color.NRGBA

	Text     string
	At       geom.Point
	Angle    float64
	FontSize float64
}

type nodeKind int

const (
	kindShape nodeKind = iota
	kindGroup
	kindRotate
	kindText
)

// node is the concrete value behind every handle returned by Canvas.
type node struct {
	kind     nodeKind
	items    []Item
	children []*node
	degrees  float64
	center   geom.Point
	text     render.TextSpec
}

// Canvas implements render.Canvas. Its surface is an ordered list of handles;
// later handles paint over earlier ones.
type Canvas struct {
	handles []render.Handle
}

var _ render.Canvas = (*Canvas)(nil)

// New returns an empty canvas.
func New() *Canvas {
	return &Canvas{}
}

// Rectangle draws an axis-aligned rectangle with its top-left corner at (x, y).
func (c *Canvas) Rectangle(x, y, w, h float64, o render.Options) render.Handle {
	pts := []geom.Point{
		geom.Pt(x, y),
		geom.Pt(x+w, y),
		geom.Pt(x+w, y+h),
		geom.Pt(x, y+h),
	}
	return shape(pts, true, o)
}

// Line draws a single segment.
func (c *Canvas) Line(x1, y1, x2, y2 float64, o render.Options) render.Handle {
	return shape([]geom.Point{geom.Pt(x1, y1), geom.Pt(x2, y2)}, false, o)
}

// Circle draws a circle of the given diameter centred on (x, y).
func (c *Canvas) Circle(x, y, diameter float64, o render.Options) render.Handle {
	g := newGenerator(o)
	center := geom.Pt(x, y)
	var items []Item
	if o.FillStyle != render.FillNone {
		ring := circlePoints(center, diameter/2, ellipseSteps(diameter))
		items = append(items, fillItems(g, ring, o)...)
	}
	items = append(items, strokeItems(g.ellipse(center, diameter), o.StrokeWidth, o.Stroke)...)
	return &node{kind: kindShape, items: items}
}

// Path draws a polyline through points, closing it when closed is set.
func (c *Canvas) Path(points []geom.Point, closed bool, o render.Options) render.Handle {
	pts := make([]geom.Point, len(points))
	copy(pts, points)
	return shape(pts, closed, o)
}

// Group bundles children into one handle.
func (c *Canvas) Group(children ...render.Handle) render.Handle {
	n := &node{kind: kindGroup}
	for _, h := range children {
		if child, ok := h.(*node); ok && child != nil {
			n.children = append(n.children, child)
		}
	}
	return n
}

// Rotate wraps h in a rotation of degrees around center.
func (c *Canvas) Rotate(h render.Handle, degrees float64, center geom.Point) render.Handle {
	n := &node{kind: kindRotate, degrees: degrees, center: center}
	if child, ok := h.(*node); ok && child != nil {
		n.children = []*node{child}
	}
	return n
}

// Text creates a text node.
func (c *Canvas) Text(spec render.TextSpec) render.Handle {
	return &node{kind: kindText, text: spec}
}

// Append adds h on top of the surface.
func (c *Canvas) Append(h render.Handle) {
	if h == nil {
		return
	}
	c.handles = append(c.handles, h)
}

// Remove takes h off the surface. Removing a handle that is not on the
// surface is a no-op.
func (c *Canvas) Remove(h render.Handle) {
	for i, cur := range c.handles {
		if cur == h {
			c.handles = append(c.handles[:i], c.handles[i+1:]...)
			return
		}
	}
}

// Handles returns the handles on the surface in paint order.
func (c *Canvas) Handles() []render.Handle {
	out := make([]render.Handle, len(c.handles))
	copy(out, c.handles)
	return out
}

// Len returns the number of handles on the surface.
func (c *Canvas) Len() int {
	return len(c.handles)
}

// Items flattens every handle on the surface in paint order.
func (c *Canvas) Items() []Item {
	var out []Item
	for _, h := range c.handles {
		out = append(out, Flatten(h)...)
	}
	return out
}

// Flatten resolves the handle tree rooted at h into world-space items.
// Handles not produced by this package yield nothing.
func Flatten(h render.Handle) []Item {
	n, ok := h.(*node)
	if !ok || n == nil {
		return nil
	}
	var out []Item
	n.flatten(&out, nil)
	return out
}

type rotation struct {
	degrees float64
	center  geom.Point
}

// flatten appends n's items to out. xf lists the rotations to apply,
// innermost first.
func (n *node) flatten(out *[]Item, xf []rotation) {
	switch n.kind {
	case kindShape:
		for _, it := range n.items {
			*out = append(*out, transform(it, xf))
		}
	case kindText:
		it := Item{
			Kind:     ItemText,
			Text:     n.text.Text,
			At:       n.text.At,
			Angle:    n.text.Angle,
			FontSize: n.text.FontSize,
			Color:    n.text.Color,
		}
		*out = append(*out, transform(it, xf))
	case kindGroup:
		for _, child := range n.children {
			child.flatten(out, xf)
		}
	case kindRotate:
		inner := append([]rotation{{degrees: n.degrees, center: n.center}}, xf...)
		for _, child := range n.children {
			child.flatten(out, inner)
		}
	}
}

func transform(it Item, xf []rotation) Item {
	if len(xf) == 0 {
		return it
	}
	pts := make([]geom.Point, len(it.Points))
	copy(pts, it.Points)
	for _, r := range xf {
		for i := range pts {
			pts[i] = geom.RotateAround(pts[i], r.center, r.degrees)
		}
		it.At = geom.RotateAround(it.At, r.center, r.degrees)
		it.Angle += r.degrees
	}
	it.Points = pts
	return it
}

func shape(pts []geom.Point, closed bool, o render.Options) *node {
	g := newGenerator(o)
	var items []Item
	if closed && o.FillStyle != render.FillNone {
		items = append(items, fillItems(g, pts, o)...)
	}
	items = append(items, strokeItems(g.polygon(pts, closed), o.StrokeWidth, o.Stroke)...)
	return &node{kind: kindShape, items: items}
}

func fillItems(g *generator, poly []geom.Point, o render.Options) []Item {
	switch o.FillStyle {
	case render.FillSolid:
		pts := make([]geom.Point, len(poly))
		copy(pts, poly)
		return []Item{{Kind: ItemFill, Points: pts, Color: o.Fill}}
	case render.FillHachure:
		w := o.FillWeight
		if w <= 0 {
			w = o.StrokeWidth / 2
		}
		return strokeItems(g.hachure(poly), w, o.Fill)
	}
	return nil
}

func strokeItems(strokes [][]geom.Point, width float64, col color.NRGBA) []Item {
	items := make([]Item, 0, len(strokes))
	for _, s := range strokes {
		items = append(items, Item{Kind: ItemStroke, Points: s, Width: width, Color: col})
	}
	return items
}

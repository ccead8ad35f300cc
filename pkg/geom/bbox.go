package geom

import "math"

// BBox is an axis-aligned rectangle in canvas coordinates.
type BBox struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// EmptyBBox returns a box that contains nothing; expanding it by a point
// yields a zero-sized box at that point.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
}

// BBoxOf returns the tightest box around pts.
func BBoxOf(pts ...Point) BBox {
	bb := EmptyBBox()
	for _, p := range pts {
		bb.Expand(p)
	}
	return bb
}

// IsEmpty reports whether the box contains no points.
func (bb BBox) IsEmpty() bool {
	return bb.MinX > bb.MaxX || bb.MinY > bb.MaxY
}

// Expand grows the box to include p.
func (bb *BBox) Expand(p Point) {
	if p.X < bb.MinX {
		bb.MinX = p.X
	}
	if p.X > bb.MaxX {
		bb.MaxX = p.X
	}
	if p.Y < bb.MinY {
		bb.MinY = p.Y
	}
	if p.Y > bb.MaxY {
		bb.MaxY = p.Y
	}
}

// Union returns the smallest box containing bb and other.
func (bb BBox) Union(other BBox) BBox {
	if other.IsEmpty() {
		return bb
	}
	out := bb
	out.Expand(Point{X: other.MinX, Y: other.MinY})
	out.Expand(Point{X: other.MaxX, Y: other.MaxY})
	return out
}

// Pad grows the box by dx on both horizontal sides and dy on both vertical sides.
func (bb BBox) Pad(dx, dy float64) BBox {
	return BBox{
		MinX: bb.MinX - dx,
		MaxX: bb.MaxX + dx,
		MinY: bb.MinY - dy,
		MaxY: bb.MaxY + dy,
	}
}

// Contains reports whether p lies inside the box, edges included.
func (bb BBox) Contains(p Point) bool {
	return p.X >= bb.MinX && p.X <= bb.MaxX && p.Y >= bb.MinY && p.Y <= bb.MaxY
}

// Width returns the horizontal extent.
func (bb BBox) Width() float64 {
	return bb.MaxX - bb.MinX
}

// Height returns the vertical extent.
func (bb BBox) Height() float64 {
	return bb.MaxY - bb.MinY
}

// Center returns the center point.
func (bb BBox) Center() Point {
	return Point{X: (bb.MinX + bb.MaxX) / 2, Y: (bb.MinY + bb.MaxY) / 2}
}

// Corners returns the four corners clockwise from the top-left.
func (bb BBox) Corners() []Point {
	return []Point{
		{X: bb.MinX, Y: bb.MinY},
		{X: bb.MaxX, Y: bb.MinY},
		{X: bb.MaxX, Y: bb.MaxY},
		{X: bb.MinX, Y: bb.MaxY},
	}
}

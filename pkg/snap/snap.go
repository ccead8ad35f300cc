// Package snap resolves free-hand pointer input to the editor's grid of
// allowed directions, allowed lengths and existing connection nodes.
package snap

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// AllowedLengths are the resistor lengths a drawn stroke snaps to, in order
// of preference on ties.
var AllowedLengths = []float64{50, 100, 150, 200}

// Angle rounds raw (degrees) to the nearest multiple of 90. A result of 360
// is folded to 0 so callers only ever see 0, 90, 180 or 270 for inputs in
// [0, 360).
func Angle(raw float64) float64 {
	snapped := math.Round(raw/90) * 90
	if snapped == 360 {
		snapped = 0
	}
	return snapped
}

// Length returns the entry of AllowedLengths closest to d. The comparison is
// strict, so on a tie the earlier (shorter) length wins: 125 snaps to 100.
func Length(d float64) float64 {
	closest := AllowedLengths[0]
	minDiff := math.Abs(d - closest)
	for _, l := range AllowedLengths[1:] {
		if diff := math.Abs(d - l); diff < minDiff {
			closest = l
			minDiff = diff
		}
	}
	return closest
}

// Endpoint offsets start along the axis named by snappedAngle by the snapped
// form of distance. Any angle other than 0, 90, 180 or 270 leaves start
// unchanged.
func Endpoint(start geom.Point, snappedAngle, distance float64) geom.Point {
	l := Length(distance)
	switch snappedAngle {
	case 0:
		return geom.Pt(start.X+l, start.Y)
	case 90:
		return geom.Pt(start.X, start.Y+l)
	case 180:
		return geom.Pt(start.X-l, start.Y)
	case 270:
		return geom.Pt(start.X, start.Y-l)
	}
	return start
}

// NearestNode scans the connection nodes of every component except exclude
// and returns the one closest to target whose distance is strictly below
// threshold. The boolean is false when no node qualifies.
//
// Connectivity is purely positional. Two components are "connected" when
// a node of one coincides with a node of the other; no graph is kept.
func NearestNode(target geom.Point, comps []component.Component, exclude component.ID, threshold float64) (geom.Point, bool) {
	var (
		nearest geom.Point
		found   bool
	)
	minDist := math.Inf(1)
	for _, c := range comps {
		if c.ID == exclude && exclude != component.NoID {
			continue
		}
		for _, n := range c.Nodes() {
			d := geom.Distance(n, target)
			if d < minDist && d < threshold {
				minDist = d
				nearest = n
				found = true
			}
		}
	}
	return nearest, found
}

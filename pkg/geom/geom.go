// Package geom provides the 2D geometry kernel shared by the sketch editor:
// points, distances, angles and rotations about arbitrary centers.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D coordinate in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func fromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return r2.Norm(r2.Sub(p2.vec(), p1.vec()))
}

// AngleOfVector returns the direction of (dx, dy) in degrees within [0, 360).
// The zero vector yields 0, which is what atan2 reports for it.
func AngleOfVector(dx, dy float64) float64 {
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RotateAround rotates p about center by the given angle in degrees.
// Positive angles turn clockwise on screen since Y grows downward.
func RotateAround(p, center Point, degrees float64) Point {
	if degrees == 0 {
		return p
	}
	return fromVec(r2.Rotate(p.vec(), Radians(degrees), center.vec()))
}

// RotateAll rotates every point in pts about center and returns a new slice.
func RotateAll(pts []Point, center Point, degrees float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = RotateAround(p, center, degrees)
	}
	return out
}

// NormalizeAngle folds an angle in degrees into [0, 360).
func NormalizeAngle(degrees float64) float64 {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// ApproxEqual reports whether p and q differ by at most eps on each axis.
func ApproxEqual(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

package rough

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
)

var black = color.NRGBA{A: 255}

func sketchy(seed int64) render.Options {
	return render.Options{Stroke: black, StrokeWidth: 2, Roughness: 1, Seed: seed}
}

func TestSameSeedSameStrokes(t *testing.T) {
	c := New()
	a := Flatten(c.Rectangle(10, 10, 80, 30, sketchy(42)))
	b := Flatten(c.Rectangle(10, 10, 80, 30, sketchy(42)))
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical output for identical seeds")
	}
}

func TestDifferentSeedDifferentStrokes(t *testing.T) {
	c := New()
	a := Flatten(c.Line(0, 0, 100, 0, sketchy(1)))
	b := Flatten(c.Line(0, 0, 100, 0, sketchy(2)))
	if reflect.DeepEqual(a, b) {
		t.Error("Expected different output for different seeds")
	}
}

func TestZeroRoughnessIsClean(t *testing.T) {
	c := New()
	items := Flatten(c.Line(0, 0, 100, 0, render.Options{Stroke: black, StrokeWidth: 1}))
	if len(items) != 1 {
		t.Fatalf("Expected 1 stroke, got %d", len(items))
	}
	want := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
	if !reflect.DeepEqual(items[0].Points, want) {
		t.Errorf("Expected %v, got %v", want, items[0].Points)
	}
}

func TestPreserveVerticesPinsEndpoints(t *testing.T) {
	c := New()
	o := sketchy(99)
	o.PreserveVertices = true
	o.Roughness = 2
	items := Flatten(c.Line(10, 20, 110, 20, o))
	if len(items) != 2 {
		t.Fatalf("Expected 2 passes, got %d", len(items))
	}
	for i, it := range items {
		first, last := it.Points[0], it.Points[len(it.Points)-1]
		if !geom.ApproxEqual(first, geom.Pt(10, 20), 1e-9) || !geom.ApproxEqual(last, geom.Pt(110, 20), 1e-9) {
			t.Errorf("pass %d: endpoints moved to %v, %v", i, first, last)
		}
	}
}

func TestRotateTransformsItems(t *testing.T) {
	c := New()
	line := c.Line(100, 100, 200, 100, render.Options{Stroke: black, StrokeWidth: 1})
	items := Flatten(c.Rotate(line, 90, geom.Pt(150, 100)))
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	p := items[0].Points
	if !geom.ApproxEqual(p[0], geom.Pt(150, 50), 1e-9) || !geom.ApproxEqual(p[1], geom.Pt(150, 150), 1e-9) {
		t.Errorf("Unexpected rotated points %v", p)
	}
}

func TestTextRotation(t *testing.T) {
	c := New()
	txt := c.Text(render.TextSpec{At: geom.Pt(10, 0), Text: "R1", Angle: 0, FontSize: 14})
	items := Flatten(c.Group(c.Rotate(txt, 180, geom.Pt(0, 0))))
	if len(items) != 1 || items[0].Kind != ItemText {
		t.Fatalf("Expected a single text item, got %+v", items)
	}
	if items[0].Angle != 180 {
		t.Errorf("Expected text angle 180, got %v", items[0].Angle)
	}
	if !geom.ApproxEqual(items[0].At, geom.Pt(-10, 0), 1e-9) {
		t.Errorf("Expected text at (-10,0), got %v", items[0].At)
	}
}

func TestHachureFillStaysInside(t *testing.T) {
	c := New()
	o := render.Options{
		Stroke:      black,
		StrokeWidth: 2,
		Fill:        color.NRGBA{R: 255, A: 255},
		FillStyle:   render.FillHachure,
		FillWeight:  3,
		HachureGap:  4,
	}
	items := Flatten(c.Path([]geom.Point{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 20, Y: 30}}, true, o))

	var hachure int
	bb := geom.BBoxOf(geom.Pt(0, 0), geom.Pt(40, 0), geom.Pt(20, 30)).Pad(1e-6, 1e-6)
	for _, it := range items {
		if it.Color != o.Fill {
			continue
		}
		hachure++
		if it.Width != 3 {
			t.Errorf("Expected hachure width 3, got %v", it.Width)
		}
		for _, p := range it.Points {
			if !bb.Contains(p) {
				t.Errorf("Hachure point %v outside the triangle bounds", p)
			}
		}
	}
	if hachure == 0 {
		t.Error("Expected hachure strokes")
	}
}

func TestSurfaceAppendRemove(t *testing.T) {
	c := New()
	a := c.Line(0, 0, 1, 1, render.Options{})
	b := c.Line(0, 0, 2, 2, render.Options{})
	c.Append(a)
	c.Append(b)
	if c.Len() != 2 {
		t.Fatalf("Expected 2 handles, got %d", c.Len())
	}
	c.Remove(a)
	if c.Len() != 1 || c.Handles()[0] != b {
		t.Errorf("Expected only the second handle to remain")
	}
	c.Remove(a)
	if c.Len() != 1 {
		t.Errorf("Removing an absent handle changed the surface")
	}
}

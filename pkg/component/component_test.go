package component

import (
	"errors"
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
)

const tol = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func mustBuild(t *testing.T, p Params) Component {
	t.Helper()
	c, err := Build(p)
	if err != nil {
		t.Fatalf("Build(%v) failed: %v", p.Kind, err)
	}
	return c
}

func TestLookup(t *testing.T) {
	for _, k := range Kinds() {
		got, err := Lookup(k.Type(), k.Subtype())
		if err != nil {
			t.Errorf("Lookup(%q, %q) failed: %v", k.Type(), k.Subtype(), err)
			continue
		}
		if got != k {
			t.Errorf("Lookup(%q, %q) = %v, want %v", k.Type(), k.Subtype(), got, k)
		}
	}

	_, err := Lookup("label", "arrow")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Expected ErrUnknownKind, got %v", err)
	}
	if err.Error() != `component: unknown kind "label/arrow"` {
		t.Errorf("Unexpected error text: %s", err)
	}

	if k, err := ParseKind("resistor/zigzag"); err != nil || k != ResistorZigzag {
		t.Errorf("ParseKind(resistor/zigzag) = %v, %v", k, err)
	}
	if _, err := ParseKind("resistor"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind for a bare type, got %v", err)
	}
}

func TestBuildRejectsUnknownKind(t *testing.T) {
	if _, err := Build(Params{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind for the zero kind, got %v", err)
	}
}

func TestBuildRejectsCoincidentTerminals(t *testing.T) {
	_, err := Build(Params{Kind: ResistorRectangle, Node1: geom.Pt(5, 5), Node2: geom.Pt(5, 5)})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate, got %v", err)
	}
}

func TestResistorHorizontalBBox(t *testing.T) {
	for _, kind := range []Kind{ResistorRectangle, ResistorZigzag} {
		c := mustBuild(t, Params{Kind: kind, Node1: geom.Pt(100, 100), Node2: geom.Pt(200, 100), Seed: 3})

		if !(c.BBox.MinY < 100 && 100 < c.BBox.MaxY) {
			t.Errorf("%v: bbox %+v does not straddle the axis", kind, c.BBox)
		}
		// lead ends at 125 and 175, plus 5 of length padding
		if !near(c.BBox.MinX, 120) || !near(c.BBox.MaxX, 180) {
			t.Errorf("%v: expected x range 120..180, got %v..%v", kind, c.BBox.MinX, c.BBox.MaxX)
		}
		if c.Anchor != geom.Pt(150, 100) {
			t.Errorf("%v: expected anchor (150,100), got %v", kind, c.Anchor)
		}
	}

	c := mustBuild(t, Params{Kind: ResistorRectangle, Node1: geom.Pt(100, 100), Node2: geom.Pt(200, 100)})
	if !near(c.BBox.MinY, 85) || !near(c.BBox.MaxY, 115) {
		t.Errorf("Expected y range 85..115, got %v..%v", c.BBox.MinY, c.BBox.MaxY)
	}
}

func TestResistorRotatedBBox(t *testing.T) {
	flat := mustBuild(t, Params{Kind: ResistorRectangle, Node1: geom.Pt(100, 100), Node2: geom.Pt(200, 100)})
	upright := mustBuild(t, Params{Kind: ResistorRectangle, Node1: geom.Pt(150, 50), Node2: geom.Pt(150, 150), Angle: 90})

	mid := geom.Pt(150, 100)
	want := geom.BBoxOf(geom.RotateAll(flat.BBox.Corners(), mid, 90)...)
	got := upright.BBox
	if !near(got.MinX, want.MinX) || !near(got.MaxX, want.MaxX) || !near(got.MinY, want.MinY) || !near(got.MaxY, want.MaxY) {
		t.Errorf("Expected rotated bbox %+v, got %+v", want, got)
	}
	if !near(got.Width(), flat.BBox.Height()) || !near(got.Height(), flat.BBox.Width()) {
		t.Errorf("Expected width/height to swap: flat %vx%v, upright %vx%v",
			flat.BBox.Width(), flat.BBox.Height(), got.Width(), got.Height())
	}
}

func TestResistorExcludesTerminals(t *testing.T) {
	c := mustBuild(t, Params{Kind: ResistorRectangle, Node1: geom.Pt(100, 100), Node2: geom.Pt(200, 100)})
	if c.Contains(c.Node1) || c.Contains(c.Node2) {
		t.Error("Expected terminals outside the bbox")
	}
	if !c.Contains(c.Anchor) {
		t.Error("Expected the body centre inside the bbox")
	}
}

func TestZigzagVertices(t *testing.T) {
	c := mustBuild(t, Params{Kind: ResistorZigzag, Node1: geom.Pt(0, 0), Node2: geom.Pt(0, 100), Angle: 90})
	body := c.Shapes[0]
	if body.Kind != ShapePath || len(body.Points) != 9 {
		t.Fatalf("Expected a 9 vertex path, got kind %v with %d points", body.Kind, len(body.Points))
	}
	if !body.Style.PreserveVertices || body.Style.Roughness != 2 {
		t.Errorf("Unexpected zigzag style %+v", body.Style)
	}
	lead1, lead2 := c.Shapes[1], c.Shapes[2]
	if !geom.ApproxEqual(body.Points[0], lead1.Points[1], tol) {
		t.Errorf("Zigzag start %v does not meet lead %v", body.Points[0], lead1.Points[1])
	}
	if !geom.ApproxEqual(body.Points[8], lead2.Points[1], tol) {
		t.Errorf("Zigzag end %v does not meet lead %v", body.Points[8], lead2.Points[1])
	}
}

func TestTagLabel(t *testing.T) {
	c := mustBuild(t, Params{Kind: LabelTag, Anchor: geom.Pt(100, 100), Seed: 9})
	if c.Text != DefaultText {
		t.Errorf("Expected default text %q, got %q", DefaultText, c.Text)
	}
	if c.Contains(c.Anchor) {
		t.Error("Expected the anchor outside the tag bbox")
	}
	// notch top at x=105+12, far edge at 105+64 for five runes
	if !near(c.BBox.MinX, 112) || !near(c.BBox.MaxX, 174) || !near(c.BBox.MinY, 83) || !near(c.BBox.MaxY, 117) {
		t.Errorf("Unexpected tag bbox %+v", c.BBox)
	}
	if n := c.Nodes(); len(n) != 1 || n[0] != c.Anchor {
		t.Errorf("Expected the anchor as the only node, got %v", n)
	}

	long := mustBuild(t, Params{Kind: LabelTag, Anchor: geom.Pt(0, 0), Text: "VCC_MAIN_RAIL"})
	if w := TagWidth(long.Text); w != 24+8*13 {
		t.Errorf("Expected width %v, got %v", 24+8*13, w)
	}
}

func TestTagTextStaysUpright(t *testing.T) {
	tests := []struct {
		angle, want float64
	}{
		{0, 0},
		{90, 90},
		{180, 360},
		{270, 450},
	}
	for _, tt := range tests {
		c := mustBuild(t, Params{Kind: LabelTag, Anchor: geom.Pt(0, 0), Angle: tt.angle})
		var text *Shape
		for i := range c.Shapes {
			if c.Shapes[i].Kind == ShapeText {
				text = &c.Shapes[i]
			}
		}
		if text == nil {
			t.Fatalf("angle %v: no text shape", tt.angle)
		}
		if text.Rotation != tt.want {
			t.Errorf("angle %v: expected text rotation %v, got %v", tt.angle, tt.want, text.Rotation)
		}
	}
}

func TestTriangleLabels(t *testing.T) {
	gnd := mustBuild(t, Params{Kind: LabelGround, Anchor: geom.Pt(100, 100), Angle: 90})
	if gnd.Node1 != geom.Pt(100, 100) {
		t.Errorf("Expected node1 at the anchor, got %v", gnd.Node1)
	}
	// lead end (100,130), base 90..110, apex (100,145)
	if !near(gnd.BBox.MinX, 85) || !near(gnd.BBox.MaxX, 115) || !near(gnd.BBox.MinY, 125) || !near(gnd.BBox.MaxY, 150) {
		t.Errorf("Unexpected ground bbox %+v", gnd.BBox)
	}
	if gnd.Contains(gnd.Anchor) {
		t.Error("Expected the anchor outside the ground bbox")
	}
	if gnd.Shapes[1].Style.Fill != Black {
		t.Errorf("Expected a black ground fill, got %v", gnd.Shapes[1].Style.Fill)
	}

	pos := mustBuild(t, Params{Kind: LabelPositive, Anchor: geom.Pt(0, 0)})
	if pos.Shapes[1].Style.Fill != Red {
		t.Errorf("Expected a red positive fill, got %v", pos.Shapes[1].Style.Fill)
	}
}

func TestParamsRebuild(t *testing.T) {
	orig := mustBuild(t, Params{Kind: ResistorZigzag, Node1: geom.Pt(10, 20), Node2: geom.Pt(10, 120), Angle: 90, Seed: 77})
	again := mustBuild(t, orig.Params())
	if again.BBox != orig.BBox || again.Node1 != orig.Node1 || again.Node2 != orig.Node2 || again.Seed != orig.Seed {
		t.Errorf("Rebuild from params diverged: %+v vs %+v", again, orig)
	}
}

func TestDrawGroupsShapes(t *testing.T) {
	canvas := rough.New()
	for _, k := range Kinds() {
		p := Params{Kind: k, Node1: geom.Pt(0, 0), Node2: geom.Pt(100, 0), Anchor: geom.Pt(0, 0), Seed: 1}
		c := mustBuild(t, p)
		h := Draw(c, canvas)
		if h == nil {
			t.Fatalf("%v: Draw returned nil", k)
		}
		if len(rough.Flatten(h)) == 0 {
			t.Errorf("%v: expected drawable items", k)
		}
	}
	if canvas.Len() != 0 {
		t.Errorf("Draw must not append to the surface, got %d handles", canvas.Len())
	}
}

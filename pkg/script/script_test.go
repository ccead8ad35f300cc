package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
)

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	sc, err := p.ParseString(src)
	if err != nil {
		t.Fatalf("Failed to parse script: %v", err)
	}
	return sc
}

func newEditor(t *testing.T) (*editor.Controller, *editor.Scene) {
	t.Helper()
	ctrl, err := editor.New(nil, rough.New())
	if err != nil {
		t.Fatalf("Failed to create controller: %v", err)
	}
	ctrl.SetLogger(nil)
	ctrl.SetSeedSource(func() int64 { return 7 })
	return ctrl, editor.NewScene()
}

func TestParseCoordForms(t *testing.T) {
	sc := mustParse(t, "press 10 20\nmove (30, -40)\nrelease (5.5 6)")
	if len(sc.Steps) != 3 {
		t.Fatalf("Expected 3 steps, got %d", len(sc.Steps))
	}
	if c := sc.Steps[0].Press; c == nil || c.X != 10 || c.Y != 20 {
		t.Errorf("Unexpected press %+v", c)
	}
	if c := sc.Steps[1].Move; c == nil || c.X != 30 || c.Y != -40 {
		t.Errorf("Unexpected move %+v", c)
	}
	if c := sc.Steps[2].Release; c == nil || c.X != 5.5 || c.Y != 6 {
		t.Errorf("Unexpected release %+v", c)
	}
	if sc.Steps[1].Pos.Line != 2 {
		t.Errorf("Expected second step on line 2, got %d", sc.Steps[1].Pos.Line)
	}
}

func TestParsePlace(t *testing.T) {
	sc := mustParse(t, `
# a tag with every option
place label/tag (100, 100) angle 90 text "V \"in\"" seed 42
place resistor/zigzag 0 0 to 100 0
delete selected
delete 3
`)
	if len(sc.Steps) != 4 {
		t.Fatalf("Expected 4 steps, got %d", len(sc.Steps))
	}
	pl := sc.Steps[0].Place
	if pl == nil {
		t.Fatal("Expected a place step")
	}
	if pl.Kind != "label/tag" || pl.Angle == nil || *pl.Angle != 90 || pl.Seed == nil || *pl.Seed != 42 {
		t.Errorf("Unexpected place %+v", pl)
	}
	if pl.Text == nil || *pl.Text != `V "in"` {
		t.Errorf("Expected unquoted text, got %v", pl.Text)
	}
	if r := sc.Steps[1].Place; r == nil || r.To == nil || r.To.X != 100 {
		t.Errorf("Expected resistor with a second terminal, got %+v", r)
	}
	if d := sc.Steps[2].Delete; d == nil || !d.Selected {
		t.Errorf("Expected delete selected, got %+v", d)
	}
	if d := sc.Steps[3].Delete; d == nil || d.ID == nil || *d.ID != 3 {
		t.Errorf("Expected delete 3, got %+v", d)
	}
}

func TestParseErrors(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	for _, src := range []string{"launch 1 2", "press 1", "drag 1 2 3 4", `type VCC`} {
		if _, err := p.ParseString(src); err == nil {
			t.Errorf("Expected parse error for %q", src)
		}
	}
}

func TestRunBuildsSketch(t *testing.T) {
	ctrl, s := newEditor(t)
	sc := mustParse(t, `
drag (400, 300) to (403, 352)
place label/tag (100, 100) text "VCC" seed 3
place label/gnd 400 350 seed 4
expect 3
dblclick (140, 100)
type "VIN"
commit
delete 1
expect 2
`)
	if err := Run(ctrl, s, sc); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var tag, gnd *component.Component
	for _, c := range s.Components() {
		c := c
		switch c.Kind {
		case component.LabelTag:
			tag = &c
		case component.LabelGround:
			gnd = &c
		}
	}
	if tag == nil || tag.Text != "VIN" || tag.Seed != 3 {
		t.Errorf("Expected relabelled tag with seed 3, got %+v", tag)
	}
	if gnd == nil || gnd.Angle != 90 || gnd.Anchor != geom.Pt(400, 350) {
		t.Errorf("Expected ground at (400,350) pointing down, got %+v", gnd)
	}
}

func TestRunPlacesResistorWithSnappedAngle(t *testing.T) {
	ctrl, s := newEditor(t)
	if err := Run(ctrl, s, mustParse(t, "place resistor/rectangle 100 100 to 100 50")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	comps := s.Components()
	if len(comps) != 1 || comps[0].Angle != 270 {
		t.Fatalf("Expected one resistor at 270 degrees, got %+v", comps)
	}
}

func TestRunStopsAtFailingStep(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"expectation", "place label/tag 10 10\nexpect 5", ErrExpectation},
		{"double click on nothing", "press 1 1\ndblclick 300 300", ErrNoTarget},
		{"type without edit", "place label/tag 10 10\ntype \"x\"", ErrNotEditing},
		{"resistor without end", "expect 0\nplace resistor/zigzag 0 0", ErrMissingEnd},
		{"unknown kind", "expect 0\ntool label/arrow", component.ErrUnknownKind},
		{"delete missing", "expect 0\ndelete 9", ErrNoTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, s := newEditor(t)
			err := Run(ctrl, s, mustParse(t, tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "divider.ots")
	if err := os.WriteFile(path, []byte("tool resistor/zigzag\nclear\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	sc, err := p.ParseFile(path)
	if err != nil {
		t.Fatalf("Failed to parse file: %v", err)
	}
	if len(sc.Steps) != 2 || sc.Steps[0].Tool == nil || !sc.Steps[1].Clear {
		t.Fatalf("Unexpected steps %+v", sc.Steps)
	}
	if sc.Steps[0].Pos.Filename != path {
		t.Errorf("Expected positions to carry the file name, got %q", sc.Steps[0].Pos.Filename)
	}
}

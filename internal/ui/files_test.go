package ui

import (
	"path/filepath"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/config"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.SeedOnEmpty = false
	cfg.StoragePath = filepath.Join(t.TempDir(), "sketch.json")
	a, err := New(nil, cfg)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	a.ctrl.SetLogger(nil)
	return a
}

func TestSaveCommitsOpenLabelEdit(t *testing.T) {
	a := newTestApp(t)
	gtx := layout.Context{Ops: new(op.Ops)}

	if _, err := a.ctrl.Place(a.scene, component.Params{
		Kind: component.LabelTag, Anchor: geom.Pt(100, 100), Seed: 5,
	}); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if !a.ctrl.DoubleClick(a.scene, geom.Pt(140, 100)) {
		t.Fatal("Expected the tag to open for editing")
	}
	a.openLabelEditor(gtx)
	if a.editingID == component.NoID {
		t.Fatal("Expected the overlay to track the edited label")
	}
	a.ctrl.EditText(a.scene, "VIN")

	a.save(gtx)

	if a.scene.Mode() != editor.ModeIdle {
		t.Errorf("Expected idle after save, mode is %v", a.scene.Mode())
	}
	if a.editingID != component.NoID {
		t.Errorf("Expected the overlay to be closed, still editing #%d", a.editingID)
	}
	if a.state.Snapshot().Dirty {
		t.Error("Expected a clean state after save")
	}
	records, err := store.NewFileStore(a.files.Path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 || records[0].Text != "VIN" {
		t.Errorf("Expected the committed label in storage, got %+v", records)
	}
}

package ui

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// toolKeys maps the number row to palette kinds.
var toolKeys = map[key.Name]int{"1": 0, "2": 1, "3": 2, "4": 3, "5": 4}

func (a *App) handleKeys(gtx layout.Context) {
	shortcuts := []struct {
		name key.Name
		do   func()
	}{
		{"S", func() { a.save(gtx) }},
		{"O", a.openFilePicker},
		{"E", a.exportPNG},
		{"T", a.toggleTheme},
	}
	for _, sc := range shortcuts {
		for {
			ev, ok := gtx.Event(key.Filter{Name: sc.name, Required: key.ModShortcut})
			if !ok {
				break
			}
			if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
				sc.do()
				gtx.Execute(op.InvalidateCmd{})
			}
		}
	}

	// Editing keys only apply while the label editor is closed; when it is
	// focused it consumes them first.
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: key.NameDeleteBackward},
			key.Filter{Name: key.NameDeleteForward},
			key.Filter{Name: key.NameEscape},
			key.Filter{Name: "1"}, key.Filter{Name: "2"}, key.Filter{Name: "3"},
			key.Filter{Name: "4"}, key.Filter{Name: "5"},
		)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		switch ke.Name {
		case key.NameDeleteBackward, key.NameDeleteForward:
			if a.scene.Mode() == editor.ModeIdle && a.ctrl.DeleteSelected(a.scene) {
				a.state.MarkDirty(true)
			}
		case key.NameEscape:
			if a.scene.Mode() == editor.ModeEditingText {
				a.commitLabel(gtx)
			} else {
				a.ctrl.Cancel(a.scene)
			}
		default:
			if i, ok := toolKeys[ke.Name]; ok {
				a.selectTool(component.Kinds()[i])
			}
		}
		gtx.Execute(op.InvalidateCmd{})
	}
}

// handlePointer feeds canvas pointer events to the controller in canvas
// coordinates.
func (a *App) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: a,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		p := a.toCanvas(pe.Position)
		switch pe.Kind {
		case pointer.Press:
			if pe.Buttons != pointer.ButtonPrimary {
				continue
			}
			a.press(gtx, p, pe.Time)
		case pointer.Drag:
			a.ctrl.Move(a.scene, p)
		case pointer.Release:
			before := a.scene.Len()
			mode := a.scene.Mode()
			a.ctrl.Release(a.scene, p)
			if mode != editor.ModeIdle && (a.scene.Len() != before || mode == editor.ModeDragging) {
				a.state.MarkDirty(true)
			}
		case pointer.Cancel:
			a.ctrl.Cancel(a.scene)
		}
		gtx.Execute(op.InvalidateCmd{})
	}
}

func (a *App) press(gtx layout.Context, p geom.Point, t time.Duration) {
	if a.clicks.Press(p, t) {
		// The first press of the pair already started a gesture; the
		// controller cancels it before opening the editor.
		if a.ctrl.DoubleClick(a.scene, p) {
			a.openLabelEditor(gtx)
		}
		return
	}
	wasEditing := a.scene.Mode() == editor.ModeEditingText
	a.ctrl.Press(a.scene, p)
	if wasEditing {
		a.closeLabelEditor(gtx)
		a.state.MarkDirty(true)
	}
}

func (a *App) toCanvas(pos f32.Point) geom.Point {
	return a.vp.ScreenToCanvas(float64(pos.X), float64(pos.Y))
}

func (a *App) openLabelEditor(gtx layout.Context) {
	edit, ok := a.scene.Edit()
	if !ok {
		return
	}
	a.editingID = edit.ID
	a.labelEditor.SetText(edit.Draft)
	a.labelEditor.SetCaret(len([]rune(edit.Draft)), 0)
	gtx.Execute(key.FocusCmd{Tag: &a.labelEditor})
}

func (a *App) closeLabelEditor(gtx layout.Context) {
	a.editingID = component.NoID
	gtx.Execute(key.FocusCmd{Tag: nil})
}

// commitLabel ends the edit session from a key or a save and drops the
// overlay's focus.
func (a *App) commitLabel(gtx layout.Context) {
	a.ctrl.CommitText(a.scene)
	a.closeLabelEditor(gtx)
	a.state.MarkDirty(true)
}

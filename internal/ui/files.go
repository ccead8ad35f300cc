package ui

import (
	"fmt"
	"os"

	"gioui.org/layout"
	"gioui.org/x/explorer"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/export"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

// save writes the scene to the configured storage file, committing an open
// label edit first. It runs on the frame goroutine.
func (a *App) save(gtx layout.Context) {
	if a.scene.Mode() == editor.ModeEditingText {
		a.commitLabel(gtx)
	}
	records := a.ctrl.Records(a.scene)
	if err := a.files.Save(records); err != nil {
		a.state.SetError(err)
		return
	}
	a.state.MarkDirty(false)
	a.state.SetFilePath(a.files.Path)
	a.state.SetStatus(fmt.Sprintf("Saved %d components", len(records)))
	a.state.Logf("saved %d components to %s", len(records), a.files.Path)
}

func (a *App) openFilePicker() {
	go func() {
		file, err := a.explorer.ChooseFile("json", "sketch")
		if err != nil {
			if err != explorer.ErrUserDecline {
				a.state.SetError(fmt.Errorf("file picker: %w", err))
			}
			return
		}
		defer file.Close()

		records, err := store.Decode(file)
		if err != nil {
			a.state.SetError(err)
			return
		}
		name := ""
		if f, ok := file.(*os.File); ok {
			name = f.Name()
		}
		a.post(func() {
			skipped := a.ctrl.Load(a.scene, records)
			a.state.MarkDirty(true)
			if name != "" {
				a.state.SetFilePath(name)
			}
			a.state.SetStatus(fmt.Sprintf("Opened %d components (%d skipped)", a.scene.Len(), skipped))
			a.state.Logf("opened %s: %d components, %d skipped", name, a.scene.Len(), skipped)
		})
	}()
}

// exportPNG flattens the scene on the frame goroutine and lets a dialog
// goroutine encode it.
func (a *App) exportPNG() {
	items := a.canvas.Items()
	opts := export.DefaultOptions()
	opts.Background = a.colors.Paper
	go func() {
		w, err := a.explorer.CreateFile("sketch.png")
		if err != nil {
			if err != explorer.ErrUserDecline {
				a.state.SetError(fmt.Errorf("file picker: %w", err))
			}
			return
		}
		defer w.Close()
		if err := export.PNG(w, items, opts); err != nil {
			a.state.SetError(err)
			return
		}
		a.state.SetStatus("Exported PNG")
		a.window.Invalidate()
	}()
}

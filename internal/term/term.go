// Package term is a terminal frontend for the sketch editor. It maps the
// design space onto the character grid with a stretched viewport and drives
// the same controller as the Gio window.
package term

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/config"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/viewport"
)

// Term owns a tcell screen and the editor state shown on it.
type Term struct {
	screen tcell.Screen
	cfg    *config.AppConfig
	colors *render.Colors

	canvas *rough.Canvas
	ctrl   *editor.Controller
	scene  *editor.Scene
	vp     *viewport.Viewport
	files  *store.FileStore
	clicks *editor.ClickTracker

	start      time.Time
	buttonDown bool
	status     string
	dirty      bool
}

// New prepares a terminal editor on an initialised screen and loads the
// stored sketch.
func New(screen tcell.Screen, cfg *config.AppConfig) (*Term, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	canvas := rough.New()
	ctrl, err := editor.New(cfg.Editor, canvas)
	if err != nil {
		return nil, err
	}
	path, err := cfg.StorageFile()
	if err != nil {
		return nil, fmt.Errorf("term: storage: %w", err)
	}

	t := &Term{
		screen: screen,
		cfg:    cfg,
		colors: render.GetColors(cfg.ThemeValue()),
		canvas: canvas,
		ctrl:   ctrl,
		scene:  editor.NewScene(),
		vp:     viewport.New(),
		files:  store.NewFileStore(path),
		clicks: editor.NewClickTracker(),
		start:  time.Now(),
		status: "Ready",
	}
	t.vp.DesignWidth = cfg.Editor.CanvasWidth
	t.vp.DesignHeight = cfg.Editor.CanvasHeight
	// presses are compared in cell units
	t.clicks.Slop = 1

	records, err := t.files.Load()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 && cfg.SeedOnEmpty {
		if err := ctrl.Seed(t.scene); err != nil {
			return nil, err
		}
	} else if skipped := ctrl.Load(t.scene, records); skipped > 0 {
		t.status = fmt.Sprintf("Loaded with %d records skipped", skipped)
	}
	t.resize()
	return t, nil
}

// Run opens the default terminal screen and runs the editor until the user
// quits.
func Run(cfg *config.AppConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	t, err := New(screen, cfg)
	if err != nil {
		return err
	}
	return t.Loop()
}

// Loop processes events until quit and redraws after each one.
func (t *Term) Loop() error {
	t.draw()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !t.handle(ev) {
			return nil
		}
		t.draw()
	}
}

func (t *Term) resize() {
	w, h := t.screen.Size()
	// last row is the status line
	t.vp.Stretch(float64(w), float64(h-1))
}

// toCanvas maps the centre of a cell to canvas coordinates.
func (t *Term) toCanvas(x, y int) geom.Point {
	return t.vp.ScreenToCanvas(float64(x)+0.5, float64(y)+0.5)
}

// handle applies one event and reports whether the editor keeps running.
func (t *Term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventKey:
		if t.scene.Mode() == editor.ModeEditingText {
			t.handleTextKey(ev)
			return true
		}
		return t.handleKey(ev)
	}
	return true
}

func (t *Term) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := t.toCanvas(x, y)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !t.buttonDown:
		t.buttonDown = true
		cellPos := geom.Pt(float64(x), float64(y))
		if t.clicks.Press(cellPos, ev.When().Sub(t.start)) {
			if t.ctrl.DoubleClick(t.scene, p) {
				t.status = "Editing label: Enter to finish"
			}
			return
		}
		wasEditing := t.scene.Mode() == editor.ModeEditingText
		t.ctrl.Press(t.scene, p)
		if wasEditing {
			t.dirty = true
		}
	case down && t.buttonDown:
		t.ctrl.Move(t.scene, p)
	case !down && t.buttonDown:
		t.buttonDown = false
		mode := t.scene.Mode()
		t.ctrl.Release(t.scene, p)
		if mode != editor.ModeIdle {
			t.dirty = true
		}
	}
}

func (t *Term) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlS:
		t.save()
	case tcell.KeyEscape:
		t.ctrl.Cancel(t.scene)
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.ctrl.DeleteSelected(t.scene) {
			t.dirty = true
		}
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r >= '1' && r <= '5':
			if t.scene.Mode() == editor.ModeIdle {
				kind := component.Kinds()[r-'1']
				t.scene.SetTool(kind)
				t.status = "Tool: " + kind.String()
			}
		}
	}
	return true
}

func (t *Term) handleTextKey(ev *tcell.EventKey) {
	edit, _ := t.scene.Edit()
	draft := []rune(edit.Draft)
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyEscape:
		t.ctrl.CommitText(t.scene)
		t.dirty = true
		t.status = "Label updated"
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(draft) > 0 {
			draft = draft[:len(draft)-1]
		}
	case tcell.KeyRune:
		draft = append(draft, ev.Rune())
	default:
		return
	}
	t.ctrl.EditText(t.scene, string(draft))
}

func (t *Term) save() {
	t.ctrl.CommitText(t.scene)
	records := t.ctrl.Records(t.scene)
	if err := t.files.Save(records); err != nil {
		log.Printf("term: %v", err)
		t.status = err.Error()
		return
	}
	t.dirty = false
	t.status = fmt.Sprintf("Saved %d components", len(records))
}

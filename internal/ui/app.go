package ui

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/config"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/viewport"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
)

// App drives the Gio sketch editor window.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme   *theme.Theme
	colorKind render.Theme
	colors    *render.Colors

	cfg   *config.AppConfig
	state *AppState

	canvas *rough.Canvas
	ctrl   *editor.Controller
	scene  *editor.Scene
	vp     *viewport.Viewport
	files  *store.FileStore
	clicks *editor.ClickTracker

	explorer *explorer.Explorer
	// work posted by dialog goroutines, run on the frame goroutine
	pending chan func()

	saveBtn   widget.Clickable
	openBtn   widget.Clickable
	exportBtn widget.Clickable
	clearBtn  widget.Clickable
	themeBtn  widget.Clickable

	saveIcon   *widget.Icon
	openIcon   *widget.Icon
	exportIcon *widget.Icon
	clearIcon  *widget.Icon
	themeIcon  *widget.Icon

	toolMenu    *menu.DropdownMenu
	toolMenuBtn widget.Clickable

	// text overlay for tag labels
	labelEditor widget.Editor
	editingID   component.ID
}

// New wires the window, theme, controller and storage together and loads
// the stored sketch.
func New(w *app.Window, cfg *config.AppConfig) (*App, error) {
	if w == nil {
		w = new(app.Window)
	}
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
		return nil, fmt.Errorf("ui: storage: %w", err)
	}

	a := &App{
		window:    w,
		gvTheme:   theme.NewTheme("", nil, true),
		colorKind: cfg.ThemeValue(),
		cfg:       cfg,
		state:     NewState(),
		canvas:    canvas,
		ctrl:      ctrl,
		scene:     editor.NewScene(),
		vp:        viewport.New(),
		files:     store.NewFileStore(path),
		clicks:    editor.NewClickTracker(),
		explorer:  explorer.NewExplorer(w),
		pending:   make(chan func(), 8),
	}
	a.vp.DesignWidth = cfg.Editor.CanvasWidth
	a.vp.DesignHeight = cfg.Editor.CanvasHeight
	a.labelEditor.SingleLine = true
	a.labelEditor.Submit = true

	if icon, err := widget.NewIcon(icons.ContentSave); err == nil {
		a.saveIcon = icon
	}
	if icon, err := widget.NewIcon(icons.FileFolderOpen); err == nil {
		a.openIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ImagePhoto); err == nil {
		a.exportIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ActionDelete); err == nil {
		a.clearIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ActionInvertColors); err == nil {
		a.themeIcon = icon
	}
	a.toolMenu = a.buildToolMenu()
	a.applyPalette()
	a.loadStored()
	return a, nil
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		a.explorer.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) loadStored() {
	records, err := a.files.Load()
	if err != nil {
		a.state.SetError(err)
		return
	}
	a.state.SetFilePath(a.files.Path)
	if len(records) == 0 {
		if a.cfg.SeedOnEmpty {
			if err := a.ctrl.Seed(a.scene); err != nil {
				a.state.SetError(err)
			}
		}
		a.state.Logf("new sketch, storage at %s", a.files.Path)
		return
	}
	skipped := a.ctrl.Load(a.scene, records)
	a.state.Logf("loaded %d components from %s (%d skipped)", a.scene.Len(), a.files.Path, skipped)
	a.state.SetStatus(fmt.Sprintf("Loaded %d components", a.scene.Len()))
}

// post schedules f on the frame goroutine.
func (a *App) post(f func()) {
	a.pending <- f
	a.window.Invalidate()
}

func (a *App) runPending() {
	for {
		select {
		case f := <-a.pending:
			f()
		default:
			return
		}
	}
}

func (a *App) applyPalette() {
	a.colors = render.GetColors(a.colorKind)
	if a.colorKind == render.ThemeDark {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
			Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
			ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
			Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
		})
	} else {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
	}
}

func (a *App) toggleTheme() {
	if a.colorKind == render.ThemeLight {
		a.colorKind = render.ThemeDark
	} else {
		a.colorKind = render.ThemeLight
	}
	a.applyPalette()
	a.cfg.Theme = a.colorKind.String()
	if err := config.Save(a.cfg); err != nil {
		a.state.Logf("saving config: %v", err)
	}
	a.state.SetStatus("Theme: " + a.colorKind.String())
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.runPending()
	a.handleKeys(gtx)
	a.handleToolbar(gtx)

	paint.FillShape(gtx.Ops, a.colors.Background, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, a.layoutCanvas),
		layout.Rigid(a.layoutStatus),
	)
}

func (a *App) handleToolbar(gtx layout.Context) {
	if a.saveBtn.Clicked(gtx) {
		a.save(gtx)
	}
	if a.openBtn.Clicked(gtx) {
		a.openFilePicker()
	}
	if a.exportBtn.Clicked(gtx) {
		a.exportPNG()
	}
	if a.clearBtn.Clicked(gtx) {
		a.ctrl.Clear(a.scene)
		a.state.MarkDirty(true)
		a.state.SetStatus("Cleared")
	}
	if a.themeBtn.Clicked(gtx) {
		a.toggleTheme()
	}
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: gtx.Constraints.Max}.Op())
	inset := layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(8), Right: unit.Dp(8)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(a.toolButton(&a.saveBtn, a.saveIcon, "Save (Ctrl+S)")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(a.toolButton(&a.openBtn, a.openIcon, "Open (Ctrl+O)")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(a.toolButton(&a.exportBtn, a.exportIcon, "Export PNG (Ctrl+E)")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(a.toolButton(&a.clearBtn, a.clearIcon, "Clear")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(a.toolButton(&a.themeBtn, a.themeIcon, "Theme (Ctrl+T)")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
			layout.Rigid(a.layoutToolMenu),
			layout.Flexed(1, layout.Spacer{}.Layout),
		)
	})
}

func (a *App) buildToolMenu() *menu.DropdownMenu {
	kinds := component.Kinds()
	opts := make([]menu.MenuOption, 0, len(kinds))
	for i, k := range kinds {
		kind := k
		label := fmt.Sprintf("%d  %s", i+1, kind)
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.selectTool(kind)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, label)
				if kind == a.scene.Tool() {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(220)
	return drop
}

// selectTool switches the drawing tool. Tools only change between gestures.
func (a *App) selectTool(k component.Kind) {
	if a.scene.Mode() != editor.ModeIdle {
		return
	}
	a.scene.SetTool(k)
	a.state.SetStatus("Tool: " + k.String())
}

func (a *App) layoutToolMenu(gtx layout.Context) layout.Dimensions {
	if a.toolMenuBtn.Clicked(gtx) {
		a.toolMenu.ToggleVisibility(gtx)
	}
	dims := material.Button(a.gvTheme.Theme, &a.toolMenuBtn, "Tool: "+a.scene.Tool().String()).Layout(gtx)
	a.toolMenu.Layout(gtx, a.gvTheme)
	return dims
}

func (a *App) toolButton(btn *widget.Clickable, icon *widget.Icon, label string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		if icon == nil {
			return material.Button(a.gvTheme.Theme, btn, label).Layout(gtx)
		}
		b := material.IconButton(a.gvTheme.Theme, btn, icon, label)
		b.Size = unit.Dp(20)
		b.Inset = layout.UniformInset(unit.Dp(6))
		b.Background = a.gvTheme.Palette.ContrastBg
		b.Color = a.gvTheme.Palette.ContrastFg
		return b.Layout(gtx)
	}
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	snap := a.state.Snapshot()
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: gtx.Constraints.Max}.Op())

	info := fmt.Sprintf("%s | %d components | %s", a.scene.Mode(), a.scene.Len(), snap.Status)
	if sel, ok := a.scene.Selected(); ok {
		info += fmt.Sprintf(" | selected #%d %s", sel.ID, sel.Kind)
	}
	if snap.FilePath != "" {
		name := filepath.Base(snap.FilePath)
		if snap.Dirty {
			name += " *"
		}
		info += " | " + name
	}

	return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Caption(a.gvTheme.Theme, info)
		lbl.Color = a.gvTheme.Palette.Fg
		if snap.LastError != nil {
			lbl.Color = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
		}
		return lbl.Layout(gtx)
	})
}

package ui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
)

func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	a.vp.Fit(float64(size.X), float64(size.Y))

	a.handlePointer(gtx)
	a.handleLabelEditor(gtx)

	// Register for input events
	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, a)
	area.Pop()

	a.paintPaper(gtx)
	a.paintPalette(gtx)

	// Components and the preview share the surface, in paint order.
	a.paintItems(gtx, a.canvas.Items())
	a.paintSelection(gtx)

	if edit, ok := a.scene.Edit(); ok {
		if edit.ID != a.editingID {
			a.openLabelEditor(gtx)
		}
		a.layoutLabelEditor(gtx)
	}
	return layout.Dimensions{Size: size}
}

func (a *App) screenRect(bb geom.BBox) image.Rectangle {
	x0, y0 := a.vp.CanvasToScreen(geom.Pt(bb.MinX, bb.MinY))
	x1, y1 := a.vp.CanvasToScreen(geom.Pt(bb.MaxX, bb.MaxY))
	return image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
}

func (a *App) paintPaper(gtx layout.Context) {
	cfg := a.ctrl.Config()
	paper := a.screenRect(geom.BBox{MaxX: cfg.CanvasWidth, MaxY: cfg.CanvasHeight})
	paint.FillShape(gtx.Ops, a.colors.Paper, clip.Rect(paper).Op())
}

func (a *App) paintPalette(gtx layout.Context) {
	cfg := a.ctrl.Config()
	strip := a.screenRect(geom.BBox{
		MinX: cfg.PaletteX, MaxX: cfg.PaletteX + cfg.PaletteWidth,
		MaxY: cfg.CanvasHeight,
	})
	paint.FillShape(gtx.Ops, a.colors.Palette, clip.Rect(strip).Op())
	divider := strip
	divider.Max.X = divider.Min.X + 1
	paint.FillShape(gtx.Ops, a.colors.PaletteDivider, clip.Rect(divider).Op())

	for _, tool := range a.ctrl.Palette() {
		if tool.Kind == a.scene.Tool() {
			box := a.screenRect(a.ctrl.ToolBox(tool))
			paint.FillShape(gtx.Ops, a.colors.ActiveTool, clip.UniformRRect(box, gtx.Dp(unit.Dp(4))).Op(gtx.Ops))
		}
		a.paintItems(gtx, rough.Flatten(tool.Handle))
	}
}

func (a *App) paintSelection(gtx layout.Context) {
	sel, ok := a.scene.Selected()
	if !ok || a.scene.Mode() == editor.ModePaletteDrag {
		return
	}
	r := a.screenRect(sel.BBox)
	pts := []f32.Point{
		f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
		f32.Pt(float32(r.Max.X), float32(r.Min.Y)),
		f32.Pt(float32(r.Max.X), float32(r.Max.Y)),
		f32.Pt(float32(r.Min.X), float32(r.Max.Y)),
	}
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(pts[0])
	for _, p := range pts[1:] {
		path.LineTo(p)
	}
	path.Close()
	paint.FillShape(gtx.Ops, a.colors.Selection, clip.Stroke{
		Path:  path.End(),
		Width: float32(gtx.Dp(unit.Dp(1))),
	}.Op())
}

// paintItems draws flattened rough items in order.
func (a *App) paintItems(gtx layout.Context, items []rough.Item) {
	for _, it := range items {
		switch it.Kind {
		case rough.ItemStroke:
			a.paintStroke(gtx, it)
		case rough.ItemFill:
			a.paintFill(gtx, it)
		case rough.ItemText:
			a.paintText(gtx, it)
		}
	}
}

func (a *App) itemPath(gtx layout.Context, pts []geom.Point, closed bool) clip.PathSpec {
	var path clip.Path
	path.Begin(gtx.Ops)
	for i, p := range pts {
		x, y := a.vp.CanvasToScreen(p)
		if i == 0 {
			path.MoveTo(f32.Pt(float32(x), float32(y)))
		} else {
			path.LineTo(f32.Pt(float32(x), float32(y)))
		}
	}
	if closed {
		path.Close()
	}
	return path.End()
}

func (a *App) paintStroke(gtx layout.Context, it rough.Item) {
	if len(it.Points) < 2 {
		return
	}
	width := a.vp.Length(it.Width)
	if width < 1 {
		width = 1
	}
	paint.FillShape(gtx.Ops, it.Color, clip.Stroke{
		Path:  a.itemPath(gtx, it.Points, false),
		Width: float32(width),
	}.Op())
}

func (a *App) paintFill(gtx layout.Context, it rough.Item) {
	if len(it.Points) < 3 {
		return
	}
	paint.FillShape(gtx.Ops, it.Color, clip.Outline{
		Path: a.itemPath(gtx, it.Points, true),
	}.Op())
}

// paintText centres a label on the item's anchor, rotated by its angle.
func (a *App) paintText(gtx layout.Context, it rough.Item) {
	if it.Text == "" {
		return
	}
	x, y := a.vp.CanvasToScreen(it.At)
	radians := float32(geom.Radians(it.Angle))
	tr := f32.Affine2D{}.Rotate(f32.Pt(0, 0), radians).Offset(f32.Pt(float32(x), float32(y)))
	stack := op.Affine(tr).Push(gtx.Ops)
	defer stack.Pop()

	px := a.vp.Length(it.FontSize)
	lbl := material.Label(a.gvTheme.Theme, unit.Sp(float32(px)/gtx.Metric.PxPerSp), it.Text)
	lbl.Color = it.Color

	lgtx := gtx
	lgtx.Constraints = layout.Constraints{Max: image.Pt(1<<14, 1<<14)}
	macro := op.Record(gtx.Ops)
	dims := lbl.Layout(lgtx)
	call := macro.Stop()

	off := op.Offset(image.Pt(-dims.Size.X/2, -dims.Size.Y/2)).Push(gtx.Ops)
	call.Add(gtx.Ops)
	off.Pop()
}

func (a *App) handleLabelEditor(gtx layout.Context) {
	for {
		ev, ok := a.labelEditor.Update(gtx)
		if !ok {
			break
		}
		switch ev.(type) {
		case widget.ChangeEvent:
			a.ctrl.EditText(a.scene, a.labelEditor.Text())
		case widget.SubmitEvent:
			a.ctrl.EditText(a.scene, a.labelEditor.Text())
			a.commitLabel(gtx)
		}
	}
}

// layoutLabelEditor places the text overlay at the label's top-left corner
// through the same viewport used for pointer input.
func (a *App) layoutLabelEditor(gtx layout.Context) {
	edit, _ := a.scene.Edit()
	x, y := a.vp.CanvasToScreen(edit.Anchor)
	defer op.Offset(image.Pt(int(x), int(y))).Push(gtx.Ops).Pop()

	size := image.Pt(gtx.Dp(unit.Dp(140)), gtx.Dp(unit.Dp(28)))
	border := color.NRGBA{R: 173, G: 216, B: 230, A: 255}
	paint.FillShape(gtx.Ops, border, clip.Rect{Max: size}.Op())
	inner := image.Rectangle{Min: image.Pt(1, 1), Max: size.Sub(image.Pt(1, 1))}
	paint.FillShape(gtx.Ops, a.colors.OverlayFill, clip.Rect(inner).Op())

	egtx := gtx
	egtx.Constraints = layout.Exact(size)
	layout.UniformInset(unit.Dp(4)).Layout(egtx, func(gtx layout.Context) layout.Dimensions {
		ed := material.Editor(a.gvTheme.Theme, &a.labelEditor, "Label")
		ed.Color = color.NRGBA{A: 255}
		return ed.Layout(gtx)
	})
}

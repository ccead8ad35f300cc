package term

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
)

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Term) draw() {
	s := t.screen
	s.Clear()
	w, h := s.Size()
	paper := tcell.StyleDefault.Background(rgb(t.colors.Paper)).Foreground(tcell.ColorBlack)
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, paper)
		}
	}

	t.drawPalette(paper)
	t.drawItems(t.canvas.Items(), paper)
	t.drawSelection(paper)
	t.drawStatus(w, h)
	s.Show()
}

func (t *Term) screenPoints(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		x, y := t.vp.CanvasToScreen(p)
		out[i] = geom.Pt(x, y)
	}
	return out
}

func (t *Term) drawPalette(paper tcell.Style) {
	cfg := t.ctrl.Config()
	x0, _ := t.vp.CanvasToScreen(geom.Pt(cfg.PaletteX, 0))
	_, y1 := t.vp.CanvasToScreen(geom.Pt(0, cfg.CanvasHeight))
	divider := paper.Foreground(rgb(t.colors.PaletteDivider))
	for y := 0; y < cell(y1); y++ {
		t.screen.SetContent(cell(x0), y, '│', nil, divider)
	}
	for _, tool := range t.ctrl.Palette() {
		style := paper
		if tool.Kind == t.scene.Tool() {
			style = paper.Background(rgb(t.colors.ActiveTool))
			box := t.ctrl.ToolBox(tool)
			bx0, by0 := t.vp.CanvasToScreen(geom.Pt(box.MinX, box.MinY))
			bx1, by1 := t.vp.CanvasToScreen(geom.Pt(box.MaxX, box.MaxY))
			for y := cell(by0); y < cell(by1); y++ {
				for x := cell(bx0) + 1; x < cell(bx1); x++ {
					t.screen.SetContent(x, y, ' ', nil, style)
				}
			}
		}
		t.drawItems(rough.Flatten(tool.Handle), style)
	}
}

// drawItems rasterizes items onto cells. Strokes become block characters,
// fills shade their cells and text is written upright at its anchor.
func (t *Term) drawItems(items []rough.Item, base tcell.Style) {
	for _, it := range items {
		switch it.Kind {
		case rough.ItemStroke:
			style := base.Foreground(rgb(it.Color))
			polyline(t.screenPoints(it.Points), func(x, y int) {
				t.screen.SetContent(x, y, '█', nil, style)
			})
		case rough.ItemFill:
			style := base.Foreground(rgb(it.Color))
			fillPolygon(t.screenPoints(it.Points), func(x, y int) {
				t.screen.SetContent(x, y, '▒', nil, style)
			})
		case rough.ItemText:
			t.drawText(it, base)
		}
	}
}

func (t *Term) drawText(it rough.Item, base tcell.Style) {
	x, y := t.vp.CanvasToScreen(it.At)
	runes := []rune(it.Text)
	style := base.Foreground(rgb(it.Color)).Bold(true)
	turns := int(math.Round(geom.NormalizeAngle(it.Angle)/90)) % 4
	if turns%2 == 1 {
		// vertical text reads top to bottom
		y0 := cell(y) - len(runes)/2
		for i, r := range runes {
			t.screen.SetContent(cell(x), y0+i, r, nil, style)
		}
		return
	}
	x0 := cell(x) - len(runes)/2
	for i, r := range runes {
		t.screen.SetContent(x0+i, cell(y), r, nil, style)
	}
}

func (t *Term) drawSelection(paper tcell.Style) {
	sel, ok := t.scene.Selected()
	if !ok {
		return
	}
	style := paper.Foreground(rgb(t.colors.Selection))
	x0, y0 := t.vp.CanvasToScreen(geom.Pt(sel.BBox.MinX, sel.BBox.MinY))
	x1, y1 := t.vp.CanvasToScreen(geom.Pt(sel.BBox.MaxX, sel.BBox.MaxY))
	t.screen.SetContent(cell(x0), cell(y0), '┌', nil, style)
	t.screen.SetContent(cell(x1), cell(y0), '┐', nil, style)
	t.screen.SetContent(cell(x0), cell(y1), '└', nil, style)
	t.screen.SetContent(cell(x1), cell(y1), '┘', nil, style)
}

func (t *Term) drawStatus(w, h int) {
	style := tcell.StyleDefault.Background(rgb(t.colors.Background)).Foreground(rgb(t.colors.Text))
	line := fmt.Sprintf(" %s | %s | %d components | %s", t.scene.Mode(), t.scene.Tool(), t.scene.Len(), t.status)
	if edit, ok := t.scene.Edit(); ok {
		line = fmt.Sprintf(" label #%d: %s_", edit.ID, edit.Draft)
	}
	if t.dirty {
		line += " *"
	}
	runes := []rune(line)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		t.screen.SetContent(x, h-1, r, nil, style)
	}
}

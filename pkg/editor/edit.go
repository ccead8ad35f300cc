package editor

import (
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

// DoubleClick opens a text-editing session when p hits a tag label. It
// reports whether a session was opened.
func (c *Controller) DoubleClick(s *Scene, p geom.Point) bool {
	if s.mode == ModeEditingText {
		c.CommitText(s)
	}
	if s.mode != ModeIdle {
		c.Cancel(s)
	}
	if p.X >= c.cfg.PaletteX {
		return false
	}
	hit, ok := s.HitTest(p)
	if !ok || hit.Kind != component.LabelTag {
		return false
	}
	s.selected = hit.ID
	s.mode = ModeEditingText
	s.edit = &TextEdit{
		ID:     hit.ID,
		Draft:  hit.Text,
		Anchor: geom.Pt(hit.BBox.MinX, hit.BBox.MinY),
	}
	return true
}

// EditText replaces the draft text of the open session.
func (c *Controller) EditText(s *Scene, text string) {
	if s.mode != ModeEditingText || s.edit == nil {
		return
	}
	s.edit.Draft = text
}

// CommitText closes the open session and rebuilds the label with the draft
// text, keeping its seed. An empty draft falls back to the default text.
func (c *Controller) CommitText(s *Scene) {
	if s.mode != ModeEditingText || s.edit == nil {
		return
	}
	edit := *s.edit
	s.edit = nil
	s.mode = ModeIdle

	i, ok := s.index(edit.ID)
	if !ok {
		return
	}
	params := s.entries[i].Component.Params()
	params.Text = edit.Draft
	comp, err := component.Build(params)
	if err != nil {
		c.log.Printf("editor: relabel #%d: %v", edit.ID, err)
		return
	}
	c.replaceAt(s, i, comp)
}

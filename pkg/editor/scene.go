package editor

import (
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
)

// Mode is the interaction state of a scene.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeDragging
	ModePaletteDrag
	ModeEditingText
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModeDragging:
		return "dragging"
	case ModePaletteDrag:
		return "palette-drag"
	case ModeEditingText:
		return "editing-text"
	}
	return "unknown"
}

// Entry is a placed component together with the handle that shows it. The
// entry owns the handle; replacing the component replaces the handle too.
type Entry struct {
	Component component.Component
	Handle    render.Handle
}

// TextEdit is an open text-editing session on a tag label.
type TextEdit struct {
	ID    component.ID
	Draft string
	// Anchor is where a frontend places its text input, in canvas
	// coordinates.
	Anchor geom.Point
}

// gesture holds the transient state of the current press-move-release.
type gesture struct {
	start    geom.Point // drawing start, snapped onto a node when one is close
	absStart geom.Point // raw press position
	offset   geom.Point // pointer minus anchor of the dragged component
	dragID   component.ID
	seed     int64
}

// Scene is everything the editor knows about one sketch: the placed
// components in insertion order, the selection, the current tool and the
// state of the gesture in progress. A Scene is only touched by a
// Controller's handlers; it is not safe for concurrent use.
type Scene struct {
	entries  []Entry
	nextID   component.ID
	selected component.ID
	tool     component.Kind
	mode     Mode
	g        gesture
	preview  *Entry
	edit     *TextEdit
}

// NewScene returns an empty scene with the rectangle resistor tool active.
func NewScene() *Scene {
	return &Scene{
		nextID: 1,
		tool:   component.ResistorRectangle,
	}
}

// Mode returns the current interaction mode.
func (s *Scene) Mode() Mode {
	return s.mode
}

// Tool returns the kind new strokes and palette drops create.
func (s *Scene) Tool() component.Kind {
	return s.tool
}

// SetTool selects the kind for new strokes.
func (s *Scene) SetTool(k component.Kind) {
	s.tool = k
}

// Len returns the number of placed components.
func (s *Scene) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the placed entries in insertion order.
func (s *Scene) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Components returns the placed components in insertion order.
func (s *Scene) Components() []component.Component {
	out := make([]component.Component, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Component
	}
	return out
}

// Get returns the component with the given id.
func (s *Scene) Get(id component.ID) (component.Component, bool) {
	if i, ok := s.index(id); ok {
		return s.entries[i].Component, true
	}
	return component.Component{}, false
}

// Selected returns the selected component, if any.
func (s *Scene) Selected() (component.Component, bool) {
	if s.selected == component.NoID {
		return component.Component{}, false
	}
	return s.Get(s.selected)
}

// Preview returns the transient entry shown while drawing or dragging from
// the palette. It is never part of Entries.
func (s *Scene) Preview() (Entry, bool) {
	if s.preview == nil {
		return Entry{}, false
	}
	return *s.preview, true
}

// Edit returns the open text-editing session, if any.
func (s *Scene) Edit() (TextEdit, bool) {
	if s.edit == nil {
		return TextEdit{}, false
	}
	return *s.edit, true
}

// HitTest returns the first component, in insertion order, whose bounding
// box contains p.
func (s *Scene) HitTest(p geom.Point) (component.Component, bool) {
	for _, e := range s.entries {
		if e.Component.Contains(p) {
			return e.Component, true
		}
	}
	return component.Component{}, false
}

func (s *Scene) index(id component.ID) (int, bool) {
	for i, e := range s.entries {
		if e.Component.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Scene) insert(c component.Component, h render.Handle) component.ID {
	c.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, Entry{Component: c, Handle: h})
	return c.ID
}

func (s *Scene) removeAt(i int) Entry {
	e := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return e
}

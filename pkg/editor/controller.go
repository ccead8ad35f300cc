// Package editor implements the sketch editor's interaction logic. A Scene
// holds the sketch and the state of the gesture in progress; a Controller
// turns pointer and keyboard events, already translated to canvas
// coordinates, into edits of a Scene and keeps a render surface in step.
package editor

import (
	"io"
	"log"
	"math/rand/v2"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/snap"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

// Initial resistor placed by Seed.
var (
	seedNode1 = geom.Pt(350, 300)
	seedNode2 = geom.Pt(450, 300)
)

// Controller dispatches input events to a Scene.
type Controller struct {
	cfg     *Config
	canvas  render.Canvas
	seeds   func() int64
	log     *log.Logger
	palette []Tool
}

// New creates a controller drawing onto canvas. A nil cfg uses
// DefaultConfig.
func New(cfg *Config, canvas render.Canvas) (*Controller, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:    cfg,
		canvas: canvas,
		seeds:  func() int64 { return rand.Int64N(10000) },
		log:    log.Default(),
	}
	c.palette = c.buildPalette()
	return c, nil
}

// Config returns the controller's configuration.
func (c *Controller) Config() *Config {
	return c.cfg
}

// SetSeedSource replaces the source of fresh shape seeds.
func (c *Controller) SetSeedSource(f func() int64) {
	if f != nil {
		c.seeds = f
	}
}

// SetLogger replaces the logger. A nil logger discards output.
func (c *Controller) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	c.log = l
}

// Press handles a primary-button press at p.
func (c *Controller) Press(s *Scene, p geom.Point) {
	if s.mode == ModeEditingText {
		c.CommitText(s)
	}
	if s.mode != ModeIdle {
		c.Cancel(s)
	}

	if p.X < c.cfg.PaletteX {
		if hit, ok := s.HitTest(p); ok {
			s.selected = hit.ID
			s.mode = ModeDragging
			s.g = gesture{
				dragID: hit.ID,
				offset: p.Sub(hit.Anchor),
				seed:   c.seeds(),
			}
			return
		}
	}

	if tool, ok := c.toolAt(p); ok {
		s.tool = tool.Kind
		s.selected = component.NoID
		s.mode = ModePaletteDrag
		s.g = gesture{absStart: p, seed: c.seeds()}
		return
	}

	if !c.cfg.InCanvas(p.X, p.Y) {
		return
	}

	s.selected = component.NoID
	start := p
	if n, ok := snap.NearestNode(p, s.Components(), component.NoID, c.cfg.PlacementThreshold); ok {
		start = n
	}
	s.mode = ModeDrawing
	s.g = gesture{start: start, absStart: p, seed: c.seeds()}
}

// Move handles pointer motion with the primary button held.
func (c *Controller) Move(s *Scene, p geom.Point) {
	switch s.mode {
	case ModeDrawing:
		if comp, ok := c.stroke(s, p); ok {
			c.setPreview(s, comp)
		} else {
			c.clearPreview(s)
		}
	case ModeDragging:
		c.dragTo(s, p)
	case ModePaletteDrag:
		c.palettePreview(s, p)
	}
}

// Release handles the primary button going up at p.
func (c *Controller) Release(s *Scene, p geom.Point) {
	switch s.mode {
	case ModeDrawing:
		c.clearPreview(s)
		if comp, ok := c.stroke(s, p); ok {
			id := c.add(s, comp)
			c.log.Printf("editor: placed %s #%d", comp.Kind, id)
		}
	case ModeDragging:
		c.drop(s)
	case ModePaletteDrag:
		c.palettePreview(s, p)
		if prev, ok := s.Preview(); ok && c.cfg.InCanvas(p.X, p.Y) {
			s.preview = nil
			id := s.insert(prev.Component, prev.Handle)
			s.selected = id
			c.log.Printf("editor: dropped %s #%d", prev.Component.Kind, id)
		} else {
			c.clearPreview(s)
		}
	default:
		return
	}
	s.mode = ModeIdle
	s.g = gesture{}
}

// Cancel abandons the gesture in progress. A component being dragged stays
// where the last move left it.
func (c *Controller) Cancel(s *Scene) {
	c.clearPreview(s)
	if s.mode == ModeEditingText {
		s.edit = nil
	}
	s.mode = ModeIdle
	s.g = gesture{}
}

// Delete removes the component with the given id.
func (c *Controller) Delete(s *Scene, id component.ID) bool {
	i, ok := s.index(id)
	if !ok {
		return false
	}
	e := s.removeAt(i)
	c.canvas.Remove(e.Handle)
	if s.selected == id {
		s.selected = component.NoID
	}
	if s.edit != nil && s.edit.ID == id {
		s.edit = nil
		s.mode = ModeIdle
	}
	if s.mode == ModeDragging && s.g.dragID == id {
		s.mode = ModeIdle
		s.g = gesture{}
	}
	return true
}

// DeleteSelected removes the selected component.
func (c *Controller) DeleteSelected(s *Scene) bool {
	if s.selected == component.NoID {
		return false
	}
	return c.Delete(s, s.selected)
}

// Clear removes every component and ends any gesture.
func (c *Controller) Clear(s *Scene) {
	c.Cancel(s)
	for _, e := range s.entries {
		c.canvas.Remove(e.Handle)
	}
	s.entries = nil
	s.selected = component.NoID
}

// Seed places the initial resistor of a new sketch.
func (c *Controller) Seed(s *Scene) error {
	comp, err := component.Build(component.Params{
		Kind:  component.ResistorRectangle,
		Node1: seedNode1,
		Node2: seedNode2,
		Seed:  c.seeds(),
	})
	if err != nil {
		return err
	}
	c.add(s, comp)
	return nil
}

// Load replaces the scene's contents with records. Records that cannot be
// rebuilt are logged and skipped; the number skipped is returned.
func (c *Controller) Load(s *Scene, records []store.Record) int {
	c.Clear(s)
	skipped := 0
	for i, r := range records {
		comp, err := store.FromRecord(r)
		if err != nil {
			c.log.Printf("editor: skipping record %d: %v", i, err)
			skipped++
			continue
		}
		c.add(s, comp)
	}
	return skipped
}

// Records returns the scene's components in their persisted form.
func (c *Controller) Records(s *Scene) []store.Record {
	return store.ToRecords(s.Components())
}

// Place builds a component directly from params and adds it to the scene.
func (c *Controller) Place(s *Scene, p component.Params) (component.ID, error) {
	comp, err := component.Build(p)
	if err != nil {
		return component.NoID, err
	}
	return c.add(s, comp), nil
}

func (c *Controller) add(s *Scene, comp component.Component) component.ID {
	h := component.Draw(comp, c.canvas)
	c.canvas.Append(h)
	return s.insert(comp, h)
}

// replaceAt swaps the component at index i for comp, keeping its id and
// position in the scene. The old handle leaves the surface and the new one
// is appended on top.
func (c *Controller) replaceAt(s *Scene, i int, comp component.Component) {
	old := s.entries[i]
	comp.ID = old.Component.ID
	c.canvas.Remove(old.Handle)
	h := component.Draw(comp, c.canvas)
	c.canvas.Append(h)
	s.entries[i] = Entry{Component: comp, Handle: h}
}

// stroke builds the component a drawing gesture ending at p would place.
// It reports false while the pointer is within the minimum move distance of
// the raw press point.
func (c *Controller) stroke(s *Scene, p geom.Point) (component.Component, bool) {
	if geom.Distance(s.g.absStart, p) < c.cfg.MinMoveDistance {
		return component.Component{}, false
	}
	start := s.g.start
	d := p.Sub(start)
	angle := snap.Angle(geom.AngleOfVector(d.X, d.Y))

	params := component.Params{Kind: s.tool, Angle: angle, Seed: s.g.seed}
	if s.tool.IsResistor() {
		params.Node1 = start
		params.Node2 = snap.Endpoint(start, angle, geom.Distance(start, p))
	} else {
		params.Anchor = start
	}
	comp, err := component.Build(params)
	if err != nil {
		c.log.Printf("editor: stroke: %v", err)
		return component.Component{}, false
	}
	return comp, true
}

// dragTo moves the dragged component so the pointer keeps its offset from
// the anchor, then snaps a terminal onto a nearby node. Resistors try node1
// before node2.
func (c *Controller) dragTo(s *Scene, p geom.Point) {
	i, ok := s.index(s.g.dragID)
	if !ok {
		s.mode = ModeIdle
		return
	}
	cur := s.entries[i].Component
	anchor := p.Sub(s.g.offset)
	params := cur.Params()
	params.Seed = s.g.seed
	comps := s.Components()

	if cur.Kind.IsResistor() {
		v := cur.Node2.Sub(cur.Node1)
		n1 := anchor.Sub(v.Scale(0.5))
		n2 := anchor.Add(v.Scale(0.5))
		if sn, ok := snap.NearestNode(n1, comps, cur.ID, c.cfg.DragThreshold); ok {
			n1, n2 = sn, sn.Add(v)
		} else if sn, ok := snap.NearestNode(n2, comps, cur.ID, c.cfg.DragThreshold); ok {
			n1, n2 = sn.Sub(v), sn
		}
		params.Node1, params.Node2 = n1, n2
		params.Angle = snap.Angle(geom.AngleOfVector(v.X, v.Y))
	} else {
		if sn, ok := snap.NearestNode(anchor, comps, cur.ID, c.cfg.DragThreshold); ok {
			anchor = sn
		}
		params.Anchor = anchor
		params.Angle = snap.Angle(geom.NormalizeAngle(cur.Angle))
	}

	comp, err := component.Build(params)
	if err != nil {
		c.log.Printf("editor: drag #%d: %v", cur.ID, err)
		return
	}
	c.replaceAt(s, i, comp)
	// Track the rebuilt anchor so a snapped position sticks until the
	// pointer moves away.
	s.g.offset = p.Sub(comp.Anchor)
}

// drop snaps the dragged component onto a node within the drop threshold.
func (c *Controller) drop(s *Scene) {
	i, ok := s.index(s.g.dragID)
	if !ok {
		return
	}
	cur := s.entries[i].Component
	comps := s.Components()
	params := cur.Params()
	params.Seed = s.g.seed

	if cur.Kind.IsResistor() {
		v := cur.Node2.Sub(cur.Node1)
		if sn, ok := snap.NearestNode(cur.Node1, comps, cur.ID, c.cfg.DropThreshold); ok {
			params.Node1, params.Node2 = sn, sn.Add(v)
		} else if sn, ok := snap.NearestNode(cur.Node2, comps, cur.ID, c.cfg.DropThreshold); ok {
			params.Node1, params.Node2 = sn.Sub(v), sn
		} else {
			return
		}
		params.Angle = snap.Angle(geom.AngleOfVector(v.X, v.Y))
	} else {
		sn, ok := snap.NearestNode(cur.Anchor, comps, cur.ID, c.cfg.DropThreshold)
		if !ok {
			return
		}
		params.Anchor = sn
	}

	comp, err := component.Build(params)
	if err != nil {
		c.log.Printf("editor: drop #%d: %v", cur.ID, err)
		return
	}
	c.replaceAt(s, i, comp)
}

func (c *Controller) setPreview(s *Scene, comp component.Component) {
	c.clearPreview(s)
	h := component.Draw(comp, c.canvas)
	c.canvas.Append(h)
	s.preview = &Entry{Component: comp, Handle: h}
}

func (c *Controller) clearPreview(s *Scene) {
	if s.preview == nil {
		return
	}
	c.canvas.Remove(s.preview.Handle)
	s.preview = nil
}

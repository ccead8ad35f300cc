package script

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/snap"
)

var (
	ErrNoTarget    = errors.New("script: nothing to act on")
	ErrNotEditing  = errors.New("script: no text edit open")
	ErrMissingEnd  = errors.New("script: resistor needs a second terminal")
	ErrExpectation = errors.New("script: expectation failed")
)

func (c *Coord) point() geom.Point {
	return geom.Pt(c.X, c.Y)
}

// Run executes every step of sc against the scene. It stops at the first
// failing step and reports its position.
func Run(ctrl *editor.Controller, s *editor.Scene, sc *Script) error {
	for _, step := range sc.Steps {
		if err := exec(ctrl, s, step); err != nil {
			return fmt.Errorf("%s: %w", step.Pos, err)
		}
	}
	return nil
}

func exec(ctrl *editor.Controller, s *editor.Scene, st *Step) error {
	switch {
	case st.Tool != nil:
		k, err := component.ParseKind(*st.Tool)
		if err != nil {
			return err
		}
		s.SetTool(k)
	case st.Press != nil:
		ctrl.Press(s, st.Press.point())
	case st.Move != nil:
		ctrl.Move(s, st.Move.point())
	case st.Release != nil:
		ctrl.Release(s, st.Release.point())
	case st.Drag != nil:
		ctrl.Press(s, st.Drag.From.point())
		for _, v := range st.Drag.Via {
			ctrl.Move(s, v.point())
		}
		to := st.Drag.To.point()
		ctrl.Move(s, to)
		ctrl.Release(s, to)
	case st.DblClick != nil:
		if !ctrl.DoubleClick(s, st.DblClick.point()) {
			return fmt.Errorf("%w: no tag label at (%g, %g)", ErrNoTarget, st.DblClick.X, st.DblClick.Y)
		}
	case st.Type != nil:
		if s.Mode() != editor.ModeEditingText {
			return ErrNotEditing
		}
		ctrl.EditText(s, *st.Type)
	case st.Commit:
		if s.Mode() != editor.ModeEditingText {
			return ErrNotEditing
		}
		ctrl.CommitText(s)
	case st.Delete != nil:
		return deleteStep(ctrl, s, st.Delete)
	case st.Clear:
		ctrl.Clear(s)
	case st.Place != nil:
		return place(ctrl, s, st.Place)
	case st.Expect != nil:
		if s.Len() != *st.Expect {
			return fmt.Errorf("%w: want %d components, have %d", ErrExpectation, *st.Expect, s.Len())
		}
	}
	return nil
}

func deleteStep(ctrl *editor.Controller, s *editor.Scene, d *DeleteStep) error {
	if d.Selected {
		if !ctrl.DeleteSelected(s) {
			return fmt.Errorf("%w: nothing selected", ErrNoTarget)
		}
		return nil
	}
	if !ctrl.Delete(s, component.ID(*d.ID)) {
		return fmt.Errorf("%w: no component #%d", ErrNoTarget, *d.ID)
	}
	return nil
}

func place(ctrl *editor.Controller, s *editor.Scene, p *PlaceStep) error {
	k, err := component.ParseKind(p.Kind)
	if err != nil {
		return err
	}
	params := component.Params{Kind: k, Angle: editor.DefaultAngle(k)}
	if k.IsResistor() {
		if p.To == nil {
			return ErrMissingEnd
		}
		params.Node1 = p.At.point()
		params.Node2 = p.To.point()
		d := params.Node2.Sub(params.Node1)
		params.Angle = snap.Angle(geom.AngleOfVector(d.X, d.Y))
	} else {
		params.Anchor = p.At.point()
	}
	if p.Angle != nil {
		params.Angle = *p.Angle
	}
	if p.Text != nil {
		params.Text = *p.Text
	}
	if p.Seed != nil {
		params.Seed = *p.Seed
	}
	_, err = ctrl.Place(s, params)
	return err
}

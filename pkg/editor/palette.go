package editor

import (
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/snap"
)

const (
	toolTop     = 50.0
	toolSpacing = 80.0

	// a resistor dragged off the palette spans this much, centred on the
	// pointer
	paletteResistorLength = 100.0
)

// Tool is a symbol on the palette strip. Its drawing is not part of the
// render surface; frontends paint Handle themselves.
type Tool struct {
	Kind      component.Kind
	Center    geom.Point
	Component component.Component
	Handle    render.Handle
}

// Palette returns the palette tools from top to bottom.
func (c *Controller) Palette() []Tool {
	out := make([]Tool, len(c.palette))
	copy(out, c.palette)
	return out
}

// ToolBox returns the hit box of a palette tool.
func (c *Controller) ToolBox(t Tool) geom.BBox {
	return geom.BBox{
		MinX: t.Center.X - c.cfg.ToolHalfWidth,
		MaxX: t.Center.X + c.cfg.ToolHalfWidth,
		MinY: t.Center.Y - c.cfg.ToolHalfHeight,
		MaxY: t.Center.Y + c.cfg.ToolHalfHeight,
	}
}

func (c *Controller) buildPalette() []Tool {
	x := c.cfg.PaletteX + c.cfg.PaletteWidth/2
	var tools []Tool
	for i, k := range component.Kinds() {
		center := geom.Pt(x, toolTop+float64(i)*toolSpacing)
		params := component.Params{Kind: k, Angle: DefaultAngle(k), Seed: c.cfg.PaletteSeed}
		switch k {
		case component.ResistorRectangle, component.ResistorZigzag:
			params.Node1 = geom.Pt(center.X-25, center.Y)
			params.Node2 = geom.Pt(center.X+25, center.Y)
		case component.LabelTag:
			params.Anchor = geom.Pt(center.X-component.TagMinWidth/2-5, center.Y)
		case component.LabelGround:
			params.Anchor = geom.Pt(center.X, center.Y-22)
		case component.LabelPositive:
			params.Anchor = geom.Pt(center.X, center.Y+22)
		}
		comp, err := component.Build(params)
		if err != nil {
			c.log.Printf("editor: palette %s: %v", k, err)
			continue
		}
		tools = append(tools, Tool{
			Kind:      k,
			Center:    center,
			Component: comp,
			Handle:    component.Draw(comp, c.canvas),
		})
	}
	return tools
}

func (c *Controller) toolAt(p geom.Point) (Tool, bool) {
	for _, t := range c.palette {
		d := p.Sub(t.Center)
		if abs(d.X) < c.cfg.ToolHalfWidth && abs(d.Y) < c.cfg.ToolHalfHeight {
			return t, true
		}
	}
	return Tool{}, false
}

// palettePreview shows the active tool's symbol under the pointer, snapped
// onto a nearby node within the palette threshold.
func (c *Controller) palettePreview(s *Scene, p geom.Point) {
	comps := s.Components()
	params := component.Params{Kind: s.tool, Angle: DefaultAngle(s.tool), Seed: s.g.seed}
	if s.tool.IsResistor() {
		half := geom.Pt(paletteResistorLength/2, 0)
		n1, n2 := p.Sub(half), p.Add(half)
		if sn, ok := snap.NearestNode(n1, comps, component.NoID, c.cfg.PaletteThreshold); ok {
			n1, n2 = sn, sn.Add(half.Scale(2))
		} else if sn, ok := snap.NearestNode(n2, comps, component.NoID, c.cfg.PaletteThreshold); ok {
			n1, n2 = sn.Sub(half.Scale(2)), sn
		}
		params.Node1, params.Node2 = n1, n2
	} else {
		params.Anchor = p
		if sn, ok := snap.NearestNode(p, comps, component.NoID, c.cfg.PaletteThreshold); ok {
			params.Anchor = sn
		}
	}
	comp, err := component.Build(params)
	if err != nil {
		c.log.Printf("editor: palette preview: %v", err)
		return
	}
	c.setPreview(s, comp)
}

// DefaultAngle is the orientation a symbol gets when dropped from the
// palette: ground points down, the positive rail up.
func DefaultAngle(k component.Kind) float64 {
	switch k {
	case component.LabelGround:
		return 90
	case component.LabelPositive:
		return 270
	}
	return 0
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

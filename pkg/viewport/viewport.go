// Package viewport maps between screen pixels and the editor's fixed design
// space. The display scale is always explicit state of the Viewport, never
// inferred from the size of whatever surface happens to be on screen.
package viewport

import "github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"

// Design space used by the editor.
const (
	DesignWidth  = 800.0
	DesignHeight = 600.0
)

// Viewport represents the mapping from canvas (design) coordinates to
// screen coordinates: screen = canvas*scale + offset.
type Viewport struct {
	// Size of the design space in canvas units
	DesignWidth  float64
	DesignHeight float64

	// Screen pixels per canvas unit, per axis
	ScaleX float64
	ScaleY float64

	// Screen position of the canvas origin (pixels)
	OffsetX float64
	OffsetY float64
}

// New creates a viewport at scale 1 over the default design space.
func New() *Viewport {
	return &Viewport{
		DesignWidth:  DesignWidth,
		DesignHeight: DesignHeight,
		ScaleX:       1,
		ScaleY:       1,
	}
}

// ScreenToCanvas converts screen coordinates (pixels) to canvas coordinates.
func (v *Viewport) ScreenToCanvas(x, y float64) geom.Point {
	return geom.Pt((x-v.OffsetX)/v.ScaleX, (y-v.OffsetY)/v.ScaleY)
}

// CanvasToScreen converts canvas coordinates to screen coordinates (pixels).
func (v *Viewport) CanvasToScreen(p geom.Point) (float64, float64) {
	return p.X*v.ScaleX + v.OffsetX, p.Y*v.ScaleY + v.OffsetY
}

// SetScale sets a uniform scale and keeps the offset.
func (v *Viewport) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	v.ScaleX = scale
	v.ScaleY = scale
}

// Fit picks the largest uniform scale that shows the whole design space on
// a screen of the given size and centers it.
func (v *Viewport) Fit(screenW, screenH float64) {
	if screenW <= 0 || screenH <= 0 || v.DesignWidth <= 0 || v.DesignHeight <= 0 {
		return
	}
	scaleX := screenW / v.DesignWidth
	scaleY := screenH / v.DesignHeight

	// Use the smaller scale to ensure everything fits
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	v.ScaleX = scale
	v.ScaleY = scale
	v.OffsetX = (screenW - v.DesignWidth*scale) / 2
	v.OffsetY = (screenH - v.DesignHeight*scale) / 2
}

// Stretch maps the design space onto the whole screen with independent
// scales per axis. Terminal cells are not square, so the terminal frontend
// uses this instead of Fit.
func (v *Viewport) Stretch(screenW, screenH float64) {
	if screenW <= 0 || screenH <= 0 || v.DesignWidth <= 0 || v.DesignHeight <= 0 {
		return
	}
	v.ScaleX = screenW / v.DesignWidth
	v.ScaleY = screenH / v.DesignHeight
	v.OffsetX = 0
	v.OffsetY = 0
}

// ScreenBounds returns the screen rectangle covered by the design space.
func (v *Viewport) ScreenBounds() geom.BBox {
	x0, y0 := v.CanvasToScreen(geom.Pt(0, 0))
	x1, y1 := v.CanvasToScreen(geom.Pt(v.DesignWidth, v.DesignHeight))
	return geom.BBoxOf(geom.Pt(x0, y0), geom.Pt(x1, y1))
}

// Length converts a canvas distance to screen pixels along X.
func (v *Viewport) Length(d float64) float64 {
	return d * v.ScaleX
}

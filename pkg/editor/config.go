package editor

import (
	"errors"
	"fmt"
)

// Config controls the geometry of the editing area and the snapping radii
// used by each gesture.
type Config struct {
	// Design space (canvas units). The palette occupies the strip
	// [PaletteX, PaletteX+PaletteWidth) on the right.
	CanvasWidth  float64 `json:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height"`
	PaletteX     float64 `json:"palette_x"`
	PaletteWidth float64 `json:"palette_width"`

	// Gestures shorter than this (from the raw press point) are discarded.
	MinMoveDistance float64 `json:"min_move_distance"`

	// Snap radii
	PlacementThreshold float64 `json:"placement_threshold"` // start of a drawn stroke
	PaletteThreshold   float64 `json:"palette_threshold"`   // palette drag preview
	DragThreshold      float64 `json:"drag_threshold"`      // while moving a component
	DropThreshold      float64 `json:"drop_threshold"`      // on release of a moved component

	// Half extents of a palette tool's hit box
	ToolHalfWidth  float64 `json:"tool_half_width"`
	ToolHalfHeight float64 `json:"tool_half_height"`

	// PaletteSeed is the fixed seed the palette symbols are drawn with.
	PaletteSeed int64 `json:"palette_seed"`
}

// DefaultConfig returns the editor's stock layout and thresholds.
func DefaultConfig() *Config {
	return &Config{
		CanvasWidth:        800,
		CanvasHeight:       600,
		PaletteX:           700,
		PaletteWidth:       100,
		MinMoveDistance:    10,
		PlacementThreshold: 50,
		PaletteThreshold:   50,
		DragThreshold:      40,
		DropThreshold:      30,
		ToolHalfWidth:      35,
		ToolHalfHeight:     20,
		PaletteSeed:        12345,
	}
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	var errs []error
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %gx%g must be positive", c.CanvasWidth, c.CanvasHeight))
	}
	if c.PaletteWidth <= 0 {
		errs = append(errs, fmt.Errorf("palette width %g must be positive", c.PaletteWidth))
	}
	if c.PaletteX <= 0 || c.PaletteX+c.PaletteWidth > c.CanvasWidth {
		errs = append(errs, fmt.Errorf("palette [%g, %g) does not fit in canvas width %g",
			c.PaletteX, c.PaletteX+c.PaletteWidth, c.CanvasWidth))
	}
	if c.MinMoveDistance < 0 {
		errs = append(errs, fmt.Errorf("minimum move distance %g is negative", c.MinMoveDistance))
	}
	thresholds := []struct {
		name string
		v    float64
	}{
		{"placement", c.PlacementThreshold},
		{"palette", c.PaletteThreshold},
		{"drag", c.DragThreshold},
		{"drop", c.DropThreshold},
	}
	for _, th := range thresholds {
		if th.v < 0 {
			errs = append(errs, fmt.Errorf("%s threshold %g is negative", th.name, th.v))
		}
	}
	if c.ToolHalfWidth <= 0 || c.ToolHalfHeight <= 0 {
		errs = append(errs, fmt.Errorf("tool hit box %gx%g must be positive", c.ToolHalfWidth, c.ToolHalfHeight))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("editor: invalid config: %w", err)
	}
	return nil
}

// InCanvas reports whether (x, y) lies in the drawing area left of the
// palette.
func (c *Config) InCanvas(x, y float64) bool {
	return x >= 0 && x < c.PaletteX && y >= 0 && y < c.CanvasHeight
}

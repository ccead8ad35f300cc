package render

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme represents a color scheme for the editor chrome
type Theme int

const (
	// ThemeLight is a light window around white paper
	ThemeLight Theme = iota
	// ThemeDark is a dark window around the same white paper
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("render: unknown theme %q", s)
}

// Colors defines the colors the frontends paint around components. Symbols
// carry their own colors, so the paper is white in every theme.
type Colors struct {
	// Window and drawing area
	Background color.NRGBA
	Paper      color.NRGBA

	// Palette column
	Palette        color.NRGBA
	PaletteDivider color.NRGBA
	ActiveTool     color.NRGBA

	// Selection and transient geometry
	Selection color.NRGBA
	Preview   color.NRGBA

	// Status bar and text overlay
	Text        color.NRGBA
	OverlayFill color.NRGBA
}

// GetColors returns the color scheme for the given theme
func GetColors(theme Theme) *Colors {
	switch theme {
	case ThemeDark:
		return getDarkColors()
	default:
		return getLightColors()
	}
}

func getLightColors() *Colors {
	return &Colors{
		Background: color.NRGBA{R: 235, G: 235, B: 235, A: 255}, // Light gray
		Paper:      color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // White

		Palette:        color.NRGBA{R: 245, G: 245, B: 245, A: 255},
		PaletteDivider: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		ActiveTool:     color.NRGBA{R: 173, G: 216, B: 230, A: 160}, // Light blue

		Selection: color.NRGBA{R: 0, G: 120, B: 215, A: 255},
		Preview:   color.NRGBA{R: 0, G: 0, B: 0, A: 96},

		Text:        color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		OverlayFill: color.NRGBA{R: 255, G: 255, B: 224, A: 255}, // Light yellow
	}
}

func getDarkColors() *Colors {
	return &Colors{
		Background: color.NRGBA{R: 40, G: 40, B: 40, A: 255},
		Paper:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},

		Palette:        color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		PaletteDivider: color.NRGBA{R: 90, G: 90, B: 90, A: 255},
		ActiveTool:     color.NRGBA{R: 70, G: 110, B: 160, A: 200},

		Selection: color.NRGBA{R: 255, G: 160, B: 0, A: 255}, // Orange
		Preview:   color.NRGBA{R: 0, G: 0, B: 0, A: 96},

		Text:        color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		OverlayFill: color.NRGBA{R: 255, G: 255, B: 224, A: 255},
	}
}

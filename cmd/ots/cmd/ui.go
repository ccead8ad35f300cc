package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/config"
	appui "github.com/OpenTraceLab/OpenTraceSketch/internal/ui"
)

// sessionFlags override config values for a single interactive run.
type sessionFlags struct {
	theme  string
	file   string
	noSeed bool
}

func (f *sessionFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.theme, "theme", "", "colour theme (light or dark)")
	c.Flags().StringVarP(&f.file, "file", "f", "", "sketch file to edit")
	c.Flags().BoolVar(&f.noSeed, "no-seed", false, "start empty instead of placing the initial resistor")
}

func (f *sessionFlags) apply(cfg *config.AppConfig) error {
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.file != "" {
		cfg.StoragePath = f.file
	}
	if f.noSeed {
		cfg.SeedOnEmpty = false
	}
	return cfg.Validate()
}

var (
	uiFlags  sessionFlags
	uiWidth  int
	uiHeight int
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the editor window",
	Long: `Launch the sketch editor in a window. Draw resistors by dragging on the
canvas, drop labels from the palette on the right and double-click a tag to
edit its text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("width") {
			cfg.WindowWidth = uiWidth
		}
		if cmd.Flags().Changed("height") {
			cfg.WindowHeight = uiHeight
		}
		if err := uiFlags.apply(cfg); err != nil {
			return err
		}
		return appui.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiFlags.register(uiCmd)
	uiCmd.Flags().IntVar(&uiWidth, "width", 0, "window width in dp")
	uiCmd.Flags().IntVar(&uiHeight, "height", 0, "window height in dp")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/export"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

var exportOpts struct {
	output      string
	width       int
	height      int
	supersample int
	palette     bool
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Render a sketch to PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		records, err := store.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading sketch: %w", err)
		}
		canvas, ctrl, scene, err := newSession(cfg)
		if err != nil {
			return err
		}
		if skipped := ctrl.Load(scene, records); skipped > 0 {
			fmt.Fprintf(os.Stderr, "skipped %d unreadable records\n", skipped)
		}
		return writePNG(exportOpts.output, canvas, ctrl)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOpts.output, "output", "o", "", "PNG file to write (required)")
	exportCmd.Flags().IntVar(&exportOpts.width, "width", 800, "image width in pixels")
	exportCmd.Flags().IntVar(&exportOpts.height, "height", 600, "image height in pixels")
	exportCmd.Flags().IntVar(&exportOpts.supersample, "supersample", 4, "render scale before downsampling")
	exportCmd.Flags().BoolVar(&exportOpts.palette, "palette", false, "include the symbol palette")
	_ = exportCmd.MarkFlagRequired("output")
}

// sketchItems returns the items of the scene in paint order, optionally
// behind the palette symbols.
func sketchItems(canvas *rough.Canvas, ctrl *editor.Controller, palette bool) []rough.Item {
	var items []rough.Item
	if palette {
		for _, tool := range ctrl.Palette() {
			items = append(items, rough.Flatten(tool.Handle)...)
		}
	}
	return append(items, canvas.Items()...)
}

func writePNG(path string, canvas *rough.Canvas, ctrl *editor.Controller) error {
	opts := export.DefaultOptions()
	opts.Width = exportOpts.width
	opts.Height = exportOpts.height
	opts.Supersample = exportOpts.supersample

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := export.PNG(f, sketchItems(canvas, ctrl, exportOpts.palette), opts); err != nil {
		f.Close()
		return fmt.Errorf("error exporting %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Exported %s (%dx%d)\n", path, opts.Width, opts.Height)
	}
	return nil
}

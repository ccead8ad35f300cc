package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/config"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "ots",
	Short: "OpenTraceSketch - hand-drawn circuit sketches",
	Long: `OpenTraceSketch (ots) sketches small circuits of resistors and labels
in a rough, hand-drawn style.

Examples:
  ots ui                               # Launch the editor window
  ots term                             # Edit in the terminal
  ots info sketch.json                 # Summarize a saved sketch
  ots export sketch.json -o out.png    # Render a sketch to PNG
  ots convert sketch.json sketch.sch   # Rewrite JSON as a sheet
  ots run demo.ots -o demo.json        # Replay a gesture script`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the user config directory)")
}

func loadConfig() (*config.AppConfig, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// logger is where editor messages go for batch commands.
func logger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// newSession builds an off-screen editor with the configured thresholds.
func newSession(cfg *config.AppConfig) (*rough.Canvas, *editor.Controller, *editor.Scene, error) {
	canvas := rough.New()
	ctrl, err := editor.New(cfg.Editor, canvas)
	if err != nil {
		return nil, nil, nil, err
	}
	ctrl.SetLogger(logger())
	return canvas, ctrl, editor.NewScene(), nil
}

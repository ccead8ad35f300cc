package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/script"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

var (
	runOutputs []string
	runInput   string
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Replay a gesture script",
	Long: `Replay pointer and keyboard gestures from a script against an off-screen
editor. The result can be saved as a sketch (.json or sheet) or exported as
PNG; pass -o more than once for several outputs.

Example script:
  tool resistor/zigzag
  drag (300,100) to (300,200)
  place label/tag (100,100)
  dblclick 140 100
  type "Vin"
  commit
  expect 2`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringArrayVarP(&runOutputs, "output", "o", nil, "write the result to a sketch or .png file")
	runCmd.Flags().StringVar(&runInput, "input", "", "sketch to load before running")
}

func runScript(cmd *cobra.Command, args []string) error {
	parser, err := script.NewParser()
	if err != nil {
		return err
	}
	sc, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	canvas, ctrl, scene, err := newSession(cfg)
	if err != nil {
		return err
	}
	if runInput != "" {
		records, err := store.ReadFile(runInput)
		if err != nil {
			return fmt.Errorf("error reading sketch: %w", err)
		}
		ctrl.Load(scene, records)
	}

	if err := script.Run(ctrl, scene, sc); err != nil {
		return err
	}
	if verbose {
		fmt.Printf("%s: %d steps, %d components\n", args[0], len(sc.Steps), scene.Len())
	}

	for _, out := range runOutputs {
		if strings.EqualFold(filepath.Ext(out), ".png") {
			if err := writePNG(out, canvas, ctrl); err != nil {
				return err
			}
			continue
		}
		if err := store.WriteFile(out, ctrl.Records(scene)); err != nil {
			return fmt.Errorf("error writing sketch: %w", err)
		}
	}
	return nil
}

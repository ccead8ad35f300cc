package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show sketch information",
	Long: `Display a summary of a saved sketch (JSON or sheet). With --verbose each
component is listed with its position, angle and seed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	records, err := store.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading sketch: %w", err)
	}

	counts := make(map[component.Kind]int)
	unknown := 0
	var comps []component.Component
	for _, r := range records {
		c, err := store.FromRecord(r)
		if err != nil {
			unknown++
			if verbose {
				fmt.Printf("  skipped %s/%s: %v\n", r.Type, r.Subtype, err)
			}
			continue
		}
		counts[c.Kind]++
		comps = append(comps, c)
	}

	fmt.Printf("Sketch: %s\n", filename)
	fmt.Printf("Format: %s\n", store.FormatFor(filename))
	fmt.Printf("Components: %d\n", len(comps))
	for _, k := range component.Kinds() {
		if counts[k] > 0 {
			fmt.Printf("  %-20s %d\n", k, counts[k])
		}
	}
	if unknown > 0 {
		fmt.Printf("Unreadable records: %d\n", unknown)
	}

	if verbose && len(comps) > 0 {
		fmt.Println()
		for i, c := range comps {
			fmt.Printf("%3d  %-20s", i+1, c.Kind)
			if c.Kind.IsResistor() {
				fmt.Printf(" (%.0f,%.0f)-(%.0f,%.0f)", c.Node1.X, c.Node1.Y, c.Node2.X, c.Node2.Y)
			} else {
				fmt.Printf(" at (%.0f,%.0f)", c.Anchor.X, c.Anchor.Y)
			}
			fmt.Printf(" angle %.0f seed %d", c.Angle, c.Seed)
			if c.Text != "" {
				fmt.Printf(" %q", c.Text)
			}
			fmt.Println()
		}
	}
	return nil
}

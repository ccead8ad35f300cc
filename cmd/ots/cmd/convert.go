package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a sketch between JSON and sheet form",
	Long: `Read a sketch in either format and write it in the format chosen by the
output extension: .json writes JSON, anything else an s-expression sheet.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := store.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading sketch: %w", err)
		}
		if err := store.WriteFile(args[1], records); err != nil {
			return fmt.Errorf("error writing sketch: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote %d records to %s (%s)\n", len(records), args[1], store.FormatFor(args[1]))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

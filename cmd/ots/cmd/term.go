package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/term"
)

var termFlags sessionFlags

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Edit in the terminal",
	Long: `Run the sketch editor in the terminal. The mouse draws and drags as in
the window; keys 1-5 pick a tool, Ctrl+S saves and q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := termFlags.apply(cfg); err != nil {
			return err
		}
		return term.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(termCmd)
	termFlags.register(termCmd)
}

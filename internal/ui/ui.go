package ui

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/OpenTraceLab/OpenTraceSketch/internal/config"
)

// Run launches the Gio UI and blocks until the window closes.
func Run(cfg *config.AppConfig) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("OpenTraceSketch"),
			app.Size(unit.Dp(float32(cfg.WindowWidth)), unit.Dp(float32(cfg.WindowHeight))),
		)
		ui, err := New(w, cfg)
		if err != nil {
			log.Printf("ui: %v", err)
			os.Exit(1)
		}
		if err := ui.Run(); err != nil {
			log.Printf("ui: %v", err)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}

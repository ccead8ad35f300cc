package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Theme != "light" || cfg.Editor == nil || cfg.Editor.DragThreshold != 40 {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := DefaultConfig()
	cfg.Theme = "dark"
	cfg.WindowWidth = 1280
	cfg.Editor.DropThreshold = 25
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got.ThemeValue() != render.ThemeDark {
		t.Errorf("Expected dark theme, got %v", got.ThemeValue())
	}
	if got.WindowWidth != 1280 || got.Editor.DropThreshold != 25 {
		t.Errorf("Unexpected config after round trip: %+v %+v", got, got.Editor)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"editor": {"drag_threshold": 45}}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Editor.DragThreshold != 45 {
		t.Errorf("Expected drag threshold 45, got %v", cfg.Editor.DragThreshold)
	}
	if cfg.Editor.DropThreshold != 30 || cfg.WindowHeight != 700 {
		t.Errorf("Expected other fields to keep defaults, got %+v", cfg.Editor)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad json":   `{"theme": `,
		"bad theme":  `{"theme": "sepia"}`,
		"bad size":   `{"window_width": -1}`,
		"bad editor": `{"editor": {"drop_threshold": -3}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFrom(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestDirAndStorageFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("APPDATA", tmp)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if want := filepath.Join(tmp, "OpenTraceSketch"); dir != want {
		t.Errorf("Expected %s, got %s", want, dir)
	}

	cfg := DefaultConfig()
	file, err := cfg.StorageFile()
	if err != nil {
		t.Fatalf("StorageFile failed: %v", err)
	}
	if file != filepath.Join(dir, store.DefaultFileName) {
		t.Errorf("Unexpected storage file %s", file)
	}

	cfg.StoragePath = "/tmp/mine.json"
	if file, _ := cfg.StorageFile(); file != "/tmp/mine.json" {
		t.Errorf("Expected explicit storage path, got %s", file)
	}
}

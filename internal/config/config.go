// Package config persists application settings shared by the ots frontends.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/store"
)

const fileName = "config.json"

// AppConfig stores persistent application settings
type AppConfig struct {
	Theme        string `json:"theme"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	// StoragePath is the sketch file; empty means circuitComponents.json
	// next to the config file.
	StoragePath string `json:"storage_path,omitempty"`
	// SeedOnEmpty places the initial resistor when storage is empty.
	SeedOnEmpty bool `json:"seed_on_empty"`

	Editor *editor.Config `json:"editor"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:        render.ThemeLight.String(),
		WindowWidth:  1000,
		WindowHeight: 700,
		SeedOnEmpty:  true,
		Editor:       editor.DefaultConfig(),
	}
}

// Validate checks the theme, window size and editor settings.
func (c *AppConfig) Validate() error {
	if _, err := render.ParseTheme(c.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.Editor == nil {
		return fmt.Errorf("config: missing editor settings")
	}
	return c.Editor.Validate()
}

// ThemeValue returns the parsed theme, falling back to light.
func (c *AppConfig) ThemeValue() render.Theme {
	t, _ := render.ParseTheme(c.Theme)
	return t
}

// Dir returns the platform config directory, creating it if needed.
func Dir() (string, error) {
	var configDir string
	// Use platform-appropriate config directory
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: use %APPDATA%\OpenTraceSketch
		configDir = filepath.Join(appData, "OpenTraceSketch")
	} else {
		// Linux/macOS: use ~/.config/opentracesketch
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config", "opentracesketch")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// StorageFile resolves where sketches are saved.
func (c *AppConfig) StorageFile() (string, error) {
	if c.StoragePath != "" {
		return c.StoragePath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, store.DefaultFileName), nil
}

// Load loads the application configuration from the platform path
func Load() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration at path. A missing file yields defaults;
// fields absent from the file keep their default values.
func LoadFrom(path string) (*AppConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the application configuration to the platform path
func Save(cfg *AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes cfg as indented JSON.
func SaveTo(path string, cfg *AppConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

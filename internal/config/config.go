// Package config holds the tool's configuration: where theme files and
// the index live, which sources are enabled, and the mapper's tuning
// knobs. Configuration is an explicit value passed to callers; there is
// no process-wide state.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajramos/termtheme/internal/theme"
)

// MappingConfig exposes the theme mapper's tuning parameters.
type MappingConfig struct {
	PanelOffset       float64 `json:"panel_offset"`
	HeaderOffset      float64 `json:"header_offset"`
	PopupOffset       float64 `json:"popup_offset"`
	TextContrast      float64 `json:"text_contrast"`
	SecondaryContrast float64 `json:"secondary_contrast"`
	AccentContrast    float64 `json:"accent_contrast"`
	BorderBlend       float64 `json:"border_blend"`
	MaxIterations     int     `json:"max_iterations"`
}

// Config is the full tool configuration.
type Config struct {
	// ThemesDir is the folder scanned for color scheme files.
	ThemesDir string `json:"themes_dir"`

	// IndexPath is the SQLite scheme index location.
	IndexPath string `json:"index_path"`

	// Sources enables format keys for scanning: iterm, gogh, base16.
	Sources []string `json:"sources"`

	// LivePreview re-runs the mapper on every palette edit.
	LivePreview bool `json:"live_preview"`

	// LogFile, when set, duplicates logs to a file.
	LogFile string `json:"log_file"`

	Mapping MappingConfig `json:"mapping"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	opts := theme.DefaultOptions()
	return &Config{
		ThemesDir:   defaultPath("themes"),
		IndexPath:   defaultPath("index.db"),
		Sources:     []string{"iterm", "gogh", "base16"},
		LivePreview: true,
		Mapping: MappingConfig{
			PanelOffset:       opts.PanelOffset,
			HeaderOffset:      opts.HeaderOffset,
			PopupOffset:       opts.PopupOffset,
			TextContrast:      opts.TextContrast,
			SecondaryContrast: opts.SecondaryContrast,
			AccentContrast:    opts.AccentContrast,
			BorderBlend:       opts.BorderBlend,
			MaxIterations:     opts.MaxIterations,
		},
	}
}

// LoadConfig reads a JSON config file, filling unset fields from the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Mapping.MaxIterations <= 0 {
		cfg.Mapping.MaxIterations = theme.DefaultOptions().MaxIterations
	}
	return cfg, nil
}

// Save writes the configuration as indented JSON.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// MapperOptions converts the mapping section into theme.Options.
func (c *Config) MapperOptions() theme.Options {
	return theme.Options{
		PanelOffset:       c.Mapping.PanelOffset,
		HeaderOffset:      c.Mapping.HeaderOffset,
		PopupOffset:       c.Mapping.PopupOffset,
		TextContrast:      c.Mapping.TextContrast,
		SecondaryContrast: c.Mapping.SecondaryContrast,
		AccentContrast:    c.Mapping.AccentContrast,
		BorderBlend:       c.Mapping.BorderBlend,
		MaxIterations:     c.Mapping.MaxIterations,
	}
}

// SourceEnabled reports whether a format key is in Sources.
func (c *Config) SourceEnabled(key string) bool {
	for _, s := range c.Sources {
		if s == key {
			return true
		}
	}
	return false
}

// DefaultConfigPath is where the CLI looks without a --config flag.
func DefaultConfigPath() string {
	return defaultPath("config.json")
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".termtheme", name)
	}
	return filepath.Join(home, ".config", "termtheme", name)
}

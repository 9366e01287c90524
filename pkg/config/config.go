package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Editor string `yaml:"editor"`

	// Export
	ExportFilename  string `yaml:"export_filename"`
	ExportDir       string `yaml:"export_dir"`
	CopyToClipboard bool   `yaml:"copy_to_clipboard"`

	// Preview
	DefaultDevice string `yaml:"default_device"`
	RandomSeed    uint64 `yaml:"random_seed"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`

	// Performance
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		Editor:          "",
		ExportFilename:  "rsa_ads_export.csv",
		ExportDir:       "",
		CopyToClipboard: false,
		DefaultDevice:   "desktop",
		RandomSeed:      0,
		ColorTheme:      "auto",
		WatchDebounceMS: 300,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.ExportFilename == "" {
		cfg.ExportFilename = "rsa_ads_export.csv"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 300
	}
	if !isValidDevice(cfg.DefaultDevice) {
		cfg.DefaultDevice = "desktop"
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidDevice checks if the preview device is one the renderer knows
func isValidDevice(device string) bool {
	return device == "desktop" || device == "mobile"
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.ExportFilename != "rsa_ads_export.csv" {
		t.Errorf("expected default ExportFilename='rsa_ads_export.csv', got %q", cfg.ExportFilename)
	}

	if cfg.DefaultDevice != "desktop" {
		t.Errorf("expected default DefaultDevice='desktop', got %q", cfg.DefaultDevice)
	}

	if cfg.RandomSeed != 0 {
		t.Errorf("expected default RandomSeed=0, got %d", cfg.RandomSeed)
	}

	if cfg.WatchDebounceMS != 300 {
		t.Errorf("expected default WatchDebounceMS=300, got %d", cfg.WatchDebounceMS)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/config.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.ExportFilename != "rsa_ads_export.csv" {
		t.Errorf("expected default ExportFilename, got %q", cfg.ExportFilename)
	}
}

func TestSave_And_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	original := &Config{
		Editor:          "nvim",
		ExportFilename:  "campaign.csv",
		ExportDir:       "/tmp/exports",
		CopyToClipboard: true,
		DefaultDevice:   "mobile",
		RandomSeed:      42,
		ColorTheme:      "dark",
		WatchDebounceMS: 150,
	}

	if err := original.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if *loaded != *original {
		t.Errorf("loaded config = %+v, want %+v", loaded, original)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "empty filename",
			content: "export_filename: \"\"\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.ExportFilename != "rsa_ads_export.csv" {
					t.Errorf("ExportFilename = %q", cfg.ExportFilename)
				}
			},
		},
		{
			name:    "zero debounce",
			content: "watch_debounce_ms: 0\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.WatchDebounceMS != 300 {
					t.Errorf("WatchDebounceMS = %d", cfg.WatchDebounceMS)
				}
			},
		},
		{
			name:    "negative debounce",
			content: "watch_debounce_ms: -5\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.WatchDebounceMS != 300 {
					t.Errorf("WatchDebounceMS = %d", cfg.WatchDebounceMS)
				}
			},
		},
		{
			name:    "unknown device",
			content: "default_device: tablet\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.DefaultDevice != "desktop" {
					t.Errorf("DefaultDevice = %q", cfg.DefaultDevice)
				}
			},
		},
		{
			name:    "partial file keeps other defaults",
			content: "editor: vim\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Editor != "vim" || cfg.ColorTheme != "auto" || cfg.DefaultDevice != "desktop" {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("editor: [unterminated"), 0644)

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestSave_ValidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	content := string(data)
	for _, key := range []string{"export_filename:", "default_device:", "random_seed:", "watch_debounce_ms:", "copy_to_clipboard:"} {
		if !strings.Contains(content, key) {
			t.Errorf("saved config missing key %q", key)
		}
	}
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/pkg/ui"
	"github.com/kamal-hamza/rsa-cli/pkg/workspace"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the rsa workspace",
	Long: `Initialize the rsa workspace directory structure.

This creates the managed workspace at ~/.local/share/rsa/ with the following structure:
  - drafts/     : Your ad drafts (.yaml files)
  - exports/    : Exported bulk-upload CSV files
  - batch.yaml  : Ads accepted for the next export
  - config.yaml : Global configuration (under ~/.config/rsa/)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := workspace.New()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to determine workspace location"))
		return err
	}

	if ws.Exists() {
		fmt.Println(ui.FormatWarning("Workspace already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + ws.RootPath))
		return nil
	}

	fmt.Println(ui.FormatRocket("Initializing rsa workspace..."))
	fmt.Println()

	if err := ws.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize workspace"))
		return err
	}

	if err := createDefaultConfig(ws); err != nil {
		// Config is optional
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
	}

	fmt.Println(ui.FormatSuccess("Workspace initialized successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Location", ws.RootPath))
	fmt.Println(ui.RenderKeyValue("Config", ws.ConfigPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. Create a draft: rsa new \"Summer Sale\" --url example.com/shoes"))
	fmt.Println(ui.FormatMuted("  2. Preview it: rsa preview summer-sale --shuffle"))
	fmt.Println(ui.FormatMuted("  3. Add it to the batch: rsa add summer-sale"))
	fmt.Println(ui.FormatMuted("  4. Export the CSV: rsa export"))

	return nil
}

func createDefaultConfig(ws *workspace.Workspace) error {
	if _, err := os.Stat(ws.ConfigPath); err == nil {
		return nil
	}

	defaultConfig := `# RSA Configuration
# This file is optional - all settings have sensible defaults

# Name of the exported CSV file
# export_filename: rsa_ads_export.csv

# Directory exports are written to (defaults to the workspace exports/ folder)
# export_dir: ""

# Also copy exported CSV to the clipboard
# copy_to_clipboard: false

# Preview width: desktop or mobile
# default_device: desktop

# Seed for shuffled previews (0 picks a new seed every run)
# random_seed: 0

# Color theme: auto, dark or light
# color_theme: auto

# Delay before watch mode re-renders after a change
# watch_debounce_ms: 300

# Default editor (uses $EDITOR environment variable if not set)
# editor: ""
`

	if err := os.MkdirAll(filepath.Dir(ws.ConfigPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(ws.ConfigPath, []byte(defaultConfig), 0644)
}

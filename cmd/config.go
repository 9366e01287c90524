package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/pkg/config"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var configShow bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the rsa configuration file",
	Long: `Open the rsa configuration file in your editor.

A config file with the default settings is written first if none exists.
Use --show to print the effective settings instead.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShow, "show", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configShow {
		printConfig(appConfig)
		return nil
	}

	path := appWorkspace.ConfigPath
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Println(ui.FormatSuccess("Default config written"))
	}

	fmt.Println(ui.FormatInfo("Opening config: " + path))
	return openInEditor(path)
}

func printConfig(cfg *config.Config) {
	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Config file", appWorkspace.ConfigPath))
	fmt.Println(ui.RenderKeyValue("Export filename", cfg.ExportFilename))
	fmt.Println(ui.RenderKeyValue("Export directory", exportDir()))
	fmt.Println(ui.RenderKeyValue("Copy to clipboard", fmt.Sprint(cfg.CopyToClipboard)))
	fmt.Println(ui.RenderKeyValue("Default device", cfg.DefaultDevice))
	fmt.Println(ui.RenderKeyValue("Random seed", fmt.Sprint(cfg.RandomSeed)))
	fmt.Println(ui.RenderKeyValue("Color theme", cfg.ColorTheme))
	fmt.Println(ui.RenderKeyValue("Watch debounce", fmt.Sprintf("%dms", cfg.WatchDebounceMS)))
	fmt.Println(ui.RenderKeyValue("Editor", GetPreferredEditor()))
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/adapters/repository"
	"github.com/kamal-hamza/rsa-cli/internal/core/services"
	"github.com/kamal-hamza/rsa-cli/pkg/config"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
	"github.com/kamal-hamza/rsa-cli/pkg/workspace"
)

var (
	// Global workspace and configuration
	appWorkspace *workspace.Workspace
	appConfig    *config.Config

	// Services
	draftService  *services.DraftService
	batchService  *services.BatchService
	reportService *services.ReportService

	// Repositories
	draftRepo *repository.DraftRepository
	batchRepo *repository.BatchRepository
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rsa",
	Short: "RSA - Responsive search ad previewer",
	Long: ui.StyleTitle.Render("RSA") + " - Responsive Search Ad Previewer\n\n" +
		"Compose responsive search ads from the terminal, preview how the\n" +
		"assets combine, and export validated ads as a bulk-upload CSV.",
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(doctorCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for commands that work without a workspace
	if cmd.Name() == "init" || cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	ws, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	appWorkspace = ws

	cfg, err := config.Load(appWorkspace.ConfigPath)
	if err != nil {
		fmt.Println(ui.FormatWarning("Failed to load config, using defaults: " + err.Error()))
		cfg = config.DefaultConfig()
	}
	appConfig = cfg
	ui.SetTheme(appConfig.ColorTheme)

	// compose works without an initialized workspace
	if !appWorkspace.Exists() && cmd.Name() != "compose" {
		fmt.Println(ui.FormatError("Workspace not initialized"))
		fmt.Println(ui.FormatInfo("Run 'rsa init' to initialize the workspace"))
		os.Exit(1)
	}

	// Initialize repositories
	draftRepo = repository.NewDraftRepository(appWorkspace)
	batchRepo = repository.NewBatchRepository(appWorkspace.BatchPath())

	// Initialize services
	draftService = services.NewDraftService(draftRepo)
	batchService = services.NewBatchService(draftRepo, batchRepo)
	reportService = services.NewReportService()

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

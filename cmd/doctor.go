package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/pkg/config"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your rsa installation",
	Long: `Diagnose issues with your rsa setup.

Checks for:
  - Workspace directory integrity
  - Configuration file validity
  - Clipboard support (for export --clipboard)
  - Drafts that cannot be added to the batch`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("RSA Doctor"))
	fmt.Println()

	// 1. Check Workspace Structure
	checkStep("Workspace Directory", func() error {
		if !appWorkspace.Exists() {
			return fmt.Errorf("not found at %s", appWorkspace.RootPath)
		}
		return nil
	})

	checkStep("Drafts Directory", func() error {
		if _, err := os.Stat(appWorkspace.DraftsPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s", appWorkspace.DraftsPath)
		}
		return nil
	})

	checkStep("Batch Manifest", func() error {
		_, err := batchRepo.Load(getContext())
		return err
	})

	// 2. Check Config
	checkStep("Configuration File", func() error {
		if _, err := os.Stat(appWorkspace.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (defaults in use)", appWorkspace.ConfigPath)
		}
		_, err := config.Load(appWorkspace.ConfigPath)
		return err
	})

	// 3. Check Environment
	checkStep("Clipboard", func() error {
		if clipboard.Unsupported {
			return fmt.Errorf("no clipboard utility found (install xclip, xsel or wl-clipboard)")
		}
		return nil
	})

	checkStep("EDITOR Variable", func() error {
		if os.Getenv("EDITOR") == "" && appConfig.Editor == "" {
			return fmt.Errorf("not set (using fallback 'vi')")
		}
		return nil
	})

	fmt.Println()
	fmt.Println(ui.FormatInfo("Checking drafts..."))

	checkStep("Draft Validity", func() error {
		drafts, err := draftRepo.List(getContext())
		if err != nil {
			return err
		}

		invalid := 0
		for _, d := range drafts {
			violations := domain.CheckLengths(d.Collection())
			missingURL := d.Destination.FinalURL == ""
			if len(violations) == 0 && !missingURL {
				continue
			}
			if invalid == 0 {
				fmt.Println()
			}
			invalid++
			for _, v := range violations {
				fmt.Printf("    %s: %s\n", d.Slug, v)
			}
			if missingURL {
				fmt.Printf("    %s: no final URL\n", d.Slug)
			}
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d drafts cannot be added to the batch yet", invalid, len(drafts))
		}
		return nil
	})
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
	} else {
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}

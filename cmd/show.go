package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var showCmd = &cobra.Command{
	Use:   "show [draft]",
	Short: "Show a draft's assets with character counters",
	Long: `Show every headline and description of a draft next to its character
count, along with the destination URL and display path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	draft, err := resolveDraft(args)
	if err != nil {
		return err
	}

	c := draft.Collection()
	dest := draft.Destination

	fmt.Println(ui.FormatTitle(draft.Name))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Slug", draft.Slug))
	fmt.Println(ui.RenderKeyValue("Final URL", dest.FinalURL))
	fmt.Println(ui.RenderKeyValue("Display URL", dest.Domain()+dest.DisplayPath()))
	fmt.Println()
	fmt.Print(ui.RenderAssetList(c, domain.Headline))
	fmt.Println()
	fmt.Print(ui.RenderAssetList(c, domain.Description))

	if violations := domain.CheckLengths(c); len(violations) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d assets over their character limit", len(violations))))
	}
	if dest.FinalURL == "" {
		fmt.Println(ui.FormatWarning("No final URL set (rsa url " + draft.Slug + " <url>)"))
	}

	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:     "edit [draft]",
	Short:   "Edit a draft file in your editor",
	Aliases: []string{"e"},
	Long: `Open a draft's YAML file in your editor.
If no draft is named, shows an interactive list to select from.

Examples:
  rsa edit
  rsa edit summer-sale`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	draft, err := resolveDraft(args)
	if err != nil {
		return err
	}

	path := appWorkspace.DraftPath(draft.Filename)
	fmt.Println(ui.FormatInfo("Opening in editor: " + GetPreferredEditor()))
	if err := openInEditor(path); err != nil {
		fmt.Println(ui.FormatWarning("Failed to open editor: " + err.Error()))
		fmt.Println(ui.FormatInfo("You can manually edit: " + path))
		return nil
	}

	// Report the saved state so over-limit assets show up right away
	updated, err := draftRepo.Get(getContext(), draft.Slug)
	if err != nil {
		fmt.Println(ui.FormatWarning("Draft no longer parses: " + err.Error()))
		return nil
	}
	if violations := domain.CheckLengths(updated.Collection()); len(violations) > 0 {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d assets over their character limit", len(violations))))
		for _, v := range violations {
			fmt.Println(ui.FormatMuted("  • " + v.String()))
		}
		return nil
	}
	fmt.Println(ui.FormatSuccess("Draft saved: " + updated.Name))
	return nil
}

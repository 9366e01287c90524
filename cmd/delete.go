package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete [draft]",
	Short: "Delete an ad draft",
	Long: `Delete an ad draft. Records already added to the batch are kept.

Examples:
  rsa delete summer-sale
  rsa delete -f summer`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	draft, err := resolveDraft(args)
	if err != nil {
		return err
	}

	if !deleteForce {
		reader := bufio.NewReader(os.Stdin)
		fmt.Printf(ui.StyleError.Render("Delete draft '%s'? (y/n): "), draft.Name)
		response, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(response)) != "y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := draftRepo.Delete(getContext(), draft.Slug); err != nil {
		fmt.Println(ui.FormatError("Failed to delete draft"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Deleted draft: " + draft.Name))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var (
	urlPath1 string
	urlPath2 string
)

var urlCmd = &cobra.Command{
	Use:   "url <draft> <final-url>",
	Short: "Set a draft's final URL and display path",
	Long: `Set the landing page a draft links to, and optionally the two display
path segments shown after the domain.

Examples:
  rsa url summer-sale example.com/shoes
  rsa url summer-sale https://example.com/shoes --path1 shoes --path2 sale`,
	Args: cobra.ExactArgs(2),
	RunE: runURL,
}

func init() {
	urlCmd.Flags().StringVar(&urlPath1, "path1", "", "First display path segment")
	urlCmd.Flags().StringVar(&urlPath2, "path2", "", "Second display path segment")
}

func runURL(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	current, err := draftRepo.Get(ctx, args[0])
	if err != nil {
		return err
	}

	dest := domain.DestinationSpec{FinalURL: args[1], Path1: current.Destination.Path1, Path2: current.Destination.Path2}
	if cmd.Flags().Changed("path1") {
		dest.Path1 = urlPath1
	}
	if cmd.Flags().Changed("path2") {
		dest.Path2 = urlPath2
	}

	draft, err := draftService.SetDestination(ctx, args[0], dest)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to update destination"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Destination updated"))
	fmt.Println(ui.RenderKeyValue("Final URL", draft.Destination.FinalURL))
	fmt.Println(ui.RenderKeyValue("Display URL", draft.Destination.Domain()+draft.Destination.DisplayPath()))
	if draft.Destination.Domain() == domain.PlaceholderDomain {
		fmt.Println(ui.FormatWarning("The URL has no usable host, previews show " + domain.PlaceholderDomain))
	}
	return nil
}

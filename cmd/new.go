package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/services"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var (
	newFinalURL     string
	newPath1        string
	newPath2        string
	newHeadlines    []string
	newDescriptions []string
	newOpenEditor   bool
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new ad draft",
	Long: `Create a new responsive search ad draft.

Without asset flags the draft starts with three blank headline slots and
two blank description slots. Repeat --headline and --description to fill them.

Examples:
  rsa new "Summer Sale"
  rsa new "Summer Sale" --url example.com/shoes --path1 shoes --path2 sale
  rsa new "Boots" -H "Winter Boots" -H "Free Shipping" -D "Warm boots for every trail."`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newFinalURL, "url", "u", "", "Final URL the ad links to")
	newCmd.Flags().StringVar(&newPath1, "path1", "", "First display path segment")
	newCmd.Flags().StringVar(&newPath2, "path2", "", "Second display path segment")
	newCmd.Flags().StringArrayVarP(&newHeadlines, "headline", "H", nil, "Headline text (repeatable)")
	newCmd.Flags().StringArrayVarP(&newDescriptions, "description", "D", nil, "Description text (repeatable)")
	newCmd.Flags().BoolVarP(&newOpenEditor, "edit", "e", false, "Open the draft in your editor after creating it")
}

func runNew(cmd *cobra.Command, args []string) error {
	req := services.CreateDraftRequest{
		Name: args[0],
		Destination: domain.DestinationSpec{
			FinalURL: newFinalURL,
			Path1:    newPath1,
			Path2:    newPath2,
		},
		Headlines:    newHeadlines,
		Descriptions: newDescriptions,
	}

	ctx := getContext()
	draft, err := draftService.Create(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to create draft"))
		return err
	}

	c := draft.Collection()
	fmt.Println(ui.FormatSuccess("Draft created successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Name", draft.Name))
	fmt.Println(ui.RenderKeyValue("Slug", draft.Slug))
	fmt.Println(ui.RenderKeyValue("File", appWorkspace.DraftPath(draft.Filename)))
	fmt.Println(ui.RenderKeyValue("Domain", draft.Destination.Domain()))
	fmt.Println(ui.RenderKeyValue("Headlines", c.Counter(domain.Headline)))
	fmt.Println(ui.RenderKeyValue("Descriptions", c.Counter(domain.Description)))
	fmt.Println()

	if len(newHeadlines) > domain.MaxHeadlines || len(newDescriptions) > domain.MaxDescriptions {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Only the first %d headlines and %d descriptions were kept",
			domain.MaxHeadlines, domain.MaxDescriptions)))
	}

	if newOpenEditor {
		fmt.Println(ui.FormatInfo("Opening in editor: " + GetPreferredEditor()))
		if err := openInEditor(appWorkspace.DraftPath(draft.Filename)); err != nil {
			fmt.Println(ui.FormatWarning("Failed to open editor: " + err.Error()))
		}
		return nil
	}

	fmt.Println(ui.FormatMuted("Preview it with: rsa preview " + draft.Slug))
	return nil
}

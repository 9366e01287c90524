package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/services"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var (
	listSortBy  string
	listReverse bool
	listQuery   string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all ad drafts",
	Aliases: []string{"ls"},
	Long: `List all ad drafts in a table format.

Examples:
  rsa list
  rsa list --sort name --reverse
  rsa list --search shoes`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSortBy, "sort", "slug", "Sort by field (slug, name)")
	listCmd.Flags().BoolVar(&listReverse, "reverse", false, "Reverse sort order")
	listCmd.Flags().StringVarP(&listQuery, "search", "s", "", "Fuzzy filter by name, slug or domain")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var (
		resp *services.ListResponse
		err  error
	)
	if listQuery != "" {
		resp, err = draftService.Search(ctx, services.SearchRequest{Query: listQuery})
	} else {
		resp, err = draftService.List(ctx, services.ListRequest{SortBy: listSortBy, Reverse: listReverse})
	}
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list drafts"))
		return err
	}

	if resp.Total == 0 {
		if listQuery != "" {
			fmt.Println(ui.FormatWarning("No drafts match: " + listQuery))
		} else {
			fmt.Println(ui.FormatWarning("No drafts found"))
			fmt.Println(ui.FormatInfo("Create your first draft with: rsa new \"My Ad\""))
		}
		return nil
	}

	fmt.Println(ui.FormatTitle("Drafts"))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 30, Align: ui.AlignLeft},
		{Header: "Slug", Width: 20, Align: ui.AlignLeft},
		{Header: "Domain", Width: 24, Align: ui.AlignLeft},
		{Header: "Headlines", Width: 9, Align: ui.AlignRight},
		{Header: "Descriptions", Width: 12, Align: ui.AlignRight},
	})

	for _, d := range resp.Drafts {
		c := d.Collection()
		table.AddRow([]string{
			truncate(d.Name, 30),
			d.Slug,
			truncate(d.Destination.Domain(), 24),
			c.Counter(domain.Headline),
			c.Counter(domain.Description),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d drafts", resp.Total)))

	return nil
}

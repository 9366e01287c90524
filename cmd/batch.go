package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Show the ads waiting to be exported",
	Long: `List the ads accepted into the export batch, in the order they were added.

Use 'rsa batch reset' to start a new batch.`,
	RunE: runBatch,
}

var batchResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard every ad in the export batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := batchService.Reset(getContext()); err != nil {
			fmt.Println(ui.FormatError("Failed to reset batch"))
			return err
		}
		fmt.Println(ui.FormatBatch("Batch cleared"))
		return nil
	},
}

func init() {
	batchCmd.AddCommand(batchResetCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	batch, err := batchService.Load(getContext())
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load batch"))
		return err
	}

	if batch.Len() == 0 {
		fmt.Println(ui.FormatWarning("The batch is empty"))
		fmt.Println(ui.FormatInfo("Add a draft with: rsa add <draft>"))
		return nil
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("Batch (%d ads)", batch.Len())))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "#", Width: 3, Align: ui.AlignRight},
		{Header: "Final URL", Width: 30, Align: ui.AlignLeft},
		{Header: "Path", Width: 20, Align: ui.AlignLeft},
		{Header: "Headline 1", Width: 30, Align: ui.AlignLeft},
		{Header: "Assets", Width: 6, Align: ui.AlignRight},
	})

	for i, r := range batch.Records() {
		table.AddRow([]string{
			fmt.Sprint(i + 1),
			truncate(r.FinalURL, 30),
			strings.TrimPrefix(domain.DestinationSpec{Path1: r.Path1, Path2: r.Path2}.DisplayPath(), domain.PathSeparator),
			truncate(r.Headlines[0], 30),
			fmt.Sprintf("%d/%d", countFilled(r.Headlines[:]), countFilled(r.Descriptions[:])),
		})
	}

	fmt.Print(table.Render())
	return nil
}

func countFilled(values []string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

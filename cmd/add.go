package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/core/services"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var addCmd = &cobra.Command{
	Use:   "add [draft]",
	Short: "Validate a draft and add it to the export batch",
	Long: `Validate a draft and add a snapshot of it to the export batch.

A draft is refused when any headline is over 30 characters, any
description is over 90 characters, or the final URL is empty. Later
edits to the draft do not change records already in the batch.

Examples:
  rsa add summer-sale
  rsa add`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	draft, err := resolveDraft(args)
	if err != nil {
		return err
	}

	resp, err := batchService.Add(getContext(), services.AddRequest{Slug: draft.Slug})
	if err != nil {
		printAddError(err)
		return fmt.Errorf("%s was not added", draft.Slug)
	}

	fmt.Println(ui.FormatBatch(fmt.Sprintf("Added to batch: %s (ads in batch: %d)", draft.Name, resp.Total)))
	fmt.Println(ui.FormatMuted("Export with: rsa export"))
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var (
	reportBatch  bool
	reportOutput string
	reportOpen   bool
)

var reportCmd = &cobra.Command{
	Use:   "report [draft]",
	Short: "Chart character usage as an HTML report",
	Long: `Write an HTML bar chart of character usage against the limits.

For a draft, every headline and description slot is charted. With --batch,
the number of filled headlines and descriptions of each ad in the export
batch is charted instead.

Examples:
  rsa report summer-sale --open
  rsa report --batch -o batch.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVarP(&reportBatch, "batch", "b", false, "Chart the export batch instead of a draft")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output HTML file")
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "Open the report in the browser")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var (
		name   string
		render func(f *os.File) error
	)
	if reportBatch {
		batch, err := batchService.Load(ctx)
		if err != nil {
			return err
		}
		name = "batch-report.html"
		render = func(f *os.File) error { return reportService.RenderBatch(f, batch) }
	} else {
		draft, err := resolveDraft(args)
		if err != nil {
			return err
		}
		name = draft.Slug + "-report.html"
		render = func(f *os.File) error { return reportService.RenderDraft(f, draft) }
	}

	path := reportOutput
	if path == "" {
		path = filepath.Join(exportDir(), name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		fmt.Println(ui.FormatError("Failed to render report"))
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Report written"))
	fmt.Println(ui.RenderKeyValue("File", path))

	if reportOpen {
		if err := OpenFile(path); err != nil {
			fmt.Println(ui.FormatWarning(err.Error()))
		}
	}
	return nil
}

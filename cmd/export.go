package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/rsa-cli/internal/adapters/sink"
	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports"
	"github.com/kamal-hamza/rsa-cli/internal/core/services"
	"github.com/kamal-hamza/rsa-cli/pkg/ui"
)

var (
	exportOutputDir string
	exportStdout    bool
	exportClipboard bool
	exportReset     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the batch as a bulk-upload CSV",
	Long: `Serialize every ad in the batch into one CSV file with the columns
FinalURL, Path1, Path2, Headline1..Headline15, Description1..Description4.
Every field is quoted.

Examples:
  rsa export
  rsa export -o ~/Downloads
  rsa export --stdout > ads.csv
  rsa export --clipboard --reset`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputDir, "output", "o", "", "Directory to write the CSV to")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write the CSV to stdout instead of a file")
	exportCmd.Flags().BoolVarP(&exportClipboard, "clipboard", "c", false, "Also copy the CSV to the clipboard")
	exportCmd.Flags().BoolVar(&exportReset, "reset", false, "Clear the batch after a successful export")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	batch, err := batchService.Load(ctx)
	if err != nil {
		return err
	}

	var fileSink *sink.FileSink
	var sinks []ports.Sink
	if exportStdout {
		sinks = append(sinks, sink.WriterSink{W: os.Stdout})
	} else {
		dir := exportOutputDir
		if dir == "" {
			dir = exportDir()
		}
		fileSink = sink.NewFileSink(dir)
		sinks = append(sinks, fileSink)
	}
	if exportClipboard || appConfig.CopyToClipboard {
		cb := sink.NewClipboardSink()
		if cb.Available() {
			sinks = append(sinks, cb)
		} else if !exportStdout {
			fmt.Println(ui.FormatWarning("Clipboard not available, skipping copy"))
		}
	}

	download := services.NewDownloadService(appConfig.ExportFilename, sinks...)
	resp, err := download.Deliver(ctx, batch)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyBatch) {
			fmt.Println(ui.FormatWarning("Nothing to export: the batch is empty"))
			fmt.Println(ui.FormatInfo("Add a draft with: rsa add <draft>"))
			return nil
		}
		fmt.Fprintln(os.Stderr, ui.FormatError("Export failed"))
		return err
	}

	if !exportStdout {
		fmt.Println(ui.FormatExport(fmt.Sprintf("Exported %d ads", resp.Records)))
		fmt.Println(ui.RenderKeyValue("File", fileSink.Written))
		fmt.Println(ui.RenderKeyValue("Type", resp.Payload.MIMEType))
	}

	if exportReset {
		if err := batchService.Reset(ctx); err != nil {
			return err
		}
		if !exportStdout {
			fmt.Println(ui.FormatMuted("Batch cleared"))
		}
	}
	return nil
}

package services

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
)

// ReportService renders HTML charts about drafts and batches
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// CharUsage is the character count of one asset slot against its limit
type CharUsage struct {
	Label string
	Count int
	Limit int
}

// Usage lists every asset of a collection with its character count
func (s *ReportService) Usage(c *domain.AssetCollection) []CharUsage {
	var out []CharUsage
	for _, kind := range []domain.AssetKind{domain.Headline, domain.Description} {
		n := c.Len(kind)
		for i := 0; i < n; i++ {
			out = append(out, CharUsage{
				Label: fmt.Sprintf("%s %d", kind, i+1),
				Count: domain.CharCount(c.Get(kind, i)),
				Limit: kind.CharLimit(),
			})
		}
	}
	return out
}

// RenderDraft writes a bar chart of character usage against limits for a draft
func (s *ReportService) RenderDraft(w io.Writer, draft *domain.Draft) error {
	usage := s.Usage(draft.Collection())

	labels := make([]string, len(usage))
	counts := make([]opts.BarData, len(usage))
	limits := make([]opts.BarData, len(usage))
	for i, u := range usage {
		labels[i] = u.Label
		counts[i] = opts.BarData{Value: u.Count}
		limits[i] = opts.BarData{Value: u.Limit}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "rsa report: " + draft.Name}),
		charts.WithTitleOpts(opts.Title{
			Title:    draft.Name,
			Subtitle: "Characters used per asset, " + draft.Destination.Domain(),
		}),
	)
	bar.SetXAxis(labels).
		AddSeries("Characters", counts).
		AddSeries("Limit", limits)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// RenderBatch writes a stacked bar chart of filled headline and description
// slots for every record in the batch
func (s *ReportService) RenderBatch(w io.Writer, batch *ExportBatch) error {
	records := batch.Records()
	if len(records) == 0 {
		return domain.ErrEmptyBatch
	}

	labels := make([]string, len(records))
	headlines := make([]opts.BarData, len(records))
	descriptions := make([]opts.BarData, len(records))
	for i, r := range records {
		labels[i] = fmt.Sprintf("#%d %s", i+1, r.FinalURL)
		headlines[i] = opts.BarData{Value: filled(r.Headlines[:])}
		descriptions[i] = opts.BarData{Value: filled(r.Descriptions[:])}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "rsa batch report"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Export batch",
			Subtitle: fmt.Sprintf("%d records", len(records)),
		}),
	)
	bar.SetXAxis(labels).
		AddSeries("Headlines", headlines, charts.WithBarChartOpts(opts.BarChart{Stack: "assets"})).
		AddSeries("Descriptions", descriptions, charts.WithBarChartOpts(opts.BarChart{Stack: "assets"}))

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func filled(values []string) int {
	return len(nonBlank(values))
}

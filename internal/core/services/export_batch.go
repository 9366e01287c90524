package services

import (
	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
)

// ExportBatch accumulates validated ad snapshots in the order they were added.
// Records cannot be changed once appended; only Reset clears them.
type ExportBatch struct {
	records []domain.ExportRecord
}

// NewExportBatch creates a batch, optionally seeded with previously accepted records
func NewExportBatch(records ...domain.ExportRecord) *ExportBatch {
	return &ExportBatch{records: append([]domain.ExportRecord(nil), records...)}
}

// Validate checks an ad without appending it. Character limits are checked
// first; the final URL is only checked once every asset fits.
func Validate(c *domain.AssetCollection, d domain.DestinationSpec) error {
	if violations := domain.CheckLengths(c); len(violations) > 0 {
		return &domain.ValidationError{Kind: domain.ErrLengthExceeded, Violations: violations}
	}
	if d.FinalURL == "" {
		return &domain.ValidationError{Kind: domain.ErrMissingFinalURL}
	}
	return nil
}

// TryAppend validates the ad and, on success, appends and returns its record
func (b *ExportBatch) TryAppend(c *domain.AssetCollection, d domain.DestinationSpec) (domain.ExportRecord, error) {
	if err := Validate(c, d); err != nil {
		return domain.ExportRecord{}, err
	}
	record := domain.NewExportRecord(c, d)
	b.records = append(b.records, record)
	return record, nil
}

// Records returns a copy of the accumulated records
func (b *ExportBatch) Records() []domain.ExportRecord {
	return append([]domain.ExportRecord(nil), b.records...)
}

// Len returns the number of accumulated records
func (b *ExportBatch) Len() int {
	return len(b.records)
}

// Reset discards every record
func (b *ExportBatch) Reset() {
	b.records = nil
}

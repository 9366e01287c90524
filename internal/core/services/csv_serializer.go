package services

import (
	"strings"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
)

// Serialize renders the batch as CSV. Every field, header names included, is
// wrapped in double quotes with embedded quotes doubled. Rows are separated
// by "\n" and there is no trailing newline.
func Serialize(batch *ExportBatch) (string, error) {
	records := batch.Records()
	if len(records) == 0 {
		return "", domain.ErrEmptyBatch
	}

	var b strings.Builder
	writeRow(&b, domain.ExportColumns())
	for _, r := range records {
		b.WriteByte('\n')
		writeRow(&b, r.Values())
	}
	return b.String(), nil
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}

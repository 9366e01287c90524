package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ColumnFinalURL = "FinalURL"
	ColumnPath1    = "Path1"
	ColumnPath2    = "Path2"
)

var exportColumns = buildColumns()

func buildColumns() []string {
	cols := []string{ColumnFinalURL, ColumnPath1, ColumnPath2}
	for i := 1; i <= MaxHeadlines; i++ {
		cols = append(cols, fmt.Sprintf("Headline%d", i))
	}
	for i := 1; i <= MaxDescriptions; i++ {
		cols = append(cols, fmt.Sprintf("Description%d", i))
	}
	return cols
}

// ExportColumns returns the fixed column order of every export record:
// FinalURL, Path1, Path2, Headline1..15, Description1..4
func ExportColumns() []string {
	return append([]string(nil), exportColumns...)
}

// ExportRecord is a fixed-width snapshot of one validated ad. Slots the ad did
// not fill are empty strings so every record has the same schema.
type ExportRecord struct {
	FinalURL     string                  `yaml:"final_url"`
	Path1        string                  `yaml:"path1"`
	Path2        string                  `yaml:"path2"`
	Headlines    [MaxHeadlines]string    `yaml:"headlines,flow"`
	Descriptions [MaxDescriptions]string `yaml:"descriptions,flow"`
}

// NewExportRecord copies the destination and assets into a record,
// index by index, leaving absent slots empty.
func NewExportRecord(c *AssetCollection, d DestinationSpec) ExportRecord {
	r := ExportRecord{
		FinalURL: d.FinalURL,
		Path1:    d.Path1,
		Path2:    d.Path2,
	}
	copy(r.Headlines[:], c.headlines)
	copy(r.Descriptions[:], c.descriptions)
	return r
}

// Field returns the value stored under a column name
func (r ExportRecord) Field(column string) (string, bool) {
	switch column {
	case ColumnFinalURL:
		return r.FinalURL, true
	case ColumnPath1:
		return r.Path1, true
	case ColumnPath2:
		return r.Path2, true
	}

	if n, ok := slotNumber(column, "Headline", MaxHeadlines); ok {
		return r.Headlines[n-1], true
	}
	if n, ok := slotNumber(column, "Description", MaxDescriptions); ok {
		return r.Descriptions[n-1], true
	}
	return "", false
}

// slotNumber parses "Headline7" style column names into 7
func slotNumber(column, prefix string, limit int) (int, bool) {
	rest, ok := strings.CutPrefix(column, prefix)
	if !ok || rest == "" || rest[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > limit {
		return 0, false
	}
	return n, true
}

// Values returns the record's fields in ExportColumns order
func (r ExportRecord) Values() []string {
	vals := make([]string, 0, len(exportColumns))
	vals = append(vals, r.FinalURL, r.Path1, r.Path2)
	vals = append(vals, r.Headlines[:]...)
	vals = append(vals, r.Descriptions[:]...)
	return vals
}

// Map returns the record as a column -> value mapping
func (r ExportRecord) Map() map[string]string {
	m := make(map[string]string, len(exportColumns))
	for i, v := range r.Values() {
		m[exportColumns[i]] = v
	}
	return m
}

const (
	// ExportFilename is the default name of the downloaded batch file
	ExportFilename = "rsa_ads_export.csv"
	// ExportMIMEType is the content type of the batch file
	ExportMIMEType = "text/csv;charset=utf-8"
)

// Payload is the exact content handed to a download collaborator
type Payload struct {
	Filename string
	MIMEType string
	Content  []byte
}

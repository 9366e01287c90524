package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment positions a cell within its column
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// TableColumn describes one column. Width is a minimum; columns grow to fit content.
type TableColumn struct {
	Header string
	Width  int
	Align  Alignment
}

// Table is a plain-text table of drafts or batch records
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable creates an empty table with the given columns
func NewTable(columns []TableColumn) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row. Missing cells render blank and extra cells are dropped.
func (t *Table) AddRow(cells []string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// widths measures display columns, so "›" and accented headlines line up
func (t *Table) widths() []int {
	w := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		w[i] = max(col.Width, lipgloss.Width(col.Header))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			w[i] = max(w[i], lipgloss.Width(cell))
		}
	}
	return w
}

// Render lays the table out with a header rule and alternating row shading
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}
	widths := t.widths()

	var b strings.Builder
	cells := make([]string, len(t.Columns))

	for i, col := range t.Columns {
		cells[i] = pad(col.Header, widths[i], AlignLeft)
	}
	b.WriteString(StyleTableHeader.Render(strings.Join(cells, "  ")))
	b.WriteString("\n")

	for i := range t.Columns {
		cells[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(StyleTableBorder.Render(strings.Join(cells, "  ")))
	b.WriteString("\n")

	for idx, row := range t.Rows {
		for i, cell := range row {
			cells[i] = pad(cell, widths[i], t.Columns[i].Align)
		}
		style := StyleTableRow
		if idx%2 == 1 {
			style = StyleTableRowAlt
		}
		b.WriteString(style.Render(strings.Join(cells, "  ")))
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int, align Alignment) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		return strings.Repeat(" ", gap/2) + s + strings.Repeat(" ", gap-gap/2)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", StyleAccent.Render(key), value)
}

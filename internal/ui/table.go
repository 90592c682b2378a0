package ui

import (
	"strings"
)

// Table provides minimal table rendering: spacing-aligned columns with
// an optional header row, no borders.
type Table struct {
	header     []string
	rows       [][]string
	colWidths  []int
	colPadding int
}

// NewTable creates a new table with the specified number of columns.
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colPadding: 2,
	}
}

// SetHeader sets the header row, rendered in the header style.
func (t *Table) SetHeader(cells ...string) {
	t.header = t.fit(cells)
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, t.fit(cells))
}

// SetPadding sets the padding between columns.
func (t *Table) SetPadding(padding int) {
	t.colPadding = padding
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) fit(cells []string) []string {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if len(cells[i]) > t.colWidths[i] {
			t.colWidths[i] = len(cells[i])
		}
	}
	return row
}

// String renders the table.
func (t *Table) String() string {
	if len(t.rows) == 0 && t.header == nil {
		return ""
	}

	var sb strings.Builder
	if t.header != nil {
		sb.WriteString(Header.Render(t.renderRow(t.header)))
		sb.WriteString("\n")
	}
	for _, row := range t.rows {
		sb.WriteString(t.renderRow(row))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Table) renderRow(row []string) string {
	var sb strings.Builder
	padding := strings.Repeat(" ", t.colPadding)
	for i, cell := range row {
		if i > 0 {
			sb.WriteString(padding)
		}
		// Left-align, pad to column width except for the last column.
		sb.WriteString(cell)
		if i < len(row)-1 {
			sb.WriteString(strings.Repeat(" ", t.colWidths[i]-len(cell)))
		}
	}
	return sb.String()
}

package cli

import (
	"strings"
)

// Table is a simple column formatter. Columns are sized to the widest
// cell, with an optional minimum width so rows line up under separately
// printed content of a known width.
type Table struct {
	rows     [][]string
	padding  int
	minWidth int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		rows:    make([][]string, 0),
		padding: 1,
	}
}

// SetMinColumnWidth sets a minimum width applied to every column.
func (t *Table) SetMinColumnWidth(w int) {
	t.minWidth = w
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row []string) {
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string. Short rows are
// padded with empty cells.
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	cols := 0
	for _, row := range t.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	colWidths := make([]int, cols)
	for i := range colWidths {
		colWidths[i] = t.minWidth
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var result strings.Builder
	for _, row := range t.rows {
		parts := make([]string, cols)
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			parts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, strings.Repeat(" ", t.padding)), " "))
		result.WriteString("\n")
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired
// width. Strings already at or beyond the width are returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

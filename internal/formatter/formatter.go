// Package formatter renders query results as aligned text tables for the
// terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/storage"
)

const maxCellWidth = 40

// Formatter renders result sets
type Formatter struct {
	// MaxRows caps how many rows are rendered; zero means all.
	MaxRows int
}

// NewFormatter creates a formatter with a sensible row cap for terminals
func NewFormatter() *Formatter {
	return &Formatter{MaxRows: 25}
}

// FormatResultSet renders the result set as an aligned table. An empty
// result renders as a single line instead of an empty table.
func (f *Formatter) FormatResultSet(rs *storage.ResultSet) string {
	if rs == nil || len(rs.Columns) == 0 {
		return "(no data)"
	}

	if rs.RowCount() == 0 {
		return "(no rows)"
	}

	rows := rs.Rows
	truncated := 0

	if f.MaxRows > 0 && len(rows) > f.MaxRows {
		truncated = len(rows) - f.MaxRows
		rows = rows[:f.MaxRows]
	}

	widths := make([]int, len(rs.Columns))
	for i, col := range rs.Columns {
		widths[i] = len(col)
	}

	cells := make([][]string, len(rows))

	for r, row := range rows {
		cells[r] = make([]string, len(rs.Columns))

		for c := range rs.Columns {
			var text string
			if c < len(row) {
				text = cellText(row[c])
			}

			cells[r][c] = text
			if len(text) > widths[c] {
				widths[c] = len(text)
			}
		}
	}

	var b strings.Builder

	writeRow(&b, rs.Columns, widths)
	writeSeparator(&b, widths)

	for _, row := range cells {
		writeRow(&b, row, widths)
	}

	if truncated > 0 {
		fmt.Fprintf(&b, "... and %d more rows\n", truncated)
	}

	return b.String()
}

func cellText(v any) string {
	if v == nil {
		return "NULL"
	}

	text := fmt.Sprintf("%v", v)
	text = strings.ReplaceAll(text, "\n", " ")

	if len(text) > maxCellWidth {
		text = text[:maxCellWidth-3] + "..."
	}

	return text
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}

		fmt.Fprintf(b, "%-*s", widths[i], cell)
	}

	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, widths []int) {
	for i, w := range widths {
		if i > 0 {
			b.WriteString("  ")
		}

		b.WriteString(strings.Repeat("-", w))
	}

	b.WriteString("\n")
}

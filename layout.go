package tv

import (
	"fmt"
	"strings"
)

// gutterWidth is the row-number gutter: a six-column right-aligned index
// plus two spaces, matching the alignment of the dimension and meta lines.
const gutterWidth = 8

// assemble is the sequential layout stage. Columns accumulate left to right,
// each charging its width plus one separator column against the terminal
// budget; everything past the first column that would overflow is dropped
// whole and reported in the meta line. Rows beyond the row budget were
// already cut before formatting and are reported the same way.
func assemble(cols []column, cfg Config, totalRows, display int) *RenderedTable {
	keep := len(cols)
	if !cfg.Extend && cfg.TerminalWidth > 0 {
		used := 0
		if !cfg.NoRowNumbering {
			used = gutterWidth
		}
		keep = 0
		for i, col := range cols {
			if used+col.layout.Width+1 > cfg.TerminalWidth {
				break
			}
			used += col.layout.Width + 1
			keep = i + 1
		}
		// A terminal narrower than the first column still shows it.
		if keep == 0 {
			keep = 1
		}
	}

	t := &RenderedTable{
		Title:      cfg.Title,
		Footer:     cfg.Footer,
		HiddenRows: totalRows - display,
		HiddenCols: len(cols) - keep,
	}
	if !cfg.NoRowNumbering {
		t.Gutter = strings.Repeat(" ", gutterWidth)
	}
	if !cfg.NoDimensions {
		t.Dim = fmt.Sprintf("tv dim: %d x %d", totalRows, len(cols))
	}

	t.Header = make([]string, keep)
	t.Columns = make([]ColumnLayout, keep)
	for i, col := range cols[:keep] {
		t.Header[i] = col.header
		t.Columns[i] = col.layout
	}
	if cfg.ShowTypes {
		t.Types = make([]string, keep)
		for i, col := range cols[:keep] {
			t.Types[i] = col.typeTag
		}
	}

	t.Gutters = make([]string, display)
	t.Cells = make([][]string, display)
	t.Classes = make([][]CellClass, display)
	for r := 0; r < display; r++ {
		if !cfg.NoRowNumbering {
			t.Gutters[r] = fmt.Sprintf("%*d  ", gutterWidth-2, r+1)
		}
		t.Cells[r] = make([]string, keep)
		t.Classes[r] = make([]CellClass, keep)
		for c, col := range cols[:keep] {
			t.Cells[r][c] = col.cells[r]
			t.Classes[r][c] = col.classes[r]
		}
	}

	t.Meta = metaLine(t.HiddenRows, t.HiddenCols, cols[keep:])
	t.Lines = assembleLines(t)
	return t
}

// metaLine builds the trailing summary of hidden rows and columns, naming
// the hidden columns the way the header would have.
func metaLine(hiddenRows, hiddenCols int, hidden []column) string {
	if hiddenRows == 0 && hiddenCols == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(ellipsis)
	if hiddenRows > 0 {
		fmt.Fprintf(&b, " with %d more %s", hiddenRows, plural(hiddenRows, "row"))
	}
	if hiddenCols > 0 {
		fmt.Fprintf(&b, " and %d more %s:", hiddenCols, plural(hiddenCols, "variable"))
		for i, col := range hidden {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(" ")
			b.WriteString(col.layout.Name)
		}
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func assembleLines(t *RenderedTable) []string {
	gutter := t.Gutter

	var lines []string
	if t.Title != "" {
		lines = append(lines, t.Title)
	}
	if t.Dim != "" {
		lines = append(lines, gutter+t.Dim)
	}
	lines = append(lines, gutter+strings.Join(t.Header, " "))
	if t.Types != nil {
		lines = append(lines, gutter+strings.Join(t.Types, " "))
	}
	for r, row := range t.Cells {
		lines = append(lines, t.Gutters[r]+strings.Join(row, " "))
	}
	if t.Meta != "" {
		lines = append(lines, gutter+t.Meta)
	}
	if t.Footer != "" {
		lines = append(lines, gutter+t.Footer)
	}
	return lines
}

package tv

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// displayWidth returns the width of s in terminal columns: wide characters
// count as 2, combining marks as 0.
func displayWidth(s string) int { return runewidth.StringWidth(s) }

// truncateDisplay cuts s to at most width terminal columns, never splitting
// a grapheme cluster. A cluster that would straddle the boundary is dropped
// whole.
func truncateDisplay(s string, width int) string {
	if displayWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		g := tokens.Value()
		w := runewidth.StringWidth(g)
		if used+w > width {
			break
		}
		b.WriteString(g)
		used += w
	}
	return b.String()
}

// fitCell truncates s with an ellipsis when it exceeds width, then pads it
// to exactly width. The second return reports whether truncation happened.
func fitCell(s string, width int, align Alignment) (string, bool) {
	truncated := false
	if displayWidth(s) > width {
		s = truncateDisplay(s, width-1) + ellipsis
		truncated = true
	}
	return alignPad(s, width, align), truncated
}

func alignPad(s string, width int, align Alignment) string {
	pad := width - displayWidth(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

// fracWidth returns the width of a plain decimal's fractional tail, counting
// the point itself; 0 when there is no fraction or the value is scientific.
func fracWidth(s string) int {
	if strings.ContainsAny(s, "eE") {
		return 0
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i
	}
	return 0
}

// column is one fully measured column: its layout plus the padded header and
// body cells, ready for the layout engine.
type column struct {
	layout  ColumnLayout
	header  string
	typeTag string
	cells   []string
	classes []CellClass
}

// measureColumn turns formatted cells into a measured column. Numeric
// columns first get their fractional tails padded to a common width so
// decimal points line up once right alignment is applied. The target width
// is the widest of header and cells, clamped to [LowerWidth, UpperWidth];
// anything wider is truncated with an ellipsis.
func measureColumn(name string, typ ColumnType, cells []string, classes []CellClass, cfg Config) column {
	align := AlignLeft
	if typ == Integer || typ == Double {
		align = AlignRight
	}

	if align == AlignRight {
		maxFrac := 0
		for _, c := range cells {
			if f := fracWidth(c); f > maxFrac {
				maxFrac = f
			}
		}
		if maxFrac > 0 {
			for i, c := range cells {
				if pad := maxFrac - fracWidth(c); pad > 0 {
					cells[i] = c + strings.Repeat(" ", pad)
				}
			}
		}
	}

	target := displayWidth(name)
	for _, c := range cells {
		if w := displayWidth(c); w > target {
			target = w
		}
	}
	target = min(max(target, cfg.LowerWidth), cfg.UpperWidth)

	anyTruncated := false
	header, truncated := fitCell(name, target, AlignLeft)
	anyTruncated = anyTruncated || truncated
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i], truncated = fitCell(c, target, align)
		anyTruncated = anyTruncated || truncated
	}
	typeTag, _ := fitCell(typ.String(), target, AlignLeft)

	return column{
		layout: ColumnLayout{
			Name:      name,
			Type:      typ,
			Width:     target,
			Align:     align,
			Truncated: anyTruncated,
		},
		header:  header,
		typeTag: typeTag,
		cells:   padded,
		classes: classes,
	}
}

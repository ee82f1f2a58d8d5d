// Package colorize paints a rendered table with a named color theme. Layout
// never changes here; every style wraps an already padded cell.
package colorize

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexhallam/tv"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Palette is one theme's color set. Meta covers the dimension, gutter, and
// summary furniture; the remaining colors follow cell semantics.
type Palette struct {
	Meta     lipgloss.Color
	Header   lipgloss.Color
	Standard lipgloss.Color
	NA       lipgloss.Color
	Negative lipgloss.Color
}

var palettes = map[string]Palette{
	"nord": {
		Meta:     lipgloss.Color("#8FBCBB"),
		Header:   lipgloss.Color("#5E81AC"),
		Standard: lipgloss.Color("#D8DEE9"),
		NA:       lipgloss.Color("#BF616A"),
		Negative: lipgloss.Color("#D08770"),
	},
	"one_dark": {
		Meta:     lipgloss.Color("#98C379"),
		Header:   lipgloss.Color("#61AFEF"),
		Standard: lipgloss.Color("#ABB2BF"),
		NA:       lipgloss.Color("#E06C75"),
		Negative: lipgloss.Color("#E5C07B"),
	},
	"gruvbox": {
		Meta:     lipgloss.Color("#B8BB26"),
		Header:   lipgloss.Color("#D79921"),
		Standard: lipgloss.Color("#EBDBB2"),
		NA:       lipgloss.Color("#CC241D"),
		Negative: lipgloss.Color("#FB4934"),
	},
	"dracula": {
		Meta:     lipgloss.Color("#6272A4"),
		Header:   lipgloss.Color("#50FA7B"),
		Standard: lipgloss.Color("#F8F8F2"),
		NA:       lipgloss.Color("#FF79C6"),
		Negative: lipgloss.Color("#BC3F3C"),
	},
	"solarized": {
		Meta:     lipgloss.Color("#6C71C1"),
		Header:   lipgloss.Color("#586E75"),
		Standard: lipgloss.Color("#839496"),
		NA:       lipgloss.Color("#DC322F"),
		Negative: lipgloss.Color("#2AA198"),
	},
}

// DefaultTheme is applied when no theme is configured.
const DefaultTheme = "nord"

// Lookup resolves a theme name to its palette.
func Lookup(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the available themes in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colorizer holds the compiled styles for one palette and renderer. The
// renderer decides the color profile, so output degrades on dumb terminals
// and stays plain in test buffers.
type Colorizer struct {
	meta     lipgloss.Style
	header   lipgloss.Style
	standard lipgloss.Style
	na       lipgloss.Style
	negative lipgloss.Style
}

// New compiles a palette against a renderer. A nil renderer means the
// process-wide default, which detects the color profile from stdout.
func New(p Palette, r *lipgloss.Renderer) *Colorizer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Colorizer{
		meta:     r.NewStyle().Foreground(p.Meta),
		header:   r.NewStyle().Foreground(p.Header).Bold(true),
		standard: r.NewStyle().Foreground(p.Standard),
		na:       r.NewStyle().Foreground(p.NA),
		negative: r.NewStyle().Foreground(p.Negative),
	}
}

// Render rebuilds the table's output lines with colors applied. The line
// structure mirrors the plain Lines field exactly.
func (c *Colorizer) Render(t *tv.RenderedTable) []string {
	var lines []string
	if t.Title != "" {
		lines = append(lines, c.meta.Render(t.Title))
	}
	if t.Dim != "" {
		lines = append(lines, t.Gutter+c.meta.Render(t.Dim))
	}
	lines = append(lines, t.Gutter+c.rowLine(t.Header, c.header))
	if t.Types != nil {
		lines = append(lines, t.Gutter+c.rowLine(t.Types, c.meta))
	}
	for r, row := range t.Cells {
		parts := make([]string, len(row))
		for i, cell := range row {
			switch t.Classes[r][i] {
			case tv.ClassNA:
				parts[i] = c.na.Render(cell)
			case tv.ClassNegative:
				parts[i] = c.negative.Render(cell)
			default:
				parts[i] = c.standard.Render(cell)
			}
		}
		lines = append(lines, c.meta.Render(t.Gutters[r])+strings.Join(parts, " "))
	}
	if t.Meta != "" {
		lines = append(lines, t.Gutter+c.meta.Render(t.Meta))
	}
	if t.Footer != "" {
		lines = append(lines, t.Gutter+c.meta.Render(t.Footer))
	}
	return lines
}

func (c *Colorizer) rowLine(cells []string, style lipgloss.Style) string {
	styled := make([]string, len(cells))
	for i, cell := range cells {
		styled[i] = style.Render(cell)
	}
	return strings.Join(styled, " ")
}

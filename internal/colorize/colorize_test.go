package colorize_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhallam/tv"
	"github.com/alexhallam/tv/internal/colorize"
)

func render(t *testing.T) *tv.RenderedTable {
	t.Helper()
	rows := [][]string{{"-1.5"}, {"NA"}, {"100"}}
	out, err := tv.Render(rows, []string{"x"}, tv.DefaultConfig())
	require.NoError(t, err)
	return out
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range colorize.Names() {
		p, err := colorize.Lookup(name)
		require.NoError(t, err)
		assert.NotEmpty(t, p.Header)
	}

	_, err := colorize.Lookup("neon")
	assert.ErrorIs(t, err, colorize.ErrUnknownTheme)
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"dracula", "gruvbox", "nord", "one_dark", "solarized"}, colorize.Names())
	assert.Contains(t, colorize.Names(), colorize.DefaultTheme)
}

func TestRenderMirrorsPlainStructure(t *testing.T) {
	t.Parallel()

	table := render(t)
	p, err := colorize.Lookup("nord")
	require.NoError(t, err)

	// An Ascii-profile renderer emits no escape codes, so colorized output
	// must reproduce the plain lines exactly.
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	got := colorize.New(p, r).Render(table)
	assert.Equal(t, table.Lines, got)
}

func TestRenderTrueColorStylesCells(t *testing.T) {
	t.Parallel()

	table := render(t)
	p, err := colorize.Lookup("gruvbox")
	require.NoError(t, err)

	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	got := colorize.New(p, r).Render(table)

	require.Len(t, got, len(table.Lines))
	// Gruvbox negatives are 251;73;52 and NA is 204;36;29.
	assert.Contains(t, got[2], "251;73;52")
	assert.Contains(t, got[3], "204;36;29")
	assert.Contains(t, got[1], "215;153;33") // header color
}

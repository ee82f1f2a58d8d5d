package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhallam/tv"
)

// runCommand executes a fresh root command against in-memory stdin and
// returns its stdout. The config flag always points into an empty temp dir
// so the developer's own dotfile never leaks into a test.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	hasConfig := false
	for _, a := range args {
		if a == "--config" || strings.HasPrefix(a, "--config=") {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append(args, "--config", filepath.Join(t.TempDir(), "config.yaml"))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunStdinCSV(t *testing.T) {
	out, err := runCommand(t, "a,b\n1,x\n2,y\n", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "        tv dim: 2 x 2", lines[0])
	assert.Contains(t, lines[1], "a ")
	assert.Contains(t, lines[2], "1")
	assert.Contains(t, lines[3], "y")
}

func TestRunFileArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("n\n1.2345\n"), 0o644))

	out, err := runCommand(t, "", path, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "1.23")
	assert.NotContains(t, out, "1.2345")
}

func TestRunTSVByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	require.NoError(t, os.WriteFile(path, []byte("x\ty\n1\t2\n"), 0o644))

	out, err := runCommand(t, "", path, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "tv dim: 1 x 2")
}

func TestRunDelimiterFlag(t *testing.T) {
	out, err := runCommand(t, "a;b\n1;2\n", "--no-color", "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, out, "tv dim: 1 x 2")
}

func TestRunBadDelimiter(t *testing.T) {
	_, err := runCommand(t, "a,b\n", "--delimiter", ";;")
	assert.Error(t, err)
}

func TestRunNumberLimitsRows(t *testing.T) {
	var rows strings.Builder
	rows.WriteString("n\n")
	for i := 0; i < 30; i++ {
		rows.WriteString("1\n")
	}
	out, err := runCommand(t, rows.String(), "--no-color", "--width", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "tv dim: 30 x 1")
	assert.Contains(t, out, "… with 5 more rows")
}

func TestRunNumberZeroShowsAll(t *testing.T) {
	out, err := runCommand(t, "n\n1\n2\n3\n", "--no-color", "--number", "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "more rows")
}

func TestRunWidthDropsColumns(t *testing.T) {
	out, err := runCommand(t, "aaaaaaaa,bbbbbbbb\nx,y\n", "--no-color", "--no-row-numbering", "--width", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "… and 1 more variable: bbbbbbbb")
}

func TestRunExtendKeepsColumns(t *testing.T) {
	out, err := runCommand(t, "aaaaaaaa,bbbbbbbb\nx,y\n", "--no-color", "--width", "10", "--extend-width-and-length")
	require.NoError(t, err)
	assert.NotContains(t, out, "more variable")
	assert.Contains(t, out, "bbbbbbbb")
}

func TestRunSigfigFlag(t *testing.T) {
	out, err := runCommand(t, "n\n1.2345\n", "--no-color", "--sigfig", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2345")
}

func TestRunSigfigInvalid(t *testing.T) {
	_, err := runCommand(t, "n\n1\n", "--sigfig", "9")
	assert.ErrorIs(t, err, tv.ErrInvalidConfig)
}

func TestRunTitleAndFooter(t *testing.T) {
	out, err := runCommand(t, "n\n1\n", "--no-color", "--title", "top", "--footer", "bottom")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "top", lines[0])
	assert.Contains(t, lines[len(lines)-1], "bottom")
}

func TestRunShowTypes(t *testing.T) {
	out, err := runCommand(t, "count,label\n12,ok\n", "--no-color", "--show-types")
	require.NoError(t, err)
	assert.Contains(t, out, "<int>")
	assert.Contains(t, out, "<chr>")
}

func TestRunNoFurnitureFlags(t *testing.T) {
	out, err := runCommand(t, "n\n1\n", "--no-color", "--no-dimensions", "--no-row-numbering")
	require.NoError(t, err)
	assert.NotContains(t, out, "tv dim")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{"n ", " 1"}, lines)
}

func TestRunUnknownTheme(t *testing.T) {
	_, err := runCommand(t, "n\n1\n", "--theme", "neon")
	assert.Error(t, err)
}

func TestRunForceColor(t *testing.T) {
	out, err := runCommand(t, "n\n1\n", "--force-color")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
}

func TestRunNoColorHasNoEscapes(t *testing.T) {
	out, err := runCommand(t, "n\n1\n", "--no-color")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestRunEmptyInput(t *testing.T) {
	_, err := runCommand(t, "")
	assert.Error(t, err)
}

func TestRunMissingFile(t *testing.T) {
	_, err := runCommand(t, "", filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestRunConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sigfig: 5\nno_dimensions: true\n"), 0o600))

	out, err := runCommand(t, "n\n1.2345\n", "--no-color", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1.2345")
	assert.NotContains(t, out, "tv dim")
}

func TestRunFlagBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sigfig: 5\n"), 0o600))

	out, err := runCommand(t, "n\n1.2345\n", "--no-color", "--config", cfgPath, "--sigfig", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2")
	assert.NotContains(t, out, "1.2345")
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	out, err := runCommand(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "tv version 1.2.3")
	assert.Contains(t, out, "abc123")
}

// Package cmd wires the renderer, reader, dotfile config, and color themes
// into the tv command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexhallam/tv"
	"github.com/alexhallam/tv/internal/colorize"
	"github.com/alexhallam/tv/internal/config"
	"github.com/alexhallam/tv/internal/reader"
)

var (
	// Version is set at build time.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from build flags.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// defaultMaxRows is how many data rows the command shows unless told
// otherwise. The library itself defaults to all rows.
const defaultMaxRows = 25

type options struct {
	sigfig             int
	lowerWidth         int
	upperWidth         int
	maxRows            int
	maxDecimalWidth    int
	width              int
	extend             bool
	preserveScientific bool
	noDimensions       bool
	noRowNumbering     bool
	showTypes          bool
	forceColor         bool
	noColor            bool
	theme              string
	delimiter          string
	title              string
	footer             string
	configFile         string
}

// NewRootCmd builds the tv command. A fresh command per call keeps flag
// state isolated between test runs.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "tv [file]",
		Short: "Pretty-print delimited data in the terminal",
		Long: `tv reads delimiter-separated values from a file or stdin and renders
them as a compact fixed-width table: column types are inferred, numbers
are trimmed to significant figures, and columns that do not fit the
terminal are summarized instead of wrapped.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("tv version %s (commit: %s, built: %s)\n", version, commit, date))

	f := cmd.Flags()
	f.IntVarP(&opts.sigfig, "sigfig", "g", 3, "Significant figures for numeric columns (1-7)")
	f.IntVarP(&opts.lowerWidth, "lower-column-width", "l", 2, "Minimum column width")
	f.IntVarP(&opts.upperWidth, "upper-column-width", "u", 20, "Maximum column width")
	f.IntVarP(&opts.maxRows, "number", "n", defaultMaxRows, "Number of rows to display (0 = all)")
	f.IntVar(&opts.maxDecimalWidth, "max-decimal-width", 13, "Decimal length before switching to scientific notation")
	f.IntVar(&opts.width, "width", 0, "Terminal width override (0 = unlimited; default: detected)")
	f.BoolVarP(&opts.extend, "extend-width-and-length", "e", false, "Show every column regardless of terminal width")
	f.BoolVar(&opts.preserveScientific, "preserve-scientific", false, "Keep scientific notation from the source data")
	f.BoolVarP(&opts.noDimensions, "no-dimensions", "D", false, "Hide the dimensions line")
	f.BoolVarP(&opts.noRowNumbering, "no-row-numbering", "R", false, "Hide the row-number gutter")
	f.BoolVar(&opts.showTypes, "show-types", false, "Show a column-type row under the header")
	f.BoolVarP(&opts.forceColor, "force-color", "a", false, "Emit color even when stdout is not a terminal")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable color output")
	f.StringVar(&opts.theme, "theme", colorize.DefaultTheme, "Color theme")
	f.StringVarP(&opts.delimiter, "delimiter", "s", "", "Field delimiter (default from file extension)")
	f.StringVarP(&opts.title, "title", "t", "", "Title printed above the table")
	f.StringVarP(&opts.footer, "footer", "f", "", "Footer printed below the table")
	f.StringVar(&opts.configFile, "config", "", "Config file path (default ~/.config/tv/config.yaml)")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tv:", err)
		return err
	}
	return nil
}

// run resolves settings in precedence order, reads the input, renders it,
// and writes the colorized lines. Precedence is flag over dotfile over
// built-in default.
func run(cmd *cobra.Command, args []string, opts *options) error {
	fileCfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}

	rc := tv.DefaultConfig()
	rc.MaxRows = defaultMaxRows
	fileCfg.Apply(&rc)
	applyFlags(cmd, opts, &rc)

	if !cmd.Flags().Changed("width") {
		rc.TerminalWidth = detectWidth()
	}

	delim, err := resolveDelimiter(cmd, opts, fileCfg)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 && args[0] != "-" {
		path = args[0]
	}
	header, rows, err := readInput(cmd, path, delim)
	if err != nil {
		return err
	}

	table, err := tv.Render(rows, header, rc)
	if err != nil {
		return err
	}

	theme := opts.theme
	if !cmd.Flags().Changed("theme") && fileCfg.Theme != nil {
		theme = *fileCfg.Theme
	}
	palette, err := colorize.Lookup(theme)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lines := table.Lines
	if !opts.noColor {
		r := lipgloss.NewRenderer(out)
		if opts.forceColor {
			r.SetColorProfile(termenv.TrueColor)
		}
		lines = colorize.New(palette, r).Render(table)
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.ReadConfig()
}

// applyFlags copies every flag the user actually set onto the renderer
// config, so dotfile values survive unset flags.
func applyFlags(cmd *cobra.Command, opts *options, rc *tv.Config) {
	f := cmd.Flags()
	if f.Changed("sigfig") {
		rc.Sigfig = opts.sigfig
	}
	if f.Changed("lower-column-width") {
		rc.LowerWidth = opts.lowerWidth
	}
	if f.Changed("upper-column-width") {
		rc.UpperWidth = opts.upperWidth
	}
	if f.Changed("number") {
		rc.MaxRows = opts.maxRows
	}
	if f.Changed("max-decimal-width") {
		rc.MaxDecimalWidth = opts.maxDecimalWidth
	}
	if f.Changed("width") {
		rc.TerminalWidth = opts.width
	}
	if f.Changed("extend-width-and-length") {
		rc.Extend = opts.extend
	}
	if f.Changed("preserve-scientific") {
		rc.PreserveScientific = opts.preserveScientific
	}
	if f.Changed("no-dimensions") {
		rc.NoDimensions = opts.noDimensions
	}
	if f.Changed("no-row-numbering") {
		rc.NoRowNumbering = opts.noRowNumbering
	}
	if f.Changed("show-types") {
		rc.ShowTypes = opts.showTypes
	}
	if f.Changed("title") {
		rc.Title = opts.title
	}
	if f.Changed("footer") {
		rc.Footer = opts.footer
	}
}

func resolveDelimiter(cmd *cobra.Command, opts *options, fileCfg *config.Config) (rune, error) {
	s := ""
	switch {
	case cmd.Flags().Changed("delimiter"):
		s = opts.delimiter
	case fileCfg.Delimiter != nil:
		s = *fileCfg.Delimiter
	default:
		return 0, nil
	}
	return reader.ParseDelimiter(s)
}

func readInput(cmd *cobra.Command, path string, delim rune) ([]string, [][]string, error) {
	if path != "" {
		return reader.ReadFile(path, delim)
	}
	if delim == 0 {
		delim = ','
	}
	return reader.Read(cmd.InOrStdin(), delim)
}

func detectWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

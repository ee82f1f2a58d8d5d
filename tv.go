package tv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyTable     = errors.New("empty table")
	ErrHeaderMismatch = errors.New("header mismatch")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Alignment controls cell text alignment within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// CellClass is the semantic class of a formatted cell. It is metadata for an
// external colorizer and never influences layout.
type CellClass int

const (
	ClassNormal CellClass = iota
	ClassNA
	ClassNegative
)

// ColumnType is the inferred display type of a whole column.
type ColumnType int

const (
	Character ColumnType = iota
	Integer
	Double
	Logical
)

// String returns the column's type-annotation tag.
func (t ColumnType) String() string {
	switch t {
	case Integer:
		return "<int>"
	case Double:
		return "<dbl>"
	case Logical:
		return "<lgl>"
	default:
		return "<chr>"
	}
}

// Config holds the immutable settings for one render call. Zero values fall
// back to the documented defaults, so Config{} and DefaultConfig() render
// identically.
type Config struct {
	// Sigfig is the number of significant figures for numeric columns.
	// Valid range is 1 through 7. Default 3.
	Sigfig int
	// LowerWidth is the minimum column width. Must be at least 2 so the
	// "NA" marker never needs an ellipsis. Default 2.
	LowerWidth int
	// UpperWidth is the maximum column width. Default 20.
	UpperWidth int
	// TerminalWidth is the display budget in terminal columns. Zero means
	// unconstrained: no columns are dropped.
	TerminalWidth int
	// Extend keeps every column regardless of TerminalWidth.
	Extend bool
	// MaxRows limits the number of data rows displayed. Zero means all.
	MaxRows int
	// PreserveScientific re-emits values whose source was already in
	// scientific notation in scientific form.
	PreserveScientific bool
	// MaxDecimalWidth is the plain-decimal length beyond which a value is
	// switched to scientific notation. Default 13.
	MaxDecimalWidth int
	// NoRowNumbering drops the row-number gutter.
	NoRowNumbering bool
	// NoDimensions drops the "tv dim: R x C" line.
	NoDimensions bool
	// ShowTypes adds a type-annotation row (<int> <dbl> ...) under the
	// header.
	ShowTypes bool
	// AllowRagged pads short rows with NA and truncates long rows instead
	// of rejecting them with ErrHeaderMismatch.
	AllowRagged bool
	// Title is printed above the table.
	Title string
	// Footer is printed below the table.
	Footer string
}

// DefaultConfig returns a Config with all defaults filled in.
func DefaultConfig() Config {
	return Config{
		Sigfig:          3,
		LowerWidth:      2,
		UpperWidth:      20,
		MaxDecimalWidth: 13,
	}
}

func (c Config) normalized() Config {
	if c.Sigfig == 0 {
		c.Sigfig = 3
	}
	if c.LowerWidth == 0 {
		c.LowerWidth = 2
	}
	if c.UpperWidth == 0 {
		c.UpperWidth = 20
	}
	if c.MaxDecimalWidth == 0 {
		c.MaxDecimalWidth = 13
	}
	return c
}

func (c Config) validate() error {
	if c.Sigfig < 1 || c.Sigfig > 7 {
		return fmt.Errorf("%w: sigfig %d outside [1,7]", ErrInvalidConfig, c.Sigfig)
	}
	if c.LowerWidth < 2 {
		return fmt.Errorf("%w: lower width %d is below the NA marker width", ErrInvalidConfig, c.LowerWidth)
	}
	if c.LowerWidth > c.UpperWidth {
		return fmt.Errorf("%w: lower width %d exceeds upper width %d", ErrInvalidConfig, c.LowerWidth, c.UpperWidth)
	}
	return nil
}

// ColumnLayout describes one displayed column after measuring.
type ColumnLayout struct {
	Name      string
	Type      ColumnType
	Width     int
	Align     Alignment
	Truncated bool
}

// RenderedTable is the result of one render call. Lines holds the assembled
// plain-text output. The remaining fields expose the same content in
// structured form, with enough metadata for an external colorizer to style
// every piece without re-deriving types or classes.
type RenderedTable struct {
	// Title and Dim are the optional leading lines, empty when absent.
	Title string
	Dim   string
	// Header holds the padded header cells of the displayed columns.
	// Types holds the padded type-annotation cells, nil unless requested.
	Header []string
	Types  []string
	// Gutter is the blank gutter prefix used on non-data lines, empty when
	// row numbering is off. Gutters holds the row-number gutter per
	// displayed data row; entries are empty strings when row numbering is
	// off.
	Gutter  string
	Gutters []string
	// Cells is the padded body grid, row-major, displayed rows by
	// displayed columns. Classes is its semantic-class mirror.
	Cells   [][]string
	Classes [][]CellClass
	// Columns describes the displayed columns in order.
	Columns []ColumnLayout
	// Meta is the trailing "… with N more rows ..." line, empty when
	// nothing was hidden. Footer is the caller-supplied trailing line.
	Meta   string
	Footer string
	// HiddenRows and HiddenCols count what the display budget dropped.
	HiddenRows int
	HiddenCols int
	// Lines is the fully assembled plain-text output.
	Lines []string
}

// Render formats rows under header into a fixed-width terminal table.
//
// The pipeline runs strictly bottom-up per column: NA normalization, whole
// column type inference, significant-figure formatting for numeric columns,
// width measuring with grapheme-safe truncation, and finally the sequential
// left-to-right layout against the terminal width budget. Columns are
// independent until the layout step; nothing here blocks or reads the
// environment.
func Render(rows [][]string, header []string, cfg Config) (*RenderedTable, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrEmptyTable)
	}
	rows, err := conformRows(rows, len(header), cfg.AllowRagged)
	if err != nil {
		return nil, err
	}

	totalRows := len(rows)
	display := totalRows
	if cfg.MaxRows > 0 && cfg.MaxRows < display {
		display = cfg.MaxRows
	}

	cols := make([]column, len(header))
	for c := range header {
		raw := make([]string, display)
		for r := 0; r < display; r++ {
			raw[r] = NormalizeNA(rows[r][c])
		}
		typ := InferType(raw)
		cells, classes := formatColumn(raw, typ, cfg)
		cols[c] = measureColumn(header[c], typ, cells, classes, cfg)
	}

	return assemble(cols, cfg, totalRows, display), nil
}

// conformRows checks every data row against the header width. With
// allowRagged set, short rows gain empty cells (which normalize to NA) and
// long rows lose their tail.
func conformRows(rows [][]string, want int, allowRagged bool) ([][]string, error) {
	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) == want {
			out[i] = row
			continue
		}
		if !allowRagged {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d", ErrHeaderMismatch, i+1, len(row), want)
		}
		fixed := make([]string, want)
		copy(fixed, row)
		out[i] = fixed
	}
	return out, nil
}

// formatColumn applies the per-cell formatting stage for one column whose
// type is already known. Numeric columns run through the significant-figure
// formatter; everything else passes through. Cells that cannot be rendered
// as a finite number degrade to NA.
func formatColumn(cells []string, typ ColumnType, cfg Config) ([]string, []CellClass) {
	out := make([]string, len(cells))
	classes := make([]CellClass, len(cells))
	for i, cell := range cells {
		if cell == NAMarker {
			out[i] = cell
			classes[i] = ClassNA
			continue
		}
		if typ != Integer && typ != Double {
			out[i] = cell
			continue
		}
		s := formatNumericCell(cell, cfg)
		out[i] = s
		switch {
		case s == NAMarker:
			classes[i] = ClassNA
		case strings.HasPrefix(s, "-"):
			classes[i] = ClassNegative
		}
	}
	return out, classes
}

func formatNumericCell(raw string, cfg Config) string {
	if cfg.PreserveScientific && isScientific(raw) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return NAMarker
		}
		return formatScientificValue(v, cfg.Sigfig)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return NAMarker
	}
	return FormatNumber(v, cfg.Sigfig, cfg.MaxDecimalWidth)
}

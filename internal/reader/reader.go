// Package reader loads delimiter-separated values from files or stdin into
// the header-plus-rows shape the renderer consumes.
package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyInput   = errors.New("empty input")
	ErrBadDelimiter = errors.New("bad delimiter")
)

// ParseDelimiter turns a user-supplied delimiter string into a rune. The
// escape sequence "\t" means tab; anything longer than one rune is rejected.
func ParseDelimiter(s string) (rune, error) {
	if s == "\\t" || s == "\t" {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrBadDelimiter, s)
	}
	return r, nil
}

// DelimiterForPath returns the default delimiter implied by the file
// extension: tab for .tsv, pipe for .psv, comma for everything else.
func DelimiterForPath(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return '\t'
	case ".psv":
		return '|'
	default:
		return ','
	}
}

// Read parses delimiter-separated values from r. The first record is the
// header; the rest are data rows. Rows may be ragged, the renderer decides
// how to treat them.
func Read(r io.Reader, delimiter rune) (header []string, rows [][]string, err error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyInput
	}
	return records[0], records[1:], nil
}

// ReadFile reads a delimited file; an empty path means stdin. When the
// delimiter is zero it is chosen from the file extension.
func ReadFile(path string, delimiter rune) (header []string, rows [][]string, err error) {
	if delimiter == 0 {
		delimiter = DelimiterForPath(path)
	}
	if path == "" {
		return Read(os.Stdin, delimiter)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Read(f, delimiter)
}

package tv

import "regexp"

// The numeric vocabularies are deliberately strict: leading '+', surrounding
// whitespace, and thousands separators all degrade a column to Character
// rather than silently reinterpreting formatted text.
var (
	integerRe     = regexp.MustCompile(`^-?[0-9]+$`)
	doubleRe      = regexp.MustCompile(`^-?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
	logicalWordRe = regexp.MustCompile(`^(?i:true|false|t|f)$`)
	negNumberRe   = regexp.MustCompile(`^-([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

func isInteger(s string) bool { return integerRe.MatchString(s) }

func isDouble(s string) bool { return doubleRe.MatchString(s) }

func isLogicalWord(s string) bool { return logicalWordRe.MatchString(s) }

func isLogicalToken(s string) bool {
	return s == "1" || s == "0" || isLogicalWord(s)
}

// IsNegativeNumber reports whether s renders a negative numeric value. It is
// exported for callers that style negative cells differently.
func IsNegativeNumber(s string) bool { return negNumberRe.MatchString(s) }

// InferType classifies a whole column from its cell strings. NA cells carry
// no evidence and are skipped; a single non-conforming cell degrades the
// column to Character, so the function is total and never fails.
//
// A column of bare "0"/"1" cells is deliberately Integer: Logical wins only
// when every non-NA cell is in the logical vocabulary and at least one of
// them is a word token (true/false/t/f in any case).
func InferType(cells []string) ColumnType {
	sawValue := false
	sawWord := false
	allInteger := true
	allNumeric := true
	allLogical := true
	for _, cell := range cells {
		if IsNA(cell) {
			continue
		}
		sawValue = true
		whole := isInteger(cell)
		if !whole {
			allInteger = false
			if !isDouble(cell) {
				allNumeric = false
			}
		}
		if isLogicalToken(cell) {
			if isLogicalWord(cell) {
				sawWord = true
			}
		} else {
			allLogical = false
		}
	}
	switch {
	case !sawValue:
		return Character
	case allInteger:
		return Integer
	case allNumeric:
		return Double
	case allLogical && sawWord:
		return Logical
	default:
		return Character
	}
}

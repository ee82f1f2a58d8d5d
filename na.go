package tv

import "strings"

// NAMarker is the canonical missing-value marker. It is exactly two
// characters wide, which is why LowerWidth may never drop below 2.
const NAMarker = "NA"

// naSpellings is the closed set of recognized missing-value tokens, matched
// case-insensitively after trimming surrounding whitespace. Extending this
// set is safe as long as every spelling still maps to the two-character
// marker.
var naSpellings = map[string]struct{}{
	"":        {},
	"na":      {},
	"n/a":     {},
	"nan":     {},
	"null":    {},
	"none":    {},
	"missing": {},
	".":       {},
}

// IsNA reports whether s spells a missing value.
func IsNA(s string) bool {
	_, ok := naSpellings[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// NormalizeNA maps any recognized missing-value spelling to NAMarker.
// Unrecognized strings pass through verbatim.
func NormalizeNA(s string) string {
	if IsNA(s) {
		return NAMarker
	}
	return s
}

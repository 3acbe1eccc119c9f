package linkedin

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

// normalizeText lowercases, replaces punctuation with spaces, and collapses
// whitespace so names compare across formatting differences.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, " ")
	return collapseSpaces(s)
}

// titleContainsName reports whether the normalized full name appears as a
// contiguous substring of the normalized title. This is a hard gate: results
// failing it are never candidates, whatever their other signal.
func titleContainsName(title, fullName string) bool {
	return strings.Contains(normalizeText(title), normalizeText(fullName))
}

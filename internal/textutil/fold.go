package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the Unicode case-folded form of s. Two strings are considered
// equal for catalog matching purposes when their folds are identical.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// CanonicalName trims surrounding whitespace and case-folds the remainder.
// Album name lookups compare canonical forms on both sides.
func CanonicalName(s string) string {
	return Fold(strings.TrimSpace(s))
}

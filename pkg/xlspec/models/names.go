package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName lowercases a column key or sheet name for matching.
// Surrounding whitespace is dropped.
func NormalizeName(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

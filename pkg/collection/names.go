package collection

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// foldName returns the lower-cased form used for name uniqueness, ordering
// and search. Lowering maps rune by rune, so "Éowyn" and "éowyn" are equal
// while "STRASSE" and "straße" stay distinct.
func foldName(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// SameName reports whether a and b are the same name, ignoring case.
func SameName(a, b string) bool {
	return foldName(a) == foldName(b)
}

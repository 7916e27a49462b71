// Package slug normalizes free text into filesystem-safe directory names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const separator = "-"

// Slugify lower-cases value and collapses every run of characters that are
// not letters or numbers into a single hyphen. The result never has leading,
// trailing or doubled hyphens, and may be empty.
func Slugify(value string) string {
	lowered := cases.Lower(language.Und).String(value)

	parts := strings.FieldsFunc(lowered, func(r rune) bool {
		return !isAlnum(r)
	})

	return strings.Join(parts, separator)
}

// Join builds the output directory name for a company and title pair.
func Join(company, title string) string {
	return Slugify(company) + separator + Slugify(title)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

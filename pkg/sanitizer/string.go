package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// RemoveExtraWhitespace collapses every whitespace run into a single space
// and trims the result.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters, keeping common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine converts a multi-line string to a single line by replacing
// line breaks with spaces and normalizing whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}

// CapitalizeWords upper-cases the first letter of every word and leaves the
// remaining letters alone, so "mcDonald" becomes "McDonald".
func CapitalizeWords(s string) string {
	// cases.Caser keeps state between calls and must not be shared.
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// PersonName is the pipeline used for human names: control characters are
// dropped, whitespace is collapsed onto one line and words are capitalized.
func PersonName(s string) string {
	return Apply(s, RemoveControlChars, SingleLine, CapitalizeWords)
}

// Code is the pipeline used for short identifiers such as sex codes:
// everything is put on one line, trimmed and upper-cased.
func Code(s string) string {
	return Apply(s, RemoveControlChars, SingleLine, ToUpper)
}

package model

import (
	"strings"
	"unicode"
)

// DefaultLabeler turns a field name into a display label for descriptors that
// omit one: "dateOfBirth" and "date_of_birth" both become "Date Of Birth".
func DefaultLabeler(name string) string {
	words := splitWords(name)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// splitWords breaks on separators (underscore, dash, whitespace) and on
// lower→upper and letter↔digit transitions.
func splitWords(name string) []string {
	var (
		words   []string
		current []rune
		prev    rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for _, r := range name {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			prev = 0
			continue
		}
		if len(current) > 0 && wordBoundary(prev, r) {
			flush()
		}
		current = append(current, r)
		prev = r
	}
	flush()
	return words
}

func wordBoundary(prev, r rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	}
	return false
}

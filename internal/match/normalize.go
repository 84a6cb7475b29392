package match

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Normalize lowercases text, replaces every rune that is not a letter,
// digit or whitespace with a single space, then collapses whitespace runs.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Words segments normalized text into word tokens using Unicode word
// boundaries (UAX #29). Segments without a letter or digit are dropped.
func Words(text string) []string {
	var words []string
	rest := Normalize(text)
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if hasAlnum(word) {
			words = append(words, word)
		}
	}
	return words
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

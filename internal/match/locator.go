package match

import (
	"regexp"
	"strings"
)

// SpanLocator maps a whitespace-collapsed quote window back to its
// verbatim substring in the raw page text, preserving the original
// casing, punctuation and line breaks.
type SpanLocator interface {
	Locate(window, raw string) (string, bool)
}

// RegexLocator relocates a window by matching its first word through its
// last word non-greedily, spanning newlines.
type RegexLocator struct{}

func (RegexLocator) Locate(window, raw string) (string, bool) {
	first, last, ok := boundaryWords(window)
	if !ok {
		return "", false
	}
	pattern, err := regexp.Compile(regexp.QuoteMeta(first) + "(?s:.*?)" + regexp.QuoteMeta(last))
	if err != nil {
		return "", false
	}
	loc := pattern.FindStringIndex(raw)
	if loc == nil {
		return "", false
	}
	return raw[loc[0]:loc[1]], true
}

// ScanLocator is an index-scan alternative to RegexLocator: it finds the
// first occurrence of the window's first word and the nearest following
// occurrence of its last word. Behaves like RegexLocator on well-formed
// input but avoids pattern compilation entirely.
type ScanLocator struct{}

func (ScanLocator) Locate(window, raw string) (string, bool) {
	first, last, ok := boundaryWords(window)
	if !ok {
		return "", false
	}
	start := strings.Index(raw, first)
	if start < 0 {
		return "", false
	}
	offset := strings.Index(raw[start+len(first):], last)
	if offset < 0 {
		// Single-word window where first == last.
		if first == last {
			return raw[start : start+len(first)], true
		}
		return "", false
	}
	end := start + len(first) + offset + len(last)
	return raw[start:end], true
}

func boundaryWords(window string) (first, last string, ok bool) {
	words := strings.Fields(window)
	if len(words) == 0 {
		return "", "", false
	}
	return words[0], words[len(words)-1], true
}

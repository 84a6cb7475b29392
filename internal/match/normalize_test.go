package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/citesmart/backend/internal/match"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation", "Hello, World!", "hello world"},
		{"whitespace runs", "  a\t b\nc ", "a b c"},
		{"hyphens", "state-of-the-art", "state of the art"},
		{"accents kept", "Café au lait", "café au lait"},
		{"digits kept", "Version 2.0 shipped", "version 2 0 shipped"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, match.Normalize(tc.in))
		})
	}
}

func TestWords(t *testing.T) {
	words := match.Words("The cat sat, didn't it?")
	assert.Equal(t, []string{"the", "cat", "sat", "didn", "t", "it"}, words)
}

func TestWordsEmpty(t *testing.T) {
	assert.Empty(t, match.Words("?!... --- ..."))
}

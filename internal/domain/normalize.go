package domain

import (
	"strings"
	"unicode"
)

// NormalizeTerm prepares a clicked token for lookup:
//   - drops every rune that is not a letter or an apostrophe
//     (combining marks attached to letters are kept)
//   - trims apostrophes from both ends
//
// Case is preserved. An empty result means there is nothing to look up.
func NormalizeTerm(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		switch {
		case unicode.IsLetter(r), isApostrophe(r):
			b.WriteRune(r)
		case unicode.IsMark(r) && b.Len() > 0:
			b.WriteRune(r)
		}
	}
	return strings.TrimFunc(b.String(), isApostrophe)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// CleanText trims leading/trailing whitespace and compresses inner
// whitespace runs into a single space. Case and punctuation are preserved.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

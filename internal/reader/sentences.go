// Package reader splits story text into sentences and clickable word tokens.
// All segmentation is lossless at the sentence level: concatenating the
// tokens of a sentence yields the sentence exactly.
package reader

import (
	"strings"
	"unicode"
)

// quotePairs maps an opening quote to its closing partner.
var quotePairs = map[rune]rune{
	'"': '"',
	'“': '”',
	'「': '」',
	'『': '』',
}

// SegmentIntoSentences splits text into trimmed sentences.
//
// A sentence ends at a run of terminators (. ! ? and their full-width forms).
// A quoted run is consumed whole, so terminators inside quotes do not split;
// a quote whose last character is a terminator ends the sentence at the
// closing quote, unless a lowercase dialogue tag follows it ("Hi!" she said.),
// in which case the sentence runs on to the next terminator. Text after the
// last terminator is dropped.
func SegmentIntoSentences(text string) []string {
	rs := []rune(text)
	sentences := make([]string, 0, 8)

	start := 0
	i := 0
	for i < len(rs) {
		r := rs[i]

		if closing, ok := quotePairs[r]; ok {
			end := indexRune(rs, i+1, closing)
			if end < 0 {
				// Unbalanced quote: treat it as an ordinary character.
				i++
				continue
			}
			i = end + 1
			if end > 0 && isTerminator(rs[end-1]) && !startsDialogueTag(rs, i) {
				i = skipTerminators(rs, i)
				sentences = appendSentence(sentences, rs[start:i])
				start = i
			}
			continue
		}

		if isTerminator(r) && !isDecimalPoint(rs, i) {
			i = skipTerminators(rs, i)
			if i < len(rs) && isClosingQuote(rs[i]) {
				i++
			}
			sentences = appendSentence(sentences, rs[start:i])
			start = i
			continue
		}

		i++
	}

	return sentences
}

func appendSentence(dst []string, rs []rune) []string {
	s := strings.TrimSpace(string(rs))
	if s == "" {
		return dst
	}
	return append(dst, s)
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}

func isClosingQuote(r rune) bool {
	switch r {
	case '"', '”', '」', '』':
		return true
	}
	return false
}

// isDecimalPoint reports whether rs[i] is a '.' between two digits, as in "3.5".
func isDecimalPoint(rs []rune, i int) bool {
	if rs[i] != '.' || i == 0 || i+1 >= len(rs) {
		return false
	}
	return unicode.IsDigit(rs[i-1]) && unicode.IsDigit(rs[i+1])
}

// startsDialogueTag reports whether the first non-space rune at or after i
// is a lowercase letter.
func startsDialogueTag(rs []rune, i int) bool {
	for i < len(rs) && unicode.IsSpace(rs[i]) {
		i++
	}
	return i < len(rs) && unicode.IsLower(rs[i])
}

func skipTerminators(rs []rune, i int) int {
	for i < len(rs) && isTerminator(rs[i]) {
		i++
	}
	return i
}

func indexRune(rs []rune, from int, target rune) int {
	for j := from; j < len(rs); j++ {
		if rs[j] == target {
			return j
		}
	}
	return -1
}

package reader

import (
	"strings"
	"unicode"
)

// Token is one unit of rendered text. Word tokens are clickable; everything
// else (spaces, punctuation) is passed through verbatim.
type Token struct {
	Text   string `json:"text"`
	IsWord bool   `json:"isWord"`
}

// SegmentIntoWords splits a sentence into maximal runs of letters/numbers
// (any script) and the non-word runs between them.
func SegmentIntoWords(sentence string) []Token {
	tokens := make([]Token, 0, 16)

	var b strings.Builder
	inWord := false
	for _, r := range sentence {
		w := isWordRune(r)
		if b.Len() > 0 && w != inWord {
			tokens = append(tokens, Token{Text: b.String(), IsWord: inWord})
			b.Reset()
		}
		inWord = w
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		tokens = append(tokens, Token{Text: b.String(), IsWord: inWord})
	}

	return tokens
}

// SegmentIntoCharacters makes every letter/number rune its own clickable
// token. Used for scripts where word-level segmentation is not meaningful.
// Non-word runs are kept together.
func SegmentIntoCharacters(sentence string) []Token {
	tokens := make([]Token, 0, len(sentence))

	var gap strings.Builder
	prev := -1
	for _, r := range sentence {
		if !isWordRune(r) {
			gap.WriteRune(r)
			prev = -1
			continue
		}
		if gap.Len() > 0 {
			tokens = append(tokens, Token{Text: gap.String()})
			gap.Reset()
		}
		// Combining marks stay on the character they modify.
		if unicode.IsMark(r) && prev >= 0 {
			tokens[prev].Text += string(r)
			continue
		}
		tokens = append(tokens, Token{Text: string(r), IsWord: true})
		prev = len(tokens) - 1
	}
	if gap.Len() > 0 {
		tokens = append(tokens, Token{Text: gap.String()})
	}

	return tokens
}

// Join concatenates token texts, reconstructing the segmented sentence.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Words returns only the clickable tokens' text.
func Words(tokens []Token) []string {
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.IsWord {
			words = append(words, t.Text)
		}
	}
	return words
}

// CountWords counts word tokens across all complete sentences of text.
func CountWords(text string) int {
	n := 0
	for _, s := range SegmentIntoSentences(text) {
		n += len(Words(SegmentIntoWords(s)))
	}
	return n
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func hasWordRune(s string) bool {
	return strings.IndexFunc(s, isWordRune) >= 0
}

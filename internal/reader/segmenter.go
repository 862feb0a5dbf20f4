package reader

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Segmenter splits text without word spacing (Japanese) using the kagome
// morphological analyzer. It is safe for concurrent use.
type Segmenter struct {
	t *tokenizer.Tokenizer
}

// NewSegmenter loads the IPA dictionary. Loading takes a noticeable amount
// of time and memory, so create one Segmenter per process.
func NewSegmenter() (*Segmenter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("reader: create kagome tokenizer: %w", err)
	}
	return &Segmenter{t: t}, nil
}

// Segment returns tokens whose concatenation equals sentence. Morphemes that
// contain a letter or number are clickable.
func (s *Segmenter) Segment(sentence string) []Token {
	tokens := make([]Token, 0, 16)

	cursor := 0
	for _, m := range s.t.Tokenize(sentence) {
		if m.Class == tokenizer.DUMMY || m.Surface == "" {
			continue
		}
		idx := strings.Index(sentence[cursor:], m.Surface)
		if idx < 0 {
			continue
		}
		if idx > 0 {
			tokens = append(tokens, SegmentIntoWords(sentence[cursor:cursor+idx])...)
		}
		tokens = append(tokens, Token{Text: m.Surface, IsWord: hasWordRune(m.Surface)})
		cursor += idx + len(m.Surface)
	}
	if cursor < len(sentence) {
		tokens = append(tokens, SegmentIntoWords(sentence[cursor:])...)
	}

	return mergeGaps(tokens)
}

// mergeGaps joins adjacent non-word tokens so that output has the same
// shape as SegmentIntoWords.
func mergeGaps(tokens []Token) []Token {
	out := tokens[:0]
	for _, t := range tokens {
		if n := len(out); n > 0 && !t.IsWord && !out[n-1].IsWord {
			out[n-1].Text += t.Text
			continue
		}
		out = append(out, t)
	}
	return out
}

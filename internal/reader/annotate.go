package reader

import "strings"

// Sentence is one annotated sentence of a story.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Annotator turns raw story text into an annotated token stream.
type Annotator struct {
	seg *Segmenter
}

// NewAnnotator creates an Annotator. seg may be nil, in which case
// ModeMorphological falls back to ModeCharacters.
func NewAnnotator(seg *Segmenter) *Annotator {
	return &Annotator{seg: seg}
}

// Annotate segments text into sentences and each sentence into tokens.
func (a *Annotator) Annotate(text string, mode Mode) []Sentence {
	split := a.splitter(mode)

	raw := SegmentIntoSentences(text)
	sentences := make([]Sentence, len(raw))
	for i, s := range raw {
		sentences[i] = Sentence{Text: s, Tokens: split(s)}
	}
	return sentences
}

// Tokens splits a single line, such as a title, without sentence
// segmentation, so unterminated text is kept.
func (a *Annotator) Tokens(line string, mode Mode) []Token {
	return a.splitter(mode)(strings.TrimSpace(line))
}

func (a *Annotator) splitter(mode Mode) func(string) []Token {
	switch mode {
	case ModeCharacters:
		return SegmentIntoCharacters
	case ModeMorphological:
		if a.seg != nil {
			return a.seg.Segment
		}
		return SegmentIntoCharacters
	default:
		return SegmentIntoWords
	}
}

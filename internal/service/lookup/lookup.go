package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

type wordInfoResponse struct {
	Translation  string `json:"translation"`
	PartOfSpeech string `json:"partOfSpeech"`
	Note         string `json:"note"`
}

type glossResponse struct {
	Translation string `json:"translation"`
}

// Lookup explains word as it is used in sentence.
// Returns domain.ErrNothingToLookup without calling anything when word has
// no letters. Every other failure wraps domain.ErrLookupFailed.
func (d *Dispatcher) Lookup(ctx context.Context, word, sentence string) (*domain.WordInfo, error) {
	term := NormalizeTerm(word)
	if term == "" {
		return nil, domain.ErrNothingToLookup
	}

	strategy := SelectStrategy(term)
	sentence = domain.CleanText(sentence)

	var (
		info *domain.WordInfo
		err  error
	)
	switch strategy {
	case domain.StrategyEnglishWord:
		info, err = d.lookupEnglish(ctx, term, sentence)
	case domain.StrategyKoreanWord:
		info, err = d.ask(ctx, koreanWordRequest(term, sentence))
	case domain.StrategyKoreanChar:
		info, err = d.ask(ctx, koreanCharRequest(term, sentence))
	default:
		info, err = d.ask(ctx, foreignWordRequest(term, sentence, domain.LanguageEnglish))
	}
	if err != nil {
		d.log.WarnContext(ctx, "word lookup failed",
			slog.String("word", term),
			slog.String("strategy", strategy.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}

	info.Word = term
	info.Context = sentence
	info.Strategy = strategy
	return info, nil
}

// lookupEnglish takes part of speech and definition from the dictionary and
// falls back to the LLM when the dictionary has nothing for the word.
func (d *Dispatcher) lookupEnglish(ctx context.Context, word, sentence string) (*domain.WordInfo, error) {
	entry, err := d.dict.Lookup(ctx, word)
	if err != nil {
		d.log.WarnContext(ctx, "dictionary unavailable, asking the LLM",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
	}
	sense, ok := entry.Primary()
	if err != nil || !ok || sense.PartOfSpeech == "" {
		return d.ask(ctx, foreignWordRequest(word, sentence, d.native))
	}

	info := &domain.WordInfo{
		Translation:  sense.Definition,
		PartOfSpeech: sense.PartOfSpeech,
		Note:         entry.Phonetic,
	}
	if d.native == domain.LanguageEnglish {
		return info, nil
	}

	text, err := d.llm.Complete(ctx, glossRequest(word, sense.Definition, d.native))
	if err != nil {
		return nil, err
	}
	var resp glossResponse
	if err := llm.DecodeJSON(text, &resp); err != nil {
		return nil, err
	}
	gloss := strings.TrimSpace(resp.Translation)
	if gloss == "" {
		return nil, fmt.Errorf("%w: missing translation", domain.ErrMalformedResponse)
	}
	info.Translation = gloss
	return info, nil
}

func (d *Dispatcher) ask(ctx context.Context, req llm.Request) (*domain.WordInfo, error) {
	text, err := d.llm.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	var resp wordInfoResponse
	if err := llm.DecodeJSON(text, &resp); err != nil {
		return nil, err
	}

	translation := strings.TrimSpace(resp.Translation)
	pos := domain.ParsePartOfSpeech(resp.PartOfSpeech)
	if translation == "" || pos == "" {
		return nil, fmt.Errorf("%w: missing translation or partOfSpeech", domain.ErrMalformedResponse)
	}

	info := &domain.WordInfo{
		Translation:  translation,
		PartOfSpeech: pos,
	}
	if note := strings.TrimSpace(resp.Note); note != "" {
		info.Note = &note
	}
	return info, nil
}

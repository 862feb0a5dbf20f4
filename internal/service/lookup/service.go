// Package lookup explains a word clicked in the reader. The strategy is
// picked from the script of the word: English words go to the dictionary,
// Hangul and everything else to the LLM.
package lookup

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/provider"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
)

type completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

type dictionary interface {
	Lookup(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

// Dispatcher routes a clicked word to the lookup strategy for its script.
type Dispatcher struct {
	llm    completer
	dict   dictionary
	native domain.Language
	log    *slog.Logger
}

// NewDispatcher creates a Dispatcher. native is the language English words
// are translated into; with English the dictionary definition is the gloss.
func NewDispatcher(
	log *slog.Logger,
	llm completer,
	dict dictionary,
	native domain.Language,
) *Dispatcher {
	if !native.IsValid() {
		native = domain.DefaultLanguage
	}
	return &Dispatcher{
		llm:    llm,
		dict:   dict,
		native: native,
		log:    log.With("service", "lookup"),
	}
}

// NormalizeTerm strips a clicked token down to its letters and inner
// apostrophes. An empty result means there is nothing to look up.
func NormalizeTerm(word string) string {
	return domain.NormalizeTerm(word)
}

// SelectStrategy picks the lookup strategy for a normalized term.
func SelectStrategy(term string) domain.LookupStrategy {
	switch reader.DetectScript(term) {
	case reader.ScriptLatin:
		return domain.StrategyEnglishWord
	case reader.ScriptHangul:
		if utf8.RuneCountInString(term) == 1 {
			return domain.StrategyKoreanChar
		}
		return domain.StrategyKoreanWord
	default:
		return domain.StrategyForeignWord
	}
}

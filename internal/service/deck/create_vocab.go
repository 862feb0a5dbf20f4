package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// CreateVocabEntry saves a word into a deck.
// Returns domain.ErrNotFound if the deck does not exist.
func (s *Service) CreateVocabEntry(ctx context.Context, input CreateVocabInput) (*domain.VocabEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.vocab.Create(ctx, &domain.VocabEntry{
		Word:         strings.TrimSpace(input.Word),
		Translation:  strings.TrimSpace(input.Translation),
		PartOfSpeech: domain.PartOfSpeech(strings.ToLower(strings.TrimSpace(input.PartOfSpeech))),
		Context:      trimOrNil(input.Context),
		DeckID:       input.DeckID,
	})
	if err != nil {
		return nil, fmt.Errorf("create vocabulary entry: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary entry created",
		slog.Int64("vocab_id", entry.ID),
		slog.Int64("deck_id", entry.DeckID),
		slog.String("word", entry.Word),
	)

	return entry, nil
}

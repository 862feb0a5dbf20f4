package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// UpdateVocabEntry applies a partial update to a saved word.
func (s *Service) UpdateVocabEntry(ctx context.Context, input UpdateVocabInput) (*domain.VocabEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := domain.VocabPatch{DeckID: input.DeckID}
	if input.Word != nil {
		w := strings.TrimSpace(*input.Word)
		patch.Word = &w
	}
	if input.Translation != nil {
		tr := strings.TrimSpace(*input.Translation)
		patch.Translation = &tr
	}
	if input.PartOfSpeech != nil {
		pos := domain.PartOfSpeech(strings.ToLower(strings.TrimSpace(*input.PartOfSpeech)))
		patch.PartOfSpeech = &pos
	}
	if input.Context != nil {
		c := strings.TrimSpace(*input.Context)
		patch.Context = &c
	}

	entry, err := s.vocab.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update vocabulary entry: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary entry updated", slog.Int64("vocab_id", entry.ID))
	return entry, nil
}

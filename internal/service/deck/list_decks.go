package deck

import (
	"context"
	"fmt"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// ListDecks returns every deck, newest first, each with its vocabulary in
// the order it was saved.
func (s *Service) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	var decks []domain.Deck

	err := s.tx.RunInSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		decks, err = s.decks.List(txCtx)
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}

		ids := make([]int64, len(decks))
		for i, d := range decks {
			ids[i] = d.ID
		}

		byDeck, err := s.vocab.ListByDeckIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("list deck vocabulary: %w", err)
		}

		for i := range decks {
			words := byDeck[decks[i].ID]
			if words == nil {
				words = []domain.VocabEntry{}
			}
			decks[i].Vocabulary = words
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if decks == nil {
		decks = []domain.Deck{}
	}
	return decks, nil
}

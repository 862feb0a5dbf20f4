package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// CreateDeck creates an empty deck.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (*domain.Deck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	deck, err := s.decks.Create(ctx, name, trimOrNil(input.Description))
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	if deck.Vocabulary == nil {
		deck.Vocabulary = []domain.VocabEntry{}
	}

	s.log.InfoContext(ctx, "deck created",
		slog.Int64("deck_id", deck.ID),
		slog.String("name", name),
	)

	return deck, nil
}

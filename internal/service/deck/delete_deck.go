package deck

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteDeck removes a deck together with all of its vocabulary.
func (s *Service) DeleteDeck(ctx context.Context, id int64) error {
	if err := s.decks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted", slog.Int64("deck_id", id))
	return nil
}

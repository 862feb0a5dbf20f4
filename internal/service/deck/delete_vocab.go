package deck

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteVocabEntry removes a saved word.
func (s *Service) DeleteVocabEntry(ctx context.Context, id int64) error {
	if err := s.vocab.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vocabulary entry: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary entry deleted", slog.Int64("vocab_id", id))
	return nil
}

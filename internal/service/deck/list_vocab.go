package deck

import (
	"context"
	"fmt"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// ListVocabulary returns saved words, newest first.
func (s *Service) ListVocabulary(ctx context.Context, filter domain.VocabFilter) ([]domain.VocabEntry, error) {
	entries, err := s.vocab.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	if entries == nil {
		entries = []domain.VocabEntry{}
	}
	return entries, nil
}

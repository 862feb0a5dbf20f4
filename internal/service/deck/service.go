package deck

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

type deckRepo interface {
	Create(ctx context.Context, name string, description *string) (*domain.Deck, error)
	List(ctx context.Context) ([]domain.Deck, error)
	Delete(ctx context.Context, id int64) error
}

type vocabRepo interface {
	Create(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error)
	List(ctx context.Context, f domain.VocabFilter) ([]domain.VocabEntry, error)
	ListByDeckIDs(ctx context.Context, deckIDs []int64) (map[int64][]domain.VocabEntry, error)
	Update(ctx context.Context, id int64, patch domain.VocabPatch) (*domain.VocabEntry, error)
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages decks and the vocabulary saved into them.
type Service struct {
	decks deckRepo
	vocab vocabRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new deck service.
func NewService(
	log *slog.Logger,
	decks deckRepo,
	vocab vocabRepo,
	tx txManager,
) *Service {
	return &Service{
		decks: decks,
		vocab: vocab,
		tx:    tx,
		log:   log.With("service", "deck"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

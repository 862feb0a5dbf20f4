// Package deck implements the Deck repository using PostgreSQL.
// Vocabulary rows are removed by the ON DELETE CASCADE foreign key when their
// deck is deleted.
package deck

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new deck repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Deck {
	return domain.Deck{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		Vocabulary:  []domain.VocabEntry{},
	}
}

// Create inserts a new deck and returns it with an empty vocabulary.
func (r *Repo) Create(ctx context.Context, name string, description *string) (*domain.Deck, error) {
	query, args, err := postgres.Builder.
		Insert("decks").
		Columns("name", "description").
		Values(name, description).
		Suffix("RETURNING id, name, description, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert deck: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "deck", 0)
	}

	d := out.toDomain()
	return &d, nil
}

// List returns every deck, newest first. Vocabulary is left empty; callers
// attach it from the vocabulary repository.
func (r *Repo) List(ctx context.Context) ([]domain.Deck, error) {
	query, args, err := postgres.Builder.
		Select("id", "name", "description", "created_at").
		From("decks").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decks: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	decks := make([]domain.Deck, len(rows))
	for i, rw := range rows {
		decks[i] = rw.toDomain()
	}
	return decks, nil
}

// Delete removes a deck and, through the cascade, all of its vocabulary.
// Returns domain.ErrNotFound if the deck does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.
		Delete("decks").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete deck: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "deck", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Package vocab implements the vocabulary repository using PostgreSQL.
package vocab

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

const returning = "RETURNING id, word, translation, part_of_speech, context, deck_id, created_at"

var columns = []string{"id", "word", "translation", "part_of_speech", "context", "deck_id", "created_at"}

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new vocabulary repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID           int64     `db:"id"`
	Word         string    `db:"word"`
	Translation  string    `db:"translation"`
	PartOfSpeech string    `db:"part_of_speech"`
	Context      *string   `db:"context"`
	DeckID       int64     `db:"deck_id"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() domain.VocabEntry {
	return domain.VocabEntry{
		ID:           r.ID,
		Word:         r.Word,
		Translation:  r.Translation,
		PartOfSpeech: domain.PartOfSpeech(r.PartOfSpeech),
		Context:      r.Context,
		DeckID:       r.DeckID,
		CreatedAt:    r.CreatedAt,
	}
}

func toDomainList(rows []row) []domain.VocabEntry {
	out := make([]domain.VocabEntry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out
}

// Create inserts a vocabulary entry.
// Returns domain.ErrNotFound if the referenced deck does not exist.
func (r *Repo) Create(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error) {
	query, args, err := postgres.Builder.
		Insert("vocabulary").
		Columns("word", "translation", "part_of_speech", "context", "deck_id").
		Values(e.Word, e.Translation, string(e.PartOfSpeech), e.Context, e.DeckID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert vocabulary: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "deck", e.DeckID)
	}

	created := out.toDomain()
	return &created, nil
}

// List returns vocabulary entries, newest first, optionally limited to one deck.
func (r *Repo) List(ctx context.Context, f domain.VocabFilter) ([]domain.VocabEntry, error) {
	sb := postgres.Builder.
		Select(columns...).
		From("vocabulary").
		OrderBy("created_at DESC", "id DESC")
	if f.DeckID != nil {
		sb = sb.Where(squirrel.Eq{"deck_id": *f.DeckID})
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list vocabulary: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	return toDomainList(rows), nil
}

// ListByDeckIDs returns the entries of several decks in insertion order,
// grouped by deck id. Decks without entries are absent from the map.
func (r *Repo) ListByDeckIDs(ctx context.Context, deckIDs []int64) (map[int64][]domain.VocabEntry, error) {
	if len(deckIDs) == 0 {
		return map[int64][]domain.VocabEntry{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("vocabulary").
		Where("deck_id = ANY(?)", deckIDs).
		OrderBy("deck_id", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list vocabulary by decks: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list vocabulary by decks: %w", err)
	}

	grouped := make(map[int64][]domain.VocabEntry, len(deckIDs))
	for _, rw := range rows {
		grouped[rw.DeckID] = append(grouped[rw.DeckID], rw.toDomain())
	}
	return grouped, nil
}

// Update applies the non-nil fields of patch and returns the updated entry.
// Returns domain.ErrNotFound if the entry or a newly referenced deck does not exist.
func (r *Repo) Update(ctx context.Context, id int64, patch domain.VocabPatch) (*domain.VocabEntry, error) {
	if patch.IsEmpty() {
		return nil, domain.NewValidationError("patch", "at least one field is required")
	}

	set := map[string]any{}
	if patch.Word != nil {
		set["word"] = *patch.Word
	}
	if patch.Translation != nil {
		set["translation"] = *patch.Translation
	}
	if patch.PartOfSpeech != nil {
		set["part_of_speech"] = string(*patch.PartOfSpeech)
	}
	if patch.Context != nil {
		if *patch.Context == "" {
			set["context"] = nil
		} else {
			set["context"] = *patch.Context
		}
	}
	if patch.DeckID != nil {
		set["deck_id"] = *patch.DeckID
	}
	query, args, err := postgres.Builder.
		Update("vocabulary").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update vocabulary: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "vocabulary", id)
	}

	updated := out.toDomain()
	return &updated, nil
}

// Delete removes a vocabulary entry.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.
		Delete("vocabulary").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete vocabulary: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "vocabulary", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vocabulary %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Package story implements the Story repository using PostgreSQL.
// Stories are append-only: there is no update or delete.
package story

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/storylingo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

var columns = []string{
	"id", "title", "content", "reading_level", "word_count", "language", "source_url", "created_at",
}

// Repo provides story persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new story repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Content      string    `db:"content"`
	ReadingLevel string    `db:"reading_level"`
	WordCount    int       `db:"word_count"`
	Language     string    `db:"language"`
	SourceURL    *string   `db:"source_url"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Story {
	return domain.Story{
		ID:           r.ID,
		Title:        r.Title,
		Content:      r.Content,
		ReadingLevel: domain.ReadingLevel(r.ReadingLevel),
		WordCount:    r.WordCount,
		Language:     domain.Language(r.Language),
		SourceURL:    r.SourceURL,
		CreatedAt:    r.CreatedAt,
	}
}

// Create inserts a story and returns it with its generated id and timestamp.
func (r *Repo) Create(ctx context.Context, s *domain.Story) (*domain.Story, error) {
	query, args, err := postgres.Builder.
		Insert("stories").
		Columns("title", "content", "reading_level", "word_count", "language", "source_url").
		Values(s.Title, s.Content, string(s.ReadingLevel), s.WordCount, string(s.Language), s.SourceURL).
		Suffix("RETURNING id, title, content, reading_level, word_count, language, source_url, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert story: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "story", 0)
	}

	created := out.toDomain()
	return &created, nil
}

// GetByID returns a story by primary key.
// Returns domain.ErrNotFound if the story does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Story, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("stories").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get story: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "story", id)
	}

	s := out.toDomain()
	return &s, nil
}

// List returns every story, newest first.
// Returns an empty slice (not nil) when there are no stories.
func (r *Repo) List(ctx context.Context) ([]domain.Story, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("stories").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list stories: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	stories := make([]domain.Story, len(rows))
	for i, rw := range rows {
		stories[i] = rw.toDomain()
	}
	return stories, nil
}

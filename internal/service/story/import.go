package story

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
)

// Import fetches a web article and saves its readable text as a story.
func (s *Service) Import(ctx context.Context, input ImportInput) (*domain.Story, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lang, err := s.resolveLanguage(ctx, input.Language)
	if err != nil {
		return nil, fmt.Errorf("resolve story language: %w", err)
	}

	article, err := s.articles.Fetch(ctx, strings.TrimSpace(input.URL))
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, domain.NewValidationError("url", "page has no readable text")
	}

	title := []rune(strings.TrimSpace(article.Title))
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength]
	}

	source := article.URL
	story, err := s.stories.Create(ctx, &domain.Story{
		Title:        string(title),
		Content:      article.Content,
		ReadingLevel: domain.ParseReadingLevel(input.ReadingLevel),
		WordCount:    reader.CountWords(article.Content),
		Language:     lang,
		SourceURL:    &source,
	})
	if err != nil {
		return nil, fmt.Errorf("save imported story: %w", err)
	}

	s.log.InfoContext(ctx, "article imported",
		slog.Int64("story_id", story.ID),
		slog.String("url", source),
		slog.Int("word_count", story.WordCount),
	)

	return story, nil
}

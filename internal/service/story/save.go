package story

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
)

// Save stores a story. Stories cannot be changed afterwards.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Story, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lang, err := s.resolveLanguage(ctx, input.Language)
	if err != nil {
		return nil, fmt.Errorf("resolve story language: %w", err)
	}

	content := strings.TrimSpace(input.Content)
	wordCount := input.WordCount
	if wordCount == 0 {
		wordCount = reader.CountWords(content)
	}

	story, err := s.stories.Create(ctx, &domain.Story{
		Title:        strings.TrimSpace(input.Title),
		Content:      content,
		ReadingLevel: domain.ParseReadingLevel(input.ReadingLevel),
		WordCount:    wordCount,
		Language:     lang,
	})
	if err != nil {
		return nil, fmt.Errorf("save story: %w", err)
	}

	s.log.InfoContext(ctx, "story saved",
		slog.Int64("story_id", story.ID),
		slog.String("title", story.Title),
	)

	return story, nil
}

// List returns every saved story, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Story, error) {
	stories, err := s.stories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	if stories == nil {
		stories = []domain.Story{}
	}
	return stories, nil
}

// Get returns one story.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}
	return story, nil
}

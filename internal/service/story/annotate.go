package story

import (
	"context"
	"fmt"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
)

// AnnotatedStory is a story split into clickable tokens.
type AnnotatedStory struct {
	Story     *domain.Story
	Mode      reader.Mode
	Title     []reader.Token
	Sentences []reader.Sentence
}

// Annotate loads a story and tokenizes it for the reader. Without an
// explicit mode the story language decides how text is split.
func (s *Service) Annotate(ctx context.Context, input AnnotateInput) (*AnnotatedStory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	story, err := s.stories.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}

	mode := reader.Mode(input.Mode)
	if mode == "" {
		mode = reader.ModeFor(story.Language)
	}

	return &AnnotatedStory{
		Story:     story,
		Mode:      mode,
		Title:     s.annotator.Tokens(story.Title, mode),
		Sentences: s.annotator.Annotate(story.Content, mode),
	}, nil
}

package story

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
	"github.com/heartmarshall/storylingo-backend/internal/reader"
)

type storyRepo interface {
	Create(ctx context.Context, s *domain.Story) (*domain.Story, error)
	GetByID(ctx context.Context, id int64) (*domain.Story, error)
	List(ctx context.Context) ([]domain.Story, error)
}

type settingsReader interface {
	GetStoryLanguage(ctx context.Context) (domain.Language, error)
}

type completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

type articleFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*domain.Article, error)
}

// Service generates, stores and prepares stories for reading.
type Service struct {
	stories   storyRepo
	settings  settingsReader
	llm       completer
	articles  articleFetcher
	annotator *reader.Annotator
	log       *slog.Logger
}

// NewService creates a new story service.
func NewService(
	log *slog.Logger,
	stories storyRepo,
	settings settingsReader,
	llm completer,
	articles articleFetcher,
	annotator *reader.Annotator,
) *Service {
	return &Service{
		stories:   stories,
		settings:  settings,
		llm:       llm,
		articles:  articles,
		annotator: annotator,
		log:       log.With("service", "story"),
	}
}

// resolveLanguage returns the explicit language when one is given and the
// stored story language otherwise.
func (s *Service) resolveLanguage(ctx context.Context, explicit string) (domain.Language, error) {
	if lang, ok := domain.ParseLanguage(explicit); ok {
		return lang, nil
	}
	return s.settings.GetStoryLanguage(ctx)
}

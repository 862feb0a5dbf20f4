package translation

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
)

type completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

type cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Service translates story sentences with an LLM. Results are cached and
// concurrent identical requests share one upstream call.
type Service struct {
	llm   completer
	cache cache
	ttl   time.Duration
	group singleflight.Group
	log   *slog.Logger
}

// NewService creates a new translation service.
func NewService(
	log *slog.Logger,
	llm completer,
	cache cache,
	ttl time.Duration,
) *Service {
	return &Service{
		llm:   llm,
		cache: cache,
		ttl:   ttl,
		log:   log.With("service", "translation"),
	}
}

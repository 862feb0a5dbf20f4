package settings

import (
	"context"
	"log/slog"
)

type settingRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}

// Service reads and writes persisted user settings.
type Service struct {
	settings settingRepo
	log      *slog.Logger
}

// NewService creates a new settings service.
func NewService(log *slog.Logger, settings settingRepo) *Service {
	return &Service{
		settings: settings,
		log:      log.With("service", "settings"),
	}
}

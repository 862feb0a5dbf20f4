package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// GetStoryLanguage returns the configured story language, or
// domain.DefaultLanguage when none has been stored.
func (s *Service) GetStoryLanguage(ctx context.Context) (domain.Language, error) {
	raw, err := s.settings.Get(ctx, domain.SettingStoryLanguage)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultLanguage, nil
	}
	if err != nil {
		return "", fmt.Errorf("get story language: %w", err)
	}

	lang, ok := domain.ParseLanguage(raw)
	if !ok {
		s.log.WarnContext(ctx, "stored story language is not supported, using default",
			slog.String("value", raw),
		)
		return domain.DefaultLanguage, nil
	}
	return lang, nil
}

// SetStoryLanguage stores lang as the story language.
func (s *Service) SetStoryLanguage(ctx context.Context, lang string) (domain.Language, error) {
	parsed, ok := domain.ParseLanguage(lang)
	if !ok {
		if lang == "" {
			return "", domain.NewValidationError("language", "required")
		}
		return "", domain.NewValidationError("language", "unsupported language")
	}

	if err := s.settings.Set(ctx, domain.SettingStoryLanguage, parsed.String()); err != nil {
		return "", fmt.Errorf("set story language: %w", err)
	}

	s.log.InfoContext(ctx, "story language updated", slog.String("language", parsed.String()))
	return parsed, nil
}

// All returns every stored setting. The story language is always present,
// filled with the default when it has never been set.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	all, err := s.settings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	if all == nil {
		all = make(map[string]string)
	}
	if _, ok := all[domain.SettingStoryLanguage]; !ok {
		all[domain.SettingStoryLanguage] = domain.DefaultLanguage.String()
	}
	return all, nil
}

package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

const (
	maxAttempts = 2
	temperature = 0.3
	maxTokens   = 1000
)

type translationResponse struct {
	Translation string `json:"translation"`
}

// Translate returns the translation of input.Sentence into the target
// language. A cached result is returned when present.
func (s *Service) Translate(ctx context.Context, input TranslateInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	sentence := strings.TrimSpace(input.Sentence)
	lang := input.language()
	key := CacheKey(lang, sentence)

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.WarnContext(ctx, "translation cache read failed", slog.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}

	// The shared call must outlive any single caller; each caller still
	// stops waiting when its own context ends.
	ch := s.group.DoChan(key, func() (any, error) {
		return s.translate(context.WithoutCancel(ctx), sentence, lang)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		translated := res.Val.(string)

		if err := s.cache.Set(ctx, key, translated, s.ttl); err != nil {
			s.log.WarnContext(ctx, "translation cache write failed", slog.String("error", err.Error()))
		}
		return translated, nil
	}
}

// Fetch adapts Translate to the reader toggle controller.
func (s *Service) Fetch(ctx context.Context, sentence string) (string, error) {
	return s.Translate(ctx, TranslateInput{Sentence: sentence})
}

// CacheKey derives the cache key for a sentence in a target language.
func CacheKey(lang domain.Language, sentence string) string {
	sum := sha256.Sum256([]byte(lang.String() + "\x00" + sentence))
	return hex.EncodeToString(sum[:])
}

func (s *Service) translate(ctx context.Context, sentence string, lang domain.Language) (string, error) {
	req := llm.Request{
		System: fmt.Sprintf("You are a professional translator. Translate the user's text into %s. "+
			"Preserve the meaning and tone, and keep names unchanged. "+
			"Respond with a JSON object containing exactly one field: 'translation'.", lang),
		Prompt:      sentence,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSON:        true,
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		translated, err := s.attempt(ctx, req)
		if err == nil {
			return translated, nil
		}
		lastErr = err

		// Quota and rate-limit failures will not clear up on an immediate retry.
		if errors.Is(err, domain.ErrQuotaExceeded) || errors.Is(err, domain.ErrRateLimited) {
			return "", err
		}
		s.log.WarnContext(ctx, "translation attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
	}

	if errors.Is(lastErr, domain.ErrUpstream) {
		return "", lastErr
	}
	return "", fmt.Errorf("%w: %v", domain.ErrUpstream, lastErr)
}

func (s *Service) attempt(ctx context.Context, req llm.Request) (string, error) {
	text, err := s.llm.Complete(ctx, req)
	if err != nil {
		return "", err
	}

	var resp translationResponse
	if err := llm.DecodeJSON(text, &resp); err != nil {
		return "", err
	}
	translated := strings.TrimSpace(resp.Translation)
	if translated == "" {
		return "", fmt.Errorf("%w: empty translation", domain.ErrMalformedResponse)
	}
	return translated, nil
}

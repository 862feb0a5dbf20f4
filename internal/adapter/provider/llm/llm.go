// Package llm adapts chat-completion providers (OpenAI, OpenRouter,
// Anthropic) to a single Completer interface and classifies their failures
// into domain errors.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// Request is one single-turn completion call.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
	// JSON asks the provider for a JSON object response where supported.
	// Callers still run the text through DecodeJSON.
	JSON bool
}

// Completer returns the text of a single completion.
// Errors wrap domain.ErrQuotaExceeded, domain.ErrRateLimited or
// domain.ErrUpstream.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// DecodeJSON extracts the JSON object embedded in text (first '{' to last
// '}') and unmarshals it into dst. Failures wrap domain.ErrMalformedResponse.
func DecodeJSON(text string, dst any) error {
	raw, err := extractJSON(text)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

// extractJSON finds the outermost JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errors.New("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// classify maps a provider failure onto the domain taxonomy using the
// provider's error type, HTTP status and message.
func classify(provider string, errType string, status int, err error) error {
	msg := strings.ToLower(err.Error())
	errType = strings.ToLower(errType)

	switch {
	case errType == "insufficient_quota" || strings.Contains(msg, "insufficient_quota"):
		return fmt.Errorf("%s: %w", provider, domain.ErrQuotaExceeded)
	case status == 429,
		errType == "rate_limit_exceeded" || errType == "rate_limit_error",
		strings.Contains(msg, "rate limit"), strings.Contains(msg, "rate_limit"):
		return fmt.Errorf("%s: %w", provider, domain.ErrRateLimited)
	default:
		return fmt.Errorf("%s: %w: %v", provider, domain.ErrUpstream, err)
	}
}

package llm

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/config"
)

// DefaultAnthropicModel is used when the anthropic provider is selected but
// the configured model is an OpenAI default.
const DefaultAnthropicModel = "claude-haiku-4-5-20251001"

// New builds the Completer selected by cfg.Provider.
func New(cfg config.LLMConfig, logger *slog.Logger) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout, logger), nil
	case config.ProviderOpenRouter:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = OpenRouterBaseURL
		}
		return NewOpenAI(cfg.APIKey, baseURL, cfg.Model, cfg.Timeout, logger), nil
	case config.ProviderAnthropic:
		model := cfg.Model
		if model == "" || strings.HasPrefix(model, "gpt-") {
			logger.Warn("llm model is not an anthropic model, using default",
				slog.String("configured", model),
				slog.String("model", DefaultAnthropicModel),
			)
			model = DefaultAnthropicModel
		}
		return NewAnthropic(cfg.APIKey, cfg.BaseURL, model, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// LLM provider names accepted in llm.provider.
const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
)

var providers = []string{ProviderOpenAI, ProviderOpenRouter, ProviderAnthropic}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if c.Redis.URL != "" {
		if _, err := url.Parse(c.Redis.URL); err != nil {
			return fmt.Errorf("redis.url: %w", err)
		}
	}

	if c.Translation.CacheTTL < 0 {
		return fmt.Errorf("translation.cache_ttl must be >= 0 (got %v)", c.Translation.CacheTTL)
	}

	if c.RateLimit.GeneratePerMinute <= 0 {
		return fmt.Errorf("ratelimit.generate_per_minute must be > 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	if !slices.Contains(providers, l.Provider) {
		return fmt.Errorf("provider must be one of %s (got %q)", strings.Join(providers, ", "), l.Provider)
	}
	if strings.TrimSpace(l.APIKey) == "" {
		return fmt.Errorf("api_key is required")
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.BaseURL != "" {
		if _, err := url.ParseRequestURI(l.BaseURL); err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
	}
	return nil
}

func (d *DictionaryConfig) validate() error {
	if _, err := url.ParseRequestURI(d.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	lang, ok := domain.ParseLanguage(d.NativeLanguage)
	if !ok {
		return fmt.Errorf("native_language %q is not supported", d.NativeLanguage)
	}
	d.NativeLanguage = lang.String()
	return nil
}

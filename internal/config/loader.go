package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// providerKeyEnv names the conventional API key variable of each LLM
// provider. It is consulted when LLM_API_KEY is not set.
var providerKeyEnv = map[string]string{
	ProviderOpenAI:     "OPENAI_API_KEY",
	ProviderOpenRouter: "OPENROUTER_API_KEY",
	ProviderAnthropic:  "ANTHROPIC_API_KEY",
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg.LLM.applyKeyFallback(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// applyKeyFallback fills an empty APIKey from the provider's own variable,
// e.g. OPENAI_API_KEY for the openai provider.
func (l *LLMConfig) applyKeyFallback(getenv func(string) string) {
	if strings.TrimSpace(l.APIKey) != "" {
		return
	}
	if name, ok := providerKeyEnv[strings.ToLower(strings.TrimSpace(l.Provider))]; ok {
		l.APIKey = getenv(name)
	}
}

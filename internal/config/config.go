package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	LLM         LLMConfig         `yaml:"llm"`
	Dictionary  DictionaryConfig  `yaml:"dictionary"`
	Translation TranslationConfig `yaml:"translation"`
	RateLimit   RateLimitConfig   `yaml:"ratelimit"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// RedisConfig holds the translation cache connection. An empty URL
// disables the cache.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// LLMConfig selects and configures the text-generation provider.
type LLMConfig struct {
	Provider string        `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`
	APIKey   string        `yaml:"api_key"  env:"LLM_API_KEY"`
	Model    string        `yaml:"model"    env:"LLM_MODEL"    env-default:"gpt-4o"`
	BaseURL  string        `yaml:"base_url" env:"LLM_BASE_URL"`
	Timeout  time.Duration `yaml:"timeout"  env:"LLM_TIMEOUT"  env-default:"60s"`
}

// DictionaryConfig holds word lookup settings.
type DictionaryConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"DICT_BASE_URL"        env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	NativeLanguage string        `yaml:"native_language" env:"DICT_NATIVE_LANGUAGE" env-default:"English"`
	Timeout        time.Duration `yaml:"timeout"         env:"DICT_TIMEOUT"         env-default:"10s"`
}

// TranslationConfig holds sentence translation settings.
type TranslationConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl" env:"TRANSLATION_CACHE_TTL" env-default:"168h"`
}

// RateLimitConfig holds per-IP limits for the generation endpoints.
type RateLimitConfig struct {
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATELIMIT_GENERATE_PER_MINUTE" env-default:"10"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATELIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

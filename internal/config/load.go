package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load 는 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 는 설정 유효성을 검사한다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Gemini.Model) == "" {
		return errors.New("gemini model is empty")
	}
	if c.Gemini.MaxOutputTokens <= 0 {
		return fmt.Errorf("invalid max output tokens: %d", c.Gemini.MaxOutputTokens)
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid gemini timeout: %d", c.Gemini.TimeoutSeconds)
	}
	return nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	envFilePresent := fileExists(".env")
	logger.Debug(
		"env_status",
		"env_file", envFilePresent,
		"gemini_key", maskSecret(cfg.Gemini.APIKey),
		"gemini_configured", cfg.Gemini.IsConfigured(),
		"model", cfg.Gemini.Model,
		"timeout", cfg.Gemini.TimeoutSeconds,
		"store_url", cfg.Store.URL,
		"db_host", cfg.Database.Host,
		"db_name", cfg.Database.Name,
	)

	if !cfg.Gemini.IsConfigured() {
		logger.Error("env_missing_gemini_api_key")
	}
}

func buildConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKey:          getEnvString("GEMINI_API_KEY", ""),
			Model:           getEnvString("GEMINI_MODEL", "gemini-2.0-flash"),
			Temperature:     getEnvFloat("GEMINI_TEMPERATURE", 0.7),
			MaxOutputTokens: getEnvInt("GEMINI_MAX_TOKENS", 8192),
			TimeoutSeconds:  getEnvInt("GEMINI_TIMEOUT", 60),
		},
		Guard: GuardConfig{
			Enabled:   getEnvBool("GUARD_ENABLED", true),
			Threshold: getEnvFloat("GUARD_THRESHOLD", 0.85),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "127.0.0.1"),
			Port:         getEnvInt("HTTP_PORT", 40731),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
		},
		HTTPAuth: HTTPAuthConfig{
			APIKey: getEnvString("HTTP_API_KEY", ""),
		},
		HTTPRateLimit: HTTPRateLimitConfig{
			RequestsPerMinute: getEnvNonNegativeInt("HTTP_RATE_LIMIT_RPM", 0),
			CacheSize:         max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_SIZE", 10000)),
			CacheTTLSeconds:   max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_TTL_SECONDS", 120)),
		},
		Store: StoreConfig{
			URL:          getEnvString("CAMPAIGN_STORE_URL", "redis://localhost:6379"),
			Enabled:      getEnvBool("CAMPAIGN_STORE_ENABLED", false),
			Required:     getEnvBool("CAMPAIGN_STORE_REQUIRED", false),
			DisableCache: getEnvBool("CAMPAIGN_STORE_DISABLE_CACHE", false),
			Compress:     getEnvBool("CAMPAIGN_STORE_COMPRESS", true),
		},
		Database: DatabaseConfig{
			Host:                   getEnvString("DB_HOST", "localhost"),
			Port:                   getEnvInt("DB_PORT", 5432),
			Name:                   getEnvString("DB_NAME", "planner"),
			User:                   getEnvString("DB_USER", "planner"),
			Password:               getEnvString("DB_PASSWORD", ""),
			MinPool:                getEnvInt("DB_MIN_POOL", 1),
			MaxPool:                getEnvInt("DB_MAX_POOL", 5),
			ConnMaxLifetimeMinutes: getEnvNonNegativeInt("DB_CONN_MAX_LIFETIME_MINUTES", 60),
			ConnMaxIdleTimeMinutes: getEnvNonNegativeInt("DB_CONN_MAX_IDLE_TIME_MINUTES", 10),
			UsageEnabled:           getEnvBool("DB_USAGE_ENABLED", false),
		},
	}
}

// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"
)

// Supported model providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Config holds everything the orchestrator needs per run plus the
// transport intervals. Database configuration lives in pkg/database.
type Config struct {
	HTTPPort string

	// Model provider
	LLMProvider string
	LLMModel    string
	LLMAPIKey   string
	LLMBaseURL  string
	MaxTokens   int

	SystemPrompt string

	// Orchestration intervals
	AbortCheckInterval time.Duration // status poll inside the event queue
	HeartbeatInterval  time.Duration // live transport + worker heartbeat
	StaleSessionMax    time.Duration // reader-side worker-death threshold
	LongPollTimeout    time.Duration // resumable reader block ceiling
	LongPollInterval   time.Duration // resumable reader poll step
	SessionTimeout     time.Duration // hard ceiling per run

	GracefulShutdownTimeout time.Duration

	// Retention; zero disables the background sweeper.
	SessionRetention time.Duration
	CleanupInterval  time.Duration

	// Optional Slack front-end; disabled when the token is empty.
	SlackBotToken string
	SlackAPIURL   string
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		LLMProvider:  getEnv("LLM_PROVIDER", ProviderAnthropic),
		LLMModel:     getEnv("LLM_MODEL", "claude-sonnet-4-5"),
		LLMAPIKey:    os.Getenv("LLM_API_KEY"),
		LLMBaseURL:   os.Getenv("LLM_BASE_URL"),
		SystemPrompt: os.Getenv("SYSTEM_PROMPT"),

		SlackBotToken: os.Getenv("SLACK_BOT_TOKEN"),
		SlackAPIURL:   os.Getenv("SLACK_API_URL"),
	}

	switch cfg.LLMProvider {
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER %q: must be %s or %s",
			cfg.LLMProvider, ProviderAnthropic, ProviderOpenAI)
	}

	var err error
	if cfg.MaxTokens, err = getEnvInt("LLM_MAX_TOKENS", 8192); err != nil {
		return nil, err
	}
	if cfg.AbortCheckInterval, err = getEnvDuration("ABORT_CHECK_INTERVAL", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.HeartbeatInterval, err = getEnvDuration("HEARTBEAT_INTERVAL", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.StaleSessionMax, err = getEnvDuration("STALE_SESSION_MAX", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.LongPollTimeout, err = getEnvDuration("LONG_POLL_TIMEOUT", 25*time.Second); err != nil {
		return nil, err
	}
	if cfg.LongPollInterval, err = getEnvDuration("LONG_POLL_INTERVAL", 1*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTimeout, err = getEnvDuration("SESSION_TIMEOUT", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.GracefulShutdownTimeout, err = getEnvDuration("GRACEFUL_SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionRetention, err = getEnvDuration("SESSION_RETENTION", 0); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = getEnvDuration("CLEANUP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LLMConfigured reports whether the model provider can be used.
// Submissions are refused with a structured error when it is not.
func (c *Config) LLMConfigured() bool {
	return c.LLMAPIKey != "" && c.LLMModel != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	var n int
	if _, err := fmt.Sscanf(val, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

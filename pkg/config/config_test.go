package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
	assert.Equal(t, 8192, cfg.MaxTokens)
	assert.Equal(t, 2*time.Second, cfg.AbortCheckInterval)
	assert.Equal(t, 10*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 5*time.Minute, cfg.StaleSessionMax)
	assert.Equal(t, 25*time.Second, cfg.LongPollTimeout)
	assert.Equal(t, time.Second, cfg.LongPollInterval)
	assert.Equal(t, 15*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, 30*time.Second, cfg.GracefulShutdownTimeout)
	assert.Equal(t, time.Duration(0), cfg.SessionRetention)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("ABORT_CHECK_INTERVAL", "500ms")
	t.Setenv("SESSION_RETENTION", "168h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gpt-4o", cfg.LLMModel)
	assert.Equal(t, 500*time.Millisecond, cfg.AbortCheckInterval)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionRetention)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "gemini")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid LLM_PROVIDER")
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("HEARTBEAT_INTERVAL", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid HEARTBEAT_INTERVAL")
	})
}

func TestLLMConfigured(t *testing.T) {
	cfg := &Config{LLMModel: "claude-sonnet-4-5"}
	assert.False(t, cfg.LLMConfigured())

	cfg.LLMAPIKey = "sk-test"
	assert.True(t, cfg.LLMConfigured())
}

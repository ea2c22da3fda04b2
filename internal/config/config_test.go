package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.OpenRouter.ModelsTimeout)
	assert.Equal(t, 60*time.Second, cfg.OpenRouter.AnalyzeTimeout)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("OPENROUTER_BASE_URL", "http://localhost:9999/api/v1")
	t.Setenv("ANALYZE_TIMEOUT", "90s")
	t.Setenv("MAX_FILE_SIZE", "1048576")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sk-or-test", cfg.OpenRouter.APIKey)
	assert.Equal(t, "http://localhost:9999/api/v1", cfg.OpenRouter.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.OpenRouter.AnalyzeTimeout)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxFileSize)
}

func TestGetEnvAsDurationFallsBack(t *testing.T) {
	t.Setenv("MODELS_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.OpenRouter.ModelsTimeout)
}

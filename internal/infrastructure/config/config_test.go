package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanbanboard/core/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Kanban Board API", cfg.App.Name)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.True(t, cfg.App.IsDevelopment())

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.GetAddr())
	assert.Equal(t, "./data/tasks", cfg.Storage.TasksDir)

	assert.Equal(t, "groq", cfg.AI.DefaultProvider)
	assert.Equal(t, 30*time.Second, cfg.AI.ProviderTimeout())
	assert.False(t, cfg.Google.Configured())

	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Security.AllowedOrigins())
	assert.Equal(t, 100, cfg.Security.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.Security.RateLimitWindow)

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BACKEND_HOST", "127.0.0.1")
	t.Setenv("BACKEND_PORT", "9000")
	t.Setenv("TASKS_DIR", "/srv/board/tasks")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DEBUG", "true")
	t.Setenv("AI_TIMEOUT", "5")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("ALLOWED_ORIGINS", "https://board.example.com, https://admin.example.com")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.GetAddr())
	assert.Equal(t, "/srv/board/tasks", cfg.Storage.TasksDir)
	assert.False(t, cfg.App.IsDevelopment())
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 5*time.Second, cfg.AI.ProviderTimeout())
	assert.True(t, cfg.Google.Configured())
	assert.Equal(t, []string{"https://board.example.com", "https://admin.example.com"}, cfg.Security.AllowedOrigins())
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("zero port", func(t *testing.T) {
		t.Setenv("BACKEND_PORT", "0")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server port")
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("BACKEND_PORT", "70000")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server port")
	})

	t.Run("zero AI timeout", func(t *testing.T) {
		t.Setenv("AI_TIMEOUT", "0")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AI timeout")
	})
}

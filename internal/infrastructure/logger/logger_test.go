package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanbanboard/core/internal/infrastructure/config"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggerConfig
		wantErr bool
	}{
		{"json to stdout", config.LoggerConfig{Level: "info", Format: "json", Output: "stdout"}, false},
		{"console", config.LoggerConfig{Level: "debug", Format: "console", Output: ""}, false},
		{"invalid level", config.LoggerConfig{Level: "verbose", Format: "json", Output: "stdout"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := logger.New(config.LoggerConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	l.Infow("board started", "port", 8000)
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "board started")
	assert.Contains(t, string(raw), `"port":8000`)
}

func TestWithHelpers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := logger.New(config.LoggerConfig{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	l.WithComponent("task_repository").Infow("component line")
	l.WithRequestID("req-123").Infow("request line")
	l.WithFields("k", "v").Infow("fields line")
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `"component":"task_repository"`)
	assert.Contains(t, text, `"request_id":"req-123"`)
	assert.Contains(t, text, `"k":"v"`)
}

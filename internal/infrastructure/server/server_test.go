package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/config"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/infrastructure/server"
	"github.com/kanbanboard/core/internal/infrastructure/storage"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		App: config.AppConfig{
			Name:        "Kanban Board API",
			Version:     "0.1.0",
			Environment: "development",
		},
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 8000},
		Storage: config.StorageConfig{TasksDir: t.TempDir()},
		AI:      config.AIConfig{DefaultProvider: "groq", Timeout: 30},
		Logger:  config.LoggerConfig{Level: "error", Format: "console", Output: "stdout"},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: "http://localhost:5173",
			RateLimitRequests:  100,
			RateLimitWindow:    time.Minute,
		},
		Metrics: config.MetricsConfig{Enabled: true},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*server.Server, *storage.Workspace) {
	t.Helper()

	ws, err := storage.Open(cfg.Storage)
	require.NoError(t, err)
	appLogger, err := logger.New(cfg.Logger)
	require.NoError(t, err)

	srv, err := server.New(cfg, ws, appLogger)
	require.NoError(t, err)
	return srv, ws
}

func get(srv *server.Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRootEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, newTestConfig(t))

	rec := get(srv, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Kanban Board API","version":"0.1.0","docs":"/docs"}`, rec.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, newTestConfig(t))

	rec := get(srv, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = get(srv, "/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)
	var detailed map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detailed))
	assert.Equal(t, "healthy", detailed["status"])
	assert.Contains(t, detailed, "checks")

	rec = get(srv, "/ready")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthEndpointsDegradedStorage(t *testing.T) {
	srv, ws := newTestServer(t, newTestConfig(t))
	require.NoError(t, os.RemoveAll(ws.StatusDir(entities.TaskStatusInProgress)))

	rec := get(srv, "/health/detailed")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)

	rec = get(srv, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// The custom error handler renders every error with the {"message": ...}
// shape, here checked through the full middleware chain.
func TestErrorPayloadShape(t *testing.T) {
	srv, _ := newTestServer(t, newTestConfig(t))

	rec := get(srv, "/api/tasks/task-missing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Task task-missing not found"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, newTestConfig(t))

	// A first request gives the counters something to report.
	get(srv, "/health")

	rec := get(srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}

func TestMetricsDisabled(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Metrics.Enabled = false
	srv, _ := newTestServer(t, cfg)

	rec := get(srv, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

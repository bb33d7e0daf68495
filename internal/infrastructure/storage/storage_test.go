package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/config"
	"github.com/kanbanboard/core/internal/infrastructure/storage"
)

func openWorkspace(t *testing.T) *storage.Workspace {
	t.Helper()
	ws, err := storage.Open(config.StorageConfig{TasksDir: t.TempDir()})
	require.NoError(t, err)
	return ws
}

func TestOpenCreatesLayout(t *testing.T) {
	ws := openWorkspace(t)

	assert.True(t, filepath.IsAbs(ws.Root()))

	for _, status := range entities.AllTaskStatuses {
		info, err := os.Stat(ws.StatusDir(status))
		require.NoError(t, err, "status %s", status)
		assert.True(t, info.IsDir())
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	_, err := storage.Open(config.StorageConfig{TasksDir: dir})
	require.NoError(t, err)
	_, err = storage.Open(config.StorageConfig{TasksDir: dir})
	require.NoError(t, err)
}

func TestStatusDir(t *testing.T) {
	ws := openWorkspace(t)

	assert.Equal(t, filepath.Join(ws.Root(), "todo"), ws.StatusDir(entities.TaskStatusTodo))
	assert.Equal(t, filepath.Join(ws.Root(), "in_progress"), ws.StatusDir(entities.TaskStatusInProgress))
	assert.Equal(t, filepath.Join(ws.Root(), "done"), ws.StatusDir(entities.TaskStatusDone))
}

func TestHealthCheck(t *testing.T) {
	ws := openWorkspace(t)

	require.NoError(t, ws.HealthCheck())

	require.NoError(t, os.RemoveAll(ws.StatusDir(entities.TaskStatusInProgress)))

	err := ws.HealthCheck()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in_progress")
}

func TestStats(t *testing.T) {
	ws := openWorkspace(t)

	writeFile := func(status entities.TaskStatus, name string) {
		path := filepath.Join(ws.StatusDir(status), name)
		require.NoError(t, os.WriteFile(path, []byte("---\n---\n"), 0o644))
	}
	writeFile(entities.TaskStatusTodo, "task-11111111.md")
	writeFile(entities.TaskStatusTodo, "task-22222222.md")
	writeFile(entities.TaskStatusDone, "task-33333333.md")
	// Only .md files count as tasks.
	writeFile(entities.TaskStatusTodo, "notes.txt")

	stats := ws.Stats()
	assert.Equal(t, ws.Root(), stats["root"])
	assert.Equal(t, 2, stats["todo"])
	assert.Equal(t, 0, stats["in_progress"])
	assert.Equal(t, 1, stats["done"])
}

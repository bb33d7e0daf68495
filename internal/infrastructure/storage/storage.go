package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/config"
)

// Workspace wraps the tasks root directory, which holds one subdirectory per
// status column.
type Workspace struct {
	root   string
	config config.StorageConfig
}

// Open prepares the tasks root, creating the status directories when missing
func Open(cfg config.StorageConfig) (*Workspace, error) {
	root, err := filepath.Abs(cfg.TasksDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tasks directory: %w", err)
	}

	ws := &Workspace{
		root:   root,
		config: cfg,
	}

	if err := ws.EnsureLayout(); err != nil {
		return nil, err
	}

	return ws, nil
}

// Root returns the absolute path of the tasks root
func (ws *Workspace) Root() string {
	return ws.root
}

// StatusDir returns the directory path backing a status column
func (ws *Workspace) StatusDir(status entities.TaskStatus) string {
	return filepath.Join(ws.root, string(status))
}

// EnsureLayout creates the status directories if they don't exist
func (ws *Workspace) EnsureLayout() error {
	for _, status := range entities.AllTaskStatuses {
		if err := os.MkdirAll(ws.StatusDir(status), 0o755); err != nil {
			return fmt.Errorf("failed to create status directory %s: %w", status, err)
		}
	}
	return nil
}

// HealthCheck verifies that every status directory is present and usable
func (ws *Workspace) HealthCheck() error {
	for _, status := range entities.AllTaskStatuses {
		info, err := os.Stat(ws.StatusDir(status))
		if err != nil {
			return fmt.Errorf("storage health check failed for %s: %w", status, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("storage health check failed: %s is not a directory", ws.StatusDir(status))
		}
	}
	return nil
}

// Stats returns per-column task file counts
func (ws *Workspace) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"root": ws.root,
	}

	for _, status := range entities.AllTaskStatuses {
		matches, err := filepath.Glob(filepath.Join(ws.StatusDir(status), "*.md"))
		if err != nil {
			stats[string(status)] = 0
			continue
		}
		stats[string(status)] = len(matches)
	}

	return stats
}

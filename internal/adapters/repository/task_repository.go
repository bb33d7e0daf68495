package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/infrastructure/storage"
	"github.com/kanbanboard/core/internal/ports"
)

// TaskRepositoryImpl stores tasks as markdown files, one file per task,
// placed in the directory named after the task's status. The directory
// placement is the source of truth for board membership; everything else
// lives in the file's frontmatter.
type TaskRepositoryImpl struct {
	workspace *storage.Workspace
	logger    *logger.Logger
}

func NewTaskRepository(workspace *storage.Workspace, appLogger *logger.Logger) ports.TaskRepository {
	return &TaskRepositoryImpl{
		workspace: workspace,
		logger:    appLogger.WithComponent("task_repository"),
	}
}

// generateTaskID returns "task-" followed by eight hex characters.
func generateTaskID() string {
	u := uuid.New()
	return fmt.Sprintf("task-%x", u[:4])
}

func (r *TaskRepositoryImpl) taskPath(status entities.TaskStatus, id string) string {
	return filepath.Join(r.workspace.StatusDir(status), id+".md")
}

// findTaskFile probes the status directories in their board order and
// returns the first file named after the task id.
func (r *TaskRepositoryImpl) findTaskFile(id string) (string, error) {
	for _, status := range entities.AllTaskStatuses {
		path := r.taskPath(status, id)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", entities.ErrTaskNotFound
}

func (r *TaskRepositoryImpl) readTask(path string) (*entities.Task, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return decodeTask(raw)
}

func (r *TaskRepositoryImpl) writeTask(path string, task *entities.Task) error {
	doc, err := encodeTask(task)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	now := time.Now().UTC()

	status := req.Status
	if status == "" {
		status = entities.TaskStatusTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	task := &entities.Task{
		ID:             generateTaskID(),
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		CreatedAt:      now,
		UpdatedAt:      &now,
		DueDate:        req.DueDate,
		Tags:           tags,
		Assignee:       req.Assignee,
		EstimatedHours: req.EstimatedHours,
		ParentID:       req.ParentID,
		Position:       req.Position,
	}

	if req.Content != nil {
		task.Content = *req.Content
	}
	if task.Content == "" {
		task.Content = task.DefaultContent()
	}

	if err := r.writeTask(r.taskPath(status, task.ID), task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	path, err := r.findTaskFile(id)
	if err != nil {
		return nil, err
	}
	task, err := r.readTask(path)
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	statuses := entities.AllTaskStatuses
	if filter.Status != nil {
		statuses = []entities.TaskStatus{*filter.Status}
	}

	var tasks []*entities.Task
	for _, status := range statuses {
		dir := r.workspace.StatusDir(status)
		entries, err := os.ReadDir(dir)
		if err != nil {
			// A missing column directory just contributes no tasks.
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			task, err := r.readTask(path)
			if err != nil {
				r.logger.Warnw("skipping unreadable task file", "file", path, "error", err)
				continue
			}
			if matchesFilter(task, filter) {
				tasks = append(tasks, task)
			}
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Status != tasks[j].Status {
			return tasks[i].Status < tasks[j].Status
		}
		return tasks[i].Position < tasks[j].Position
	})
	return tasks, nil
}

// matchesFilter applies the optional list criteria. Priority is compared as
// a raw string, so an unknown value simply matches nothing.
func matchesFilter(task *entities.Task, filter ports.TaskFilter) bool {
	if filter.Priority != nil && string(task.Priority) != *filter.Priority {
		return false
	}
	if filter.Assignee != nil {
		if task.Assignee == nil || *task.Assignee != *filter.Assignee {
			return false
		}
	}
	if len(filter.Tags) > 0 && !task.HasAnyTag(filter.Tags) {
		return false
	}
	if filter.Search != nil && !task.MatchesSearch(*filter.Search) {
		return false
	}
	return true
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	oldPath, err := r.findTaskFile(id)
	if err != nil {
		return nil, err
	}
	task, err := r.readTask(oldPath)
	if err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}

	statusChanged := req.Status != nil && *req.Status != task.Status

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Tags != nil {
		task.Tags = req.Tags
	}
	if req.Assignee != nil {
		task.Assignee = req.Assignee
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = req.EstimatedHours
	}
	if req.ActualHours != nil {
		task.ActualHours = req.ActualHours
	}
	if req.ParentID != nil {
		task.ParentID = req.ParentID
	}
	if req.Position != nil {
		task.Position = *req.Position
	}
	if req.Content != nil {
		task.Content = *req.Content
	}

	now := time.Now().UTC()
	task.UpdatedAt = &now

	newPath := oldPath
	if statusChanged {
		newPath = r.taskPath(task.Status, id)
	}
	if err := r.writeTask(newPath, task); err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}
	if statusChanged {
		if err := os.Remove(oldPath); err != nil {
			return nil, fmt.Errorf("update task %s: remove old file: %w", id, err)
		}
	}

	return task, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id string) error {
	path, err := r.findTaskFile(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

// Move is shorthand for an update that changes status and position.
func (r *TaskRepositoryImpl) Move(ctx context.Context, id string, status entities.TaskStatus, position int) (*entities.Task, error) {
	return r.Update(ctx, id, ports.UpdateTaskRequest{
		Status:   &status,
		Position: &position,
	})
}

// Reorder rewrites the position of every listed task inside one status
// directory, in list order. Ids without a file in that directory are
// skipped; tasks in other columns are never touched.
func (r *TaskRepositoryImpl) Reorder(ctx context.Context, status entities.TaskStatus, ids []string) error {
	dir := r.workspace.StatusDir(status)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return entities.ErrStatusDirNotFound
	}

	now := time.Now().UTC()
	for position, id := range ids {
		path := r.taskPath(status, id)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		task, err := r.readTask(path)
		if err != nil {
			r.logger.Warnw("skipping task during reorder", "task_id", id, "error", err)
			continue
		}
		task.Position = position
		task.UpdatedAt = &now
		if err := r.writeTask(path, task); err != nil {
			r.logger.Warnw("failed to rewrite task during reorder", "task_id", id, "error", err)
		}
	}
	return nil
}

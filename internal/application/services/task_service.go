package services

import (
	"context"
	"fmt"

	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/ports"
)

// TaskService handles task-related operations
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask creates a new task
func (s *TaskService) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infow("task created", "task_id", task.ID, "title", task.Title, "status", task.Status)

	return task, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	return task, nil
}

// ListTasks retrieves tasks matching the filter, in board order
func (s *TaskService) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, int, error) {
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, len(tasks), nil
}

// UpdateTask applies a partial update to a task
func (s *TaskService) UpdateTask(ctx context.Context, id string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	if req.IsEmpty() {
		return nil, entities.ErrNoFieldsToUpdate
	}

	task, err := s.taskRepo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Infow("task updated", "task_id", task.ID, "status", task.Status)

	return task, nil
}

// DeleteTask permanently deletes a task
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Infow("task deleted", "task_id", id)

	return nil
}

// MoveTask moves a task to another column at the given position
func (s *TaskService) MoveTask(ctx context.Context, id string, req ports.MoveTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.Move(ctx, id, req.Status, req.Position)
	if err != nil {
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	s.logger.Infow("task moved", "task_id", task.ID, "status", task.Status, "position", task.Position)

	return task, nil
}

// ReorderTasks rewrites task positions within one column to match the
// given id order
func (s *TaskService) ReorderTasks(ctx context.Context, status entities.TaskStatus, ids []string) error {
	if err := s.taskRepo.Reorder(ctx, status, ids); err != nil {
		return fmt.Errorf("failed to reorder tasks: %w", err)
	}

	s.logger.Infow("tasks reordered", "status", status, "count", len(ids))

	return nil
}

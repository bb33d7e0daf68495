package ports

import (
	"context"

	"github.com/kanbanboard/core/internal/domain/entities"
)

// TaskFilter defines filtering options for task listings. Priority stays a
// raw string: an unknown value matches nothing instead of failing the call.
type TaskFilter struct {
	Status   *entities.TaskStatus
	Priority *string
	Assignee *string
	Tags     []string
	Search   *string
}

// TaskRepository defines the interface for task persistence operations
type TaskRepository interface {
	Create(ctx context.Context, req CreateTaskRequest) (*entities.Task, error)
	GetByID(ctx context.Context, id string) (*entities.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*entities.Task, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (*entities.Task, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, id string, status entities.TaskStatus, position int) (*entities.Task, error)
	Reorder(ctx context.Context, status entities.TaskStatus, ids []string) error
}

package ports

import (
	"time"

	"github.com/kanbanboard/core/internal/domain/entities"
)

// CreateTaskRequest carries the accepted fields for creating a task. Status
// and priority default to todo/medium when left empty.
type CreateTaskRequest struct {
	Title          string              `json:"title" validate:"required,min=1,max=200"`
	Description    *string             `json:"description"`
	Status         entities.TaskStatus `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority       entities.Priority   `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	DueDate        *time.Time          `json:"due_date"`
	Tags           []string            `json:"tags"`
	Assignee       *string             `json:"assignee"`
	EstimatedHours *float64            `json:"estimated_hours" validate:"omitempty,gte=0"`
	ParentID       *string             `json:"parent_id"`
	Position       int                 `json:"position" validate:"gte=0"`
	Content        *string             `json:"content"`
}

// UpdateTaskRequest is a partial update: nil fields are left untouched.
type UpdateTaskRequest struct {
	Title          *string              `json:"title" validate:"omitempty,min=1,max=200"`
	Description    *string              `json:"description"`
	Status         *entities.TaskStatus `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority       *entities.Priority   `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	DueDate        *time.Time           `json:"due_date"`
	Tags           []string             `json:"tags"`
	Assignee       *string              `json:"assignee"`
	EstimatedHours *float64             `json:"estimated_hours" validate:"omitempty,gte=0"`
	ActualHours    *float64             `json:"actual_hours" validate:"omitempty,gte=0"`
	ParentID       *string              `json:"parent_id"`
	Position       *int                 `json:"position" validate:"omitempty,gte=0"`
	Content        *string              `json:"content"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (r UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil && r.Priority == nil &&
		r.DueDate == nil && r.Tags == nil && r.Assignee == nil && r.EstimatedHours == nil &&
		r.ActualHours == nil && r.ParentID == nil && r.Position == nil && r.Content == nil
}

// MoveTaskRequest relocates a task to a status column and position.
type MoveTaskRequest struct {
	Status   entities.TaskStatus `json:"status" validate:"required,oneof=todo in_progress done"`
	Position int                 `json:"position" validate:"gte=0"`
}

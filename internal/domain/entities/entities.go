package entities

import (
	"errors"
	"strings"
	"time"
)

// Common errors
var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrStatusDirNotFound      = errors.New("status directory not found")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidPriority        = errors.New("invalid priority")
	ErrNoFieldsToUpdate       = errors.New("no fields to update")
	ErrIntegrationUnavailable = errors.New("integration unavailable")
)

// Enums and types
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// AllTaskStatuses lists the status columns in their scan order. The order
// also fixes which directory wins when probing for a task file.
var AllTaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Task represents a single card on the board. Each task is persisted as one
// markdown file: every field except Content goes into the YAML frontmatter,
// Content is the free-text body below it. Optional fields stay pointers so
// unset values render as null in API responses while being omitted from the
// frontmatter.
type Task struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	Status            TaskStatus `json:"status"`
	Priority          Priority   `json:"priority"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
	DueDate           *time.Time `json:"due_date"`
	Tags              []string   `json:"tags"`
	Assignee          *string    `json:"assignee"`
	EstimatedHours    *float64   `json:"estimated_hours"`
	ActualHours       *float64   `json:"actual_hours"`
	ParentID          *string    `json:"parent_id"`
	Position          int        `json:"position"`
	CalendarEventID   *string    `json:"calendar_event_id"`
	TelegramMessageID *string    `json:"telegram_message_id"`
	Content           string     `json:"content"`
}

// Business logic methods for Task

// HasAnyTag reports whether the task carries at least one of the given tags.
func (t *Task) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range t.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// MatchesSearch reports whether the query occurs in the title or, when the
// task has one, in the description. Matching is case-insensitive.
func (t *Task) MatchesSearch(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	return t.Description != nil && strings.Contains(strings.ToLower(*t.Description), q)
}

func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return time.Now().After(*t.DueDate) && t.Status != TaskStatusDone
}

// DefaultContent builds the templated markdown body used when a task is
// created without one.
func (t *Task) DefaultContent() string {
	description := "Описание задачи..."
	if t.Description != nil && *t.Description != "" {
		description = *t.Description
	}

	var b strings.Builder
	b.WriteString("# " + t.Title + "\n\n")
	b.WriteString("## Описание\n\n")
	b.WriteString(description + "\n\n")
	b.WriteString("## Требования\n\n")
	b.WriteString("- [ ] Требование 1\n")
	b.WriteString("- [ ] Требование 2\n\n")
	b.WriteString("## Примечания\n\n")
	b.WriteString("Дополнительные заметки...\n\n")
	return b.String()
}

// FileName returns the name of the markdown file backing this task.
func (t *Task) FileName() string {
	return t.ID + ".md"
}

// Utility methods
func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

package repository

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kanbanboard/core/internal/domain/entities"
)

const frontmatterFence = "---"

// taskFrontmatter is the YAML shape of the metadata block at the top of a
// task file. Timestamps travel as ISO 8601 strings rather than yaml
// timestamps so that files written by other tooling stay readable
// regardless of quoting and offset style.
type taskFrontmatter struct {
	ID                string              `yaml:"id"`
	Title             string              `yaml:"title"`
	Description       *string             `yaml:"description,omitempty"`
	Status            entities.TaskStatus `yaml:"status"`
	Priority          entities.Priority   `yaml:"priority"`
	CreatedAt         string              `yaml:"created_at,omitempty"`
	UpdatedAt         string              `yaml:"updated_at,omitempty"`
	DueDate           string              `yaml:"due_date,omitempty"`
	Tags              []string            `yaml:"tags"`
	Assignee          *string             `yaml:"assignee,omitempty"`
	EstimatedHours    *float64            `yaml:"estimated_hours,omitempty"`
	ActualHours       *float64            `yaml:"actual_hours,omitempty"`
	ParentID          *string             `yaml:"parent_id,omitempty"`
	Position          int                 `yaml:"position"`
	CalendarEventID   *string             `yaml:"calendar_event_id,omitempty"`
	TelegramMessageID *string             `yaml:"telegram_message_id,omitempty"`
}

// encodeTask renders a task as a markdown document: YAML frontmatter between
// two fences, a blank line, then the body verbatim.
func encodeTask(task *entities.Task) ([]byte, error) {
	fm := taskFrontmatter{
		ID:                task.ID,
		Title:             task.Title,
		Description:       task.Description,
		Status:            task.Status,
		Priority:          task.Priority,
		CreatedAt:         formatTimestamp(task.CreatedAt),
		Tags:              task.Tags,
		Assignee:          task.Assignee,
		EstimatedHours:    task.EstimatedHours,
		ActualHours:       task.ActualHours,
		ParentID:          task.ParentID,
		Position:          task.Position,
		CalendarEventID:   task.CalendarEventID,
		TelegramMessageID: task.TelegramMessageID,
	}
	if task.UpdatedAt != nil {
		fm.UpdatedAt = formatTimestamp(*task.UpdatedAt)
	}
	if task.DueDate != nil {
		fm.DueDate = formatTimestamp(*task.DueDate)
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	meta, err := yaml.Marshal(&fm)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontmatterFence + "\n")
	buf.Write(meta)
	buf.WriteString(frontmatterFence + "\n\n")
	buf.WriteString(task.Content)
	return buf.Bytes(), nil
}

// decodeTask parses a task file back into a Task. Missing status, priority
// and created_at fall back to their defaults; a missing id or title makes
// the file unusable and is reported as an error.
func decodeTask(raw []byte) (*entities.Task, error) {
	meta, body, err := splitFrontmatter(string(raw))
	if err != nil {
		return nil, err
	}

	var fm taskFrontmatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if fm.ID == "" {
		return nil, fmt.Errorf("frontmatter has no task id")
	}
	if fm.Title == "" {
		return nil, fmt.Errorf("frontmatter has no title")
	}
	if fm.Status == "" {
		fm.Status = entities.TaskStatusTodo
	}
	if !fm.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidStatus, fm.Status)
	}
	if fm.Priority == "" {
		fm.Priority = entities.PriorityMedium
	}
	if !fm.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidPriority, fm.Priority)
	}

	task := &entities.Task{
		ID:                fm.ID,
		Title:             fm.Title,
		Description:       fm.Description,
		Status:            fm.Status,
		Priority:          fm.Priority,
		Tags:              fm.Tags,
		Assignee:          fm.Assignee,
		EstimatedHours:    fm.EstimatedHours,
		ActualHours:       fm.ActualHours,
		ParentID:          fm.ParentID,
		Position:          fm.Position,
		CalendarEventID:   fm.CalendarEventID,
		TelegramMessageID: fm.TelegramMessageID,
		Content:           body,
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	if fm.CreatedAt != "" {
		created, err := parseTimestamp(fm.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		task.CreatedAt = created
	} else {
		task.CreatedAt = time.Now().UTC()
	}
	if fm.UpdatedAt != "" {
		updated, err := parseTimestamp(fm.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}
		task.UpdatedAt = &updated
	}
	if fm.DueDate != "" {
		due, err := parseTimestamp(fm.DueDate)
		if err != nil {
			return nil, fmt.Errorf("parse due_date: %w", err)
		}
		task.DueDate = &due
	}

	return task, nil
}

// splitFrontmatter cuts a document into the YAML block between the two
// fences and the body after the closing fence. The single blank line that
// encodeTask inserts after the closing fence is stripped so the body round
// trips byte for byte.
func splitFrontmatter(doc string) (meta, body string, err error) {
	if !strings.HasPrefix(doc, frontmatterFence+"\n") {
		return "", "", fmt.Errorf("missing frontmatter start fence")
	}
	rest := doc[len(frontmatterFence)+1:]

	marker := "\n" + frontmatterFence + "\n"
	if idx := strings.Index(rest, marker); idx >= 0 {
		meta = rest[:idx+1]
		body = strings.TrimPrefix(rest[idx+len(marker):], "\n")
		return meta, body, nil
	}
	if strings.HasSuffix(rest, "\n"+frontmatterFence) {
		return strings.TrimSuffix(rest, frontmatterFence), "", nil
	}
	return "", "", fmt.Errorf("missing frontmatter end fence")
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// parseTimestamp accepts RFC 3339 with either Z or a numeric offset, plus
// offset-less local forms, with or without fractional seconds.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

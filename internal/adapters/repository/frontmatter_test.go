package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanbanboard/core/internal/domain/entities"
)

func TestEncodeTaskLayout(t *testing.T) {
	task := &entities.Task{
		ID:        "task-1a2b3c4d",
		Title:     "Write docs",
		Status:    entities.TaskStatusTodo,
		Priority:  entities.PriorityMedium,
		CreatedAt: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		Tags:      []string{"docs"},
		Content:   "# Write docs\n",
	}

	doc, err := encodeTask(task)
	require.NoError(t, err)

	text := string(doc)
	assert.True(t, strings.HasPrefix(text, "---\n"))
	assert.Contains(t, text, "id: task-1a2b3c4d\n")
	assert.Contains(t, text, "status: todo\n")
	assert.Contains(t, text, "\n---\n\n# Write docs\n")
	assert.True(t, strings.HasSuffix(text, task.Content))

	// Unset optional fields stay out of the frontmatter.
	assert.NotContains(t, text, "description:")
	assert.NotContains(t, text, "due_date:")
	assert.NotContains(t, text, "assignee:")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	due := created.Add(48 * time.Hour)
	description := "Collect the launch checklist"
	assignee := "alex"
	estimated := 4.5
	actual := 2.0
	parent := "task-00aa11bb"

	task := &entities.Task{
		ID:             "task-9f8e7d6c",
		Title:          "Prepare release",
		Description:    &description,
		Status:         entities.TaskStatusInProgress,
		Priority:       entities.PriorityHigh,
		CreatedAt:      created,
		UpdatedAt:      &updated,
		DueDate:        &due,
		Tags:           []string{"release", "ops"},
		Assignee:       &assignee,
		EstimatedHours: &estimated,
		ActualHours:    &actual,
		ParentID:       &parent,
		Position:       3,
		Content:        "# Prepare release\n\nSteps follow.\n\n",
	}

	doc, err := encodeTask(task)
	require.NoError(t, err)

	got, err := decodeTask(doc)
	require.NoError(t, err)

	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, &description, got.Description)
	assert.Equal(t, task.Status, got.Status)
	assert.Equal(t, task.Priority, got.Priority)
	assert.True(t, created.Equal(got.CreatedAt))
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, updated.Equal(*got.UpdatedAt))
	require.NotNil(t, got.DueDate)
	assert.True(t, due.Equal(*got.DueDate))
	assert.Equal(t, task.Tags, got.Tags)
	assert.Equal(t, &assignee, got.Assignee)
	assert.Equal(t, &estimated, got.EstimatedHours)
	assert.Equal(t, &actual, got.ActualHours)
	assert.Equal(t, &parent, got.ParentID)
	assert.Equal(t, 3, got.Position)

	// The body survives byte for byte, trailing newlines included.
	assert.Equal(t, task.Content, got.Content)
}

// Files written by earlier tooling quote their timestamps and use numeric
// offsets instead of Z. They must stay readable.
func TestDecodeTaskLegacyFrontmatter(t *testing.T) {
	doc := `---
id: task-9f8e7d6c
title: Перенести данные
description: 'Старая задача'
status: in_progress
priority: high
created_at: '2025-03-10T08:15:30.123456+00:00'
updated_at: '2025-03-11T09:00:00+00:00'
tags:
- backend
assignee: alex
position: 2
---

# Перенести данные
`

	task, err := decodeTask([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "task-9f8e7d6c", task.ID)
	assert.Equal(t, "Перенести данные", task.Title)
	require.NotNil(t, task.Description)
	assert.Equal(t, "Старая задача", *task.Description)
	assert.Equal(t, entities.TaskStatusInProgress, task.Status)
	assert.Equal(t, entities.PriorityHigh, task.Priority)
	assert.True(t, time.Date(2025, 3, 10, 8, 15, 30, 123456000, time.UTC).Equal(task.CreatedAt))
	require.NotNil(t, task.UpdatedAt)
	assert.True(t, time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC).Equal(*task.UpdatedAt))
	assert.Equal(t, []string{"backend"}, task.Tags)
	assert.Equal(t, 2, task.Position)
	assert.Equal(t, "# Перенести данные\n", task.Content)
}

func TestDecodeTaskDefaults(t *testing.T) {
	doc := "---\nid: task-0a0b0c0d\ntitle: Bare task\n---\n"

	task, err := decodeTask([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, entities.TaskStatusTodo, task.Status)
	assert.Equal(t, entities.PriorityMedium, task.Priority)
	assert.NotNil(t, task.Tags)
	assert.Empty(t, task.Tags)
	assert.WithinDuration(t, time.Now().UTC(), task.CreatedAt, 5*time.Second)
	assert.Equal(t, "", task.Content)
}

func TestDecodeTaskRejectsBrokenMetadata(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"missing id", "---\ntitle: No id\n---\n\nbody\n", nil},
		{"missing title", "---\nid: task-11112222\n---\n\nbody\n", nil},
		{"invalid status", "---\nid: task-11112222\ntitle: T\nstatus: archived\n---\n\n", entities.ErrInvalidStatus},
		{"invalid priority", "---\nid: task-11112222\ntitle: T\npriority: urgent\n---\n\n", entities.ErrInvalidPriority},
		{"no start fence", "id: task-11112222\n", nil},
		{"unterminated fence", "---\nid: task-11112222\ntitle: T\n\nbody\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeTask([]byte(tt.doc))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestSplitFrontmatterFenceAtEOF(t *testing.T) {
	meta, body, err := splitFrontmatter("---\nid: task-11112222\ntitle: T\n---")
	require.NoError(t, err)
	assert.Equal(t, "id: task-11112222\ntitle: T\n", meta)
	assert.Equal(t, "", body)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2026-08-25T10:00:00Z", time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)},
		{"2026-08-25T10:00:00+00:00", time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)},
		{"2026-08-25T10:00:00.123456+00:00", time.Date(2026, 8, 25, 10, 0, 0, 123456000, time.UTC)},
		{"2026-08-25T10:00:00", time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)},
		{"2026-08-25", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := parseTimestamp(tt.value)
		require.NoError(t, err, "value %q", tt.value)
		assert.True(t, tt.want.Equal(got), "value %q parsed to %v", tt.value, got)
	}

	_, err := parseTimestamp("not a timestamp")
	assert.Error(t, err)
}

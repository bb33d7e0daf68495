package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanbanboard/core/internal/application/services"
	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService *services.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask godoc
// @Summary Create a new task
// @Description Create a new task on the board
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body ports.CreateTaskRequest true "Task data"
// @Success 201 {object} entities.Task
// @Failure 400 {object} MessageResponse
// @Failure 422 {object} MessageResponse
// @Router /api/tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		h.logger.Errorw("create task failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask godoc
// @Summary Get task by ID
// @Description Get a single task by its ID
// @Tags tasks
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 200 {object} entities.Task
// @Failure 404 {object} MessageResponse
// @Router /api/tasks/{task_id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	taskID := c.Param("task_id")

	task, err := h.taskService.GetTask(c.Request().Context(), taskID)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Task %s not found", taskID))
		}
		h.logger.Errorw("get task failed", "error", err, "task_id", taskID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get task")
	}

	return c.JSON(http.StatusOK, task)
}

// ListTasks godoc
// @Summary List tasks
// @Description List tasks with optional filters, ordered by status and position
// @Tags tasks
// @Produce json
// @Param status query string false "Filter by status" Enums(todo, in_progress, done)
// @Param priority query string false "Filter by priority"
// @Param assignee query string false "Filter by assignee"
// @Param tags query []string false "Filter by tags, any match" collectionFormat(multi)
// @Param search query string false "Search in title and description"
// @Success 200 {object} TaskListResponse
// @Failure 422 {object} MessageResponse
// @Router /api/tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	filter := ports.TaskFilter{}

	if statusParam := c.QueryParam("status"); statusParam != "" {
		status := entities.TaskStatus(statusParam)
		if !status.IsValid() {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("Invalid status value: %s", statusParam))
		}
		filter.Status = &status
	}
	if priority := c.QueryParam("priority"); priority != "" {
		filter.Priority = &priority
	}
	if assignee := c.QueryParam("assignee"); assignee != "" {
		filter.Assignee = &assignee
	}
	if tags, ok := c.QueryParams()["tags"]; ok {
		filter.Tags = tags
	}
	if search := c.QueryParam("search"); search != "" {
		filter.Search = &search
	}

	tasks, total, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		h.logger.Errorw("list tasks failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list tasks")
	}
	if tasks == nil {
		tasks = []*entities.Task{}
	}

	return c.JSON(http.StatusOK, TaskListResponse{Tasks: tasks, Total: total})
}

// UpdateTask godoc
// @Summary Update a task
// @Description Apply a partial update to a task. Fields left out stay unchanged.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task_id path string true "Task ID"
// @Param request body ports.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} entities.Task
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 422 {object} MessageResponse
// @Router /api/tasks/{task_id} [patch]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	taskID := c.Param("task_id")

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), taskID, req)
	if err != nil {
		if errors.Is(err, entities.ErrNoFieldsToUpdate) {
			return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
		}
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Task %s not found", taskID))
		}
		h.logger.Errorw("update task failed", "error", err, "task_id", taskID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Description Permanently delete a task
// @Tags tasks
// @Param task_id path string true "Task ID"
// @Success 204
// @Failure 404 {object} MessageResponse
// @Router /api/tasks/{task_id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	taskID := c.Param("task_id")

	if err := h.taskService.DeleteTask(c.Request().Context(), taskID); err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Task %s not found", taskID))
		}
		h.logger.Errorw("delete task failed", "error", err, "task_id", taskID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete task")
	}

	return c.NoContent(http.StatusNoContent)
}

// MoveTask godoc
// @Summary Move a task
// @Description Move a task to another status column at the given position
// @Tags tasks
// @Accept json
// @Produce json
// @Param task_id path string true "Task ID"
// @Param request body ports.MoveTaskRequest true "Target status and position"
// @Success 200 {object} entities.Task
// @Failure 404 {object} MessageResponse
// @Failure 422 {object} MessageResponse
// @Router /api/tasks/{task_id}/move [post]
func (h *TaskHandler) MoveTask(c echo.Context) error {
	taskID := c.Param("task_id")

	var req ports.MoveTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.taskService.MoveTask(c.Request().Context(), taskID, req)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Task %s not found", taskID))
		}
		h.logger.Errorw("move task failed", "error", err, "task_id", taskID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to move task")
	}

	return c.JSON(http.StatusOK, task)
}

// ReorderTasks godoc
// @Summary Reorder tasks in a column
// @Description Rewrite task positions inside one status column to match the given order
// @Tags tasks
// @Accept json
// @Produce json
// @Param status path string true "Status column" Enums(todo, in_progress, done)
// @Param request body []string true "Ordered task IDs"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 422 {object} MessageResponse
// @Router /api/tasks/reorder/{status} [post]
func (h *TaskHandler) ReorderTasks(c echo.Context) error {
	statusParam := c.Param("status")
	status := entities.TaskStatus(statusParam)
	if !status.IsValid() {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("Invalid status value: %s", statusParam))
	}

	var taskIDs []string
	if err := c.Bind(&taskIDs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.taskService.ReorderTasks(c.Request().Context(), status, taskIDs); err != nil {
		if errors.Is(err, entities.ErrStatusDirNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "Failed to reorder tasks")
		}
		h.logger.Errorw("reorder tasks failed", "error", err, "status", status)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to reorder tasks")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Tasks reordered successfully"})
}

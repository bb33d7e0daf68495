// Package http contains the echo handlers for the board API.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanbanboard/core/internal/application/services"
	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
)

// AIHandler handles analysis requests
type AIHandler struct {
	analysisService *services.AnalysisService
	taskService     *services.TaskService
	logger          *logger.Logger
}

// NewAIHandler creates a new AI handler
func NewAIHandler(analysisService *services.AnalysisService, taskService *services.TaskService, logger *logger.Logger) *AIHandler {
	return &AIHandler{
		analysisService: analysisService,
		taskService:     taskService,
		logger:          logger,
	}
}

// AnalyzeTask handles task analysis requests. The task id is optional; when
// present the task is loaded and projected into the provider request.
func (h *AIHandler) AnalyzeTask(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	var task *entities.Task
	if req.TaskID != nil && *req.TaskID != "" {
		var err error
		task, err = h.taskService.GetTask(c.Request().Context(), *req.TaskID)
		if err != nil {
			if errors.Is(err, entities.ErrTaskNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Task %s not found", *req.TaskID))
			}
			h.logger.Errorw("load task for analysis failed", "error", err, "task_id", *req.TaskID)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get task")
		}
	}

	analysis, err := h.analysisService.AnalyzeTask(c.Request().Context(), task)
	if err != nil {
		h.logger.Errorw("analysis failed", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: analysis})
}

// GenerateDescription handles description generation requests
func (h *AIHandler) GenerateDescription(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Generate description - Phase 3 implementation pending"})
}

// BreakdownTask handles task breakdown requests
func (h *AIHandler) BreakdownTask(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Breakdown task - Phase 3 implementation pending"})
}

// IntegrationHandler handles the calendar and telegram endpoints
type IntegrationHandler struct {
	logger *logger.Logger
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(logger *logger.Logger) *IntegrationHandler {
	return &IntegrationHandler{logger: logger}
}

// CalendarAuth starts the calendar authorization flow
func (h *IntegrationHandler) CalendarAuth(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Calendar auth - Phase 2 implementation pending"})
}

// SyncTaskToCalendar syncs a task to the calendar
func (h *IntegrationHandler) SyncTaskToCalendar(c echo.Context) error {
	taskID := c.Param("task_id")
	return c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Sync task %s - Phase 2 implementation pending", taskID)})
}

// TelegramWebhook receives telegram bot updates
func (h *IntegrationHandler) TelegramWebhook(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Telegram webhook - Phase 2 implementation pending"})
}

// TelegramStatus reports the telegram bot status
func (h *IntegrationHandler) TelegramStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Telegram status - Phase 2 implementation pending"})
}

// Request/Response types

type AnalyzeRequest struct {
	TaskID *string `json:"task_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TaskListResponse struct {
	Tasks []*entities.Task `json:"tasks"`
	Total int              `json:"total"`
}

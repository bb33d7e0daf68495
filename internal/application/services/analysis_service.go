package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/config"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/ports"
)

// AnalysisService runs tasks through the configured analysis provider
type AnalysisService struct {
	provider ports.Analyzer
	timeout  time.Duration
	logger   *logger.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(provider ports.Analyzer, cfg config.AIConfig, logger *logger.Logger) *AnalysisService {
	return &AnalysisService{
		provider: provider,
		timeout:  cfg.ProviderTimeout(),
		logger:   logger,
	}
}

// AnalyzeTask sends a projection of the task to the provider and returns
// its verdict. A nil task asks the provider for a general analysis.
func (s *AnalysisService) AnalyzeTask(ctx context.Context, task *entities.Task) (string, error) {
	var req ports.AnalysisRequest
	if task != nil {
		req = ports.AnalysisRequest{
			Title:          task.Title,
			Priority:       task.Priority,
			Status:         task.Status,
			Tags:           task.Tags,
			DueDate:        task.DueDate,
			EstimatedHours: task.EstimatedHours,
			CreatedAt:      task.CreatedAt,
		}
		if task.Description != nil {
			req.Description = *task.Description
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	analysis, err := s.provider.Analyze(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to analyze task: %w", err)
	}

	if task != nil {
		s.logger.Infow("task analyzed", "task_id", task.ID)
	}

	return analysis, nil
}

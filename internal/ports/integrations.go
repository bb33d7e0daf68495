package ports

import (
	"context"
	"time"

	"github.com/kanbanboard/core/internal/domain/entities"
)

// AnalysisRequest is the flattened task projection handed to an AI provider.
type AnalysisRequest struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Priority       entities.Priority   `json:"priority"`
	Status         entities.TaskStatus `json:"status"`
	Tags           []string            `json:"tags"`
	DueDate        *time.Time          `json:"due_date"`
	EstimatedHours *float64            `json:"estimated_hours"`
	CreatedAt      time.Time           `json:"created_at"`
}

// Analyzer is the boundary to an AI analysis provider. The returned string
// is free-text analysis or a full report.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalysisRequest) (string, error)
}

// ReportUpload is the payload for uploading a board report.
type ReportUpload struct {
	Filename  string `json:"filename" validate:"required"`
	Content   string `json:"content" validate:"required"`
	TaskTitle string `json:"task_title"`
}

// UploadedReport describes a report file after upload.
type UploadedReport struct {
	FileID     string
	Filename   string
	ViewURL    string
	CreatedAt  string
	FolderName string
}

// DriveFile is one entry of a report listing.
type DriveFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ViewURL      string `json:"webViewLink,omitempty"`
	CreatedTime  string `json:"createdTime,omitempty"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
}

// ReportUploader is the boundary to the cloud storage holding board reports.
// The bearer token is supplied per call and passed through opaquely.
type ReportUploader interface {
	UploadReport(ctx context.Context, token string, upload ReportUpload) (*UploadedReport, error)
	ListReports(ctx context.Context, token string) ([]DriveFile, error)
}

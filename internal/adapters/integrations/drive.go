package integrations

import (
	"context"
	"fmt"

	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/config"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/ports"
)

// reportsFolderName is the Drive folder task reports are uploaded into.
const reportsFolderName = "Kanban reports"

// DriveUploader is the Google Drive report store. The credential plumbing
// and the port contract are in place; the Drive client itself is not wired
// yet, so every call reports the integration as unavailable.
type DriveUploader struct {
	cfg    config.GoogleConfig
	logger *logger.Logger
}

func NewDriveUploader(cfg config.GoogleConfig, appLogger *logger.Logger) ports.ReportUploader {
	return &DriveUploader{
		cfg:    cfg,
		logger: appLogger.WithComponent("drive"),
	}
}

func (d *DriveUploader) UploadReport(ctx context.Context, token string, req ports.ReportUpload) (*ports.UploadedReport, error) {
	if !d.cfg.Configured() {
		return nil, fmt.Errorf("%w: google credentials are not configured", entities.ErrIntegrationUnavailable)
	}
	d.logger.Warnw("drive upload requested before the client is wired", "filename", req.Filename, "folder", reportsFolderName)
	return nil, fmt.Errorf("%w: drive upload is pending implementation", entities.ErrIntegrationUnavailable)
}

func (d *DriveUploader) ListReports(ctx context.Context, token string) ([]ports.DriveFile, error) {
	if !d.cfg.Configured() {
		return nil, fmt.Errorf("%w: google credentials are not configured", entities.ErrIntegrationUnavailable)
	}
	return nil, fmt.Errorf("%w: drive listing is pending implementation", entities.ErrIntegrationUnavailable)
}

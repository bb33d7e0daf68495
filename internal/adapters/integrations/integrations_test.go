package integrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanbanboard/core/internal/adapters/integrations"
	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/config"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/ports"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(config.LoggerConfig{Level: "error", Format: "console", Output: "stdout"})
	require.NoError(t, err)
	return l
}

func TestPendingAnalyzer(t *testing.T) {
	analyzer := integrations.NewPendingAnalyzer("groq")

	assert.Equal(t, "groq", analyzer.Provider())

	analysis, err := analyzer.Analyze(context.Background(), ports.AnalysisRequest{Title: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "AI analyze - Phase 3 implementation pending", analysis)
}

func TestDriveUploaderWithoutCredentials(t *testing.T) {
	uploader := integrations.NewDriveUploader(config.GoogleConfig{}, newTestLogger(t))

	_, err := uploader.UploadReport(context.Background(), "token", ports.ReportUpload{
		Filename: "report.md",
		Content:  "# Report",
	})
	require.ErrorIs(t, err, entities.ErrIntegrationUnavailable)
	assert.Contains(t, err.Error(), "google credentials are not configured")

	_, err = uploader.ListReports(context.Background(), "token")
	require.ErrorIs(t, err, entities.ErrIntegrationUnavailable)
}

func TestDriveUploaderPendingClient(t *testing.T) {
	cfg := config.GoogleConfig{ClientID: "id", ClientSecret: "secret"}
	uploader := integrations.NewDriveUploader(cfg, newTestLogger(t))

	_, err := uploader.UploadReport(context.Background(), "token", ports.ReportUpload{
		Filename: "report.md",
		Content:  "# Report",
	})
	require.ErrorIs(t, err, entities.ErrIntegrationUnavailable)
	assert.Contains(t, err.Error(), "pending implementation")

	_, err = uploader.ListReports(context.Background(), "token")
	require.ErrorIs(t, err, entities.ErrIntegrationUnavailable)
	assert.Contains(t, err.Error(), "pending implementation")
}

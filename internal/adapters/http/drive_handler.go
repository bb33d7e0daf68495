package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kanbanboard/core/internal/domain/entities"
	"github.com/kanbanboard/core/internal/infrastructure/logger"
	"github.com/kanbanboard/core/internal/ports"
)

// DriveHandler handles report upload and listing against the drive store
type DriveHandler struct {
	uploader ports.ReportUploader
	logger   *logger.Logger
}

// NewDriveHandler creates a new drive handler
func NewDriveHandler(uploader ports.ReportUploader, logger *logger.Logger) *DriveHandler {
	return &DriveHandler{
		uploader: uploader,
		logger:   logger,
	}
}

// bearerToken extracts the caller's access token from the Authorization
// header. A bare token without the Bearer prefix is accepted as is.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header required")
	}
	return strings.TrimPrefix(header, "Bearer "), nil
}

// UploadReport godoc
// @Summary Upload a task report
// @Description Upload a report file into the reports folder using the caller's access token
// @Tags drive
// @Accept json
// @Produce json
// @Param Authorization header string true "Access token"
// @Param request body ports.ReportUpload true "Report data"
// @Success 200 {object} UploadReportResponse
// @Failure 401 {object} MessageResponse
// @Failure 503 {object} MessageResponse
// @Router /api/drive/upload [post]
func (h *DriveHandler) UploadReport(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	var req ports.ReportUpload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	report, err := h.uploader.UploadReport(c.Request().Context(), token, req)
	if err != nil {
		if errors.Is(err, entities.ErrIntegrationUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		h.logger.Errorw("report upload failed", "error", err, "filename", req.Filename)
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Upload failed: %s", err))
	}

	return c.JSON(http.StatusOK, UploadReportResponse{
		Success:    true,
		FileID:     report.FileID,
		Filename:   report.Filename,
		ViewURL:    report.ViewURL,
		FolderName: report.FolderName,
		Message:    fmt.Sprintf("Report uploaded successfully to '%s' folder", report.FolderName),
	})
}

// ListReports godoc
// @Summary List uploaded reports
// @Description List the report files in the reports folder, newest first
// @Tags drive
// @Produce json
// @Param Authorization header string true "Access token"
// @Success 200 {object} ReportListResponse
// @Failure 401 {object} MessageResponse
// @Failure 503 {object} MessageResponse
// @Router /api/drive/reports [get]
func (h *DriveHandler) ListReports(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	reports, err := h.uploader.ListReports(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, entities.ErrIntegrationUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		h.logger.Errorw("list reports failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Failed to list reports: %s", err))
	}
	if reports == nil {
		reports = []ports.DriveFile{}
	}

	return c.JSON(http.StatusOK, ReportListResponse{Reports: reports, Count: len(reports)})
}

type UploadReportResponse struct {
	Success    bool   `json:"success"`
	FileID     string `json:"file_id"`
	Filename   string `json:"filename"`
	ViewURL    string `json:"view_url"`
	FolderName string `json:"folder_name"`
	Message    string `json:"message"`
}

type ReportListResponse struct {
	Reports []ports.DriveFile `json:"reports"`
	Count   int               `json:"count"`
}

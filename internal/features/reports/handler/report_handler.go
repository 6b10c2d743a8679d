package handler

import (
	"errors"
	"os"
	"path/filepath"

	"coupon-report/internal/core/logger"
	"coupon-report/internal/features/reports/domain"
	"coupon-report/internal/features/reports/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReportHandler handles HTTP requests for coupon reports.
type ReportHandler struct {
	runner    ports.ReportRunner
	outputDir string
}

// NewReportHandler creates a new ReportHandler serving files from outputDir.
func NewReportHandler(runner ports.ReportRunner, outputDir string) *ReportHandler {
	return &ReportHandler{
		runner:    runner,
		outputDir: outputDir,
	}
}

// GenerateReportRequest is the body of a report trigger.
type GenerateReportRequest struct {
	// StartDate is the first day, YYYY-MM-DD.
	StartDate string `json:"start_date"`
	// EndDate is the last day, YYYY-MM-DD.
	EndDate string `json:"end_date"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID,
	})
}

// GenerateReport godoc
// @Summary Start a coupon report
// @Description Starts a report generation for an inclusive range of days in the background. Only one generation runs at a time.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body GenerateReportRequest true "Report range"
// @Success 202 {object} domain.Status
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	var req GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.runner.Trigger(req.StartDate, req.EndDate); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingDates):
			return errorResponse(c, fiber.StatusBadRequest, domain.MissingDatesMessage)
		case errors.Is(err, domain.ErrInvalidDateFormat), errors.Is(err, domain.ErrInvalidDateRange):
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrReportInProgress):
			return errorResponse(c, fiber.StatusConflict, err.Error())
		}
		logger.Get().Error("Failed to start report", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "internal server error")
	}

	status, err := h.runner.Status(c.Context())
	if err != nil {
		logger.Get().Error("Failed to read report status", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "internal server error")
	}

	return c.Status(fiber.StatusAccepted).JSON(status)
}

// GetStatus godoc
// @Summary Get the report status
// @Description Returns the outcome of the latest report generation, or IN_PROGRESS while one is running.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.Status
// @Failure 500 {object} ErrorResponse
// @Router /reports/status [get]
func (h *ReportHandler) GetStatus(c *fiber.Ctx) error {
	status, err := h.runner.Status(c.Context())
	if err != nil {
		logger.Get().Error("Failed to read report status", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "internal server error")
	}

	return c.JSON(status)
}

// DownloadReport godoc
// @Summary Download a report spreadsheet
// @Description Downloads a previously generated xlsx report by file name.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param name path string true "Report file name (cupons_dia_YYYY-MM-DD_HHMMSS.xlsx)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/files/{name} [get]
func (h *ReportHandler) DownloadReport(c *fiber.Ctx) error {
	name := c.Params("name")
	if !domain.IsReportFileName(name) {
		return errorResponse(c, fiber.StatusBadRequest, "invalid report file name")
	}

	path := filepath.Join(h.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errorResponse(c, fiber.StatusNotFound, "report not found")
		}
		logger.Get().Error("Failed to stat report", zap.String("path", path), zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "internal server error")
	}

	return c.Download(path, name)
}

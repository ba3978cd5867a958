package handler

import (
	"context"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docanalyzer/internal/domain"
	"docanalyzer/internal/service"
)

// ExportHandler serves downloadable exports of the session's analyses.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

type exportFunc func(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error)

func (h *ExportHandler) serve(c *gin.Context, export exportFunc) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	art, err := export(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	if art == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": art.Filename}))
	c.Data(http.StatusOK, art.ContentType, art.Content)
}

// Text handles GET /api/v1/export/text
// @Summary Export the displayed analysis as text
// @Description Downloads the summary of the displayed record as <filename>_analysis.txt
// @Tags export
// @Produce plain
// @Success 200 {file} file "Summary text"
// @Success 204 "Nothing displayed"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /export/text [get]
func (h *ExportHandler) Text(c *gin.Context) {
	h.serve(c, h.exportService.ExportText)
}

// PDF handles GET /api/v1/export/pdf
// @Summary Export the displayed analysis as PDF
// @Description Not available yet; always answers with a notice
// @Tags export
// @Produce json
// @Failure 501 {object} ErrorResponseBody "PDF export unavailable"
// @Security BearerAuth
// @Router /export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	h.serve(c, h.exportService.ExportPDF)
}

// HistoryCSV handles GET /api/v1/export/history.csv
// @Summary Export history as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {file} file "CSV file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /export/history.csv [get]
func (h *ExportHandler) HistoryCSV(c *gin.Context) {
	h.serve(c, h.exportService.ExportHistoryCSV)
}

// HistoryXLSX handles GET /api/v1/export/history.xlsx
// @Summary Export history as an Excel workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "XLSX file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /export/history.xlsx [get]
func (h *ExportHandler) HistoryXLSX(c *gin.Context) {
	h.serve(c, h.exportService.ExportHistoryXLSX)
}

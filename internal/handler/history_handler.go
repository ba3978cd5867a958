package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docanalyzer/internal/service"
)

// HistoryHandler handles the analysis history and record selection.
type HistoryHandler struct {
	workspaceService service.WorkspaceService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(workspaceService service.WorkspaceService) *HistoryHandler {
	return &HistoryHandler{workspaceService: workspaceService}
}

// List handles GET /api/v1/history
// @Summary List analysis history
// @Description Analyses of this session, newest first
// @Tags history
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.AnalysisRecord,meta=PagMeta} "History"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	records, total, err := h.workspaceService.History(c.Request.Context(), sessionID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/history/:id
// @Summary Get an analysis record
// @Tags history
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=domain.AnalysisRecord} "Record"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Security BearerAuth
// @Router /history/{id} [get]
func (h *HistoryHandler) GetByID(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	rec, err := h.workspaceService.GetRecord(c.Request.Context(), sessionID, recordID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// Select handles PUT /api/v1/history/:id/select
// @Summary Display a past analysis
// @Description Makes the record the displayed analysis without changing history order
// @Tags history
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=domain.AnalysisRecord} "Selected record"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Security BearerAuth
// @Router /history/{id}/select [put]
func (h *HistoryHandler) Select(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	rec, err := h.workspaceService.SelectRecord(c.Request.Context(), sessionID, recordID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// Selected handles GET /api/v1/history/selected
// @Summary Get the displayed analysis
// @Tags history
// @Produce json
// @Success 200 {object} Response{data=domain.AnalysisRecord} "Displayed record"
// @Success 204 "Nothing displayed"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /history/selected [get]
func (h *HistoryHandler) Selected(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	rec, err := h.workspaceService.Selected(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	if rec == nil {
		c.Status(http.StatusNoContent)
		return
	}
	RespondOK(c, rec)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docanalyzer/internal/service"
)

// WorkspaceHandler handles the upload control and analysis trigger.
type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

// NewWorkspaceHandler creates a new WorkspaceHandler.
func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// State handles GET /api/v1/workspace
// @Summary Get workspace state
// @Description Held file, displayed record, status and history size of the session
// @Tags workspace
// @Produce json
// @Success 200 {object} Response{data=domain.WorkspaceView} "Workspace state"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Security BearerAuth
// @Router /workspace [get]
func (h *WorkspaceHandler) State(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}
	view, err := h.workspaceService.State(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// SelectFile handles PUT /api/v1/workspace/file
// @Summary Select a file
// @Description Hold a file for analysis, replacing any previously held file
// @Tags workspace
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document (.txt, .pdf, .doc, .docx)"
// @Success 200 {object} Response{data=domain.WorkspaceView} "File held"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /workspace/file [put]
func (h *WorkspaceHandler) SelectFile(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	view, err := h.workspaceService.SelectFile(c.Request.Context(), service.SelectFileInput{
		SessionID: sessionID,
		Filename:  header.Filename,
		Size:      header.Size,
		Content:   file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// RemoveFile handles DELETE /api/v1/workspace/file
// @Summary Remove the held file
// @Tags workspace
// @Produce json
// @Success 200 {object} Response{data=domain.WorkspaceView} "File removed"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /workspace/file [delete]
func (h *WorkspaceHandler) RemoveFile(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}
	view, err := h.workspaceService.RemoveFile(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// Analyze handles POST /api/v1/workspace/analyze
// @Summary Analyze the held file
// @Description Runs the analysis on the held file, prepends the result to history and displays it.
// @Description With no file held nothing happens and record is null.
// @Tags workspace
// @Produce json
// @Success 200 {object} Response{data=AnalyzeResponse} "Analysis result"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 409 {object} ErrorResponseBody "Analysis already running"
// @Failure 422 {object} ErrorResponseBody "File content could not be read"
// @Security BearerAuth
// @Router /workspace/analyze [post]
func (h *WorkspaceHandler) Analyze(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}

	rec, err := h.workspaceService.Analyze(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	view, err := h.workspaceService.State(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, AnalyzeResponse{Record: rec, Workspace: view})
}

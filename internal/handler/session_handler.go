package handler

import (
	"github.com/gin-gonic/gin"

	"docanalyzer/internal/service"
)

// SessionHandler handles workspace session lifecycle endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Start handles POST /api/v1/sessions
// @Summary Start a session
// @Description Create an empty workspace and return the bearer token that addresses it
// @Tags sessions
// @Produce json
// @Success 201 {object} Response{data=service.SessionToken} "Session started"
// @Failure 500 {object} ErrorResponseBody "Internal error"
// @Router /sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	tok, err := h.sessionService.Start(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, tok)
}

// End handles DELETE /api/v1/sessions
// @Summary End the session
// @Description Discard the workspace, its held file and its analysis history
// @Tags sessions
// @Produce json
// @Success 200 {object} Response{data=MessageResponse} "Session ended"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Security BearerAuth
// @Router /sessions [delete]
func (h *SessionHandler) End(c *gin.Context) {
	sessionID, ok := extractSessionID(c)
	if !ok {
		return
	}
	if err := h.sessionService.End(c.Request.Context(), sessionID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "session ended"})
}

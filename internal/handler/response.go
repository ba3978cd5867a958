package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docanalyzer/internal/domain"
	"docanalyzer/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "session not found or expired; start a new session"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: txt, pdf, doc, docx"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "RECORD_NOT_FOUND", "analysis record not found"
	case errors.Is(err, domain.ErrAnalysisInProgress):
		return http.StatusConflict, "ANALYSIS_IN_PROGRESS", "an analysis is already running for this session"
	case errors.Is(err, domain.ErrContentRead):
		return http.StatusUnprocessableEntity, "CONTENT_READ_FAILED", "the file content could not be read"
	case errors.Is(err, domain.ErrPDFExportUnavailable):
		return http.StatusNotImplemented, "PDF_EXPORT_UNAVAILABLE", "PDF export is not available yet; use text export instead"
	case errors.Is(err, domain.ErrExportFailed):
		return http.StatusInternalServerError, "EXPORT_FAILED", "export could not be generated"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// extractSessionID reads the session id placed by the session middleware.
// Returns false if it is missing (error response already written).
func extractSessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return uuid.Nil, false
	}
	return sessionID, true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 && status != http.StatusNotImplemented {
		requestID, _ := c.Get(middleware.ContextKeyRequestID)
		slog.Error("internal error", "request_id", requestID, "error", err)
	}
	RespondError(c, status, code, msg)
}

package handler

import (
	"docanalyzer/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Response Types ---

// InfoResponse describes the API root.
type InfoResponse struct {
	Name    string `json:"name" example:"docanalyzer"`
	Version string `json:"version" example:"1.0.0"`
	Docs    string `json:"docs" example:"/swagger/index.html"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"server is shutting down"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// AnalyzeResponse carries the new record (null when no file was held) and
// the resulting workspace state.
type AnalyzeResponse struct {
	Record    *domain.AnalysisRecord `json:"record"`
	Workspace *domain.WorkspaceView  `json:"workspace"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}

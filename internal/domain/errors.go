package domain

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrSessionNotFound      = errors.New("session not found")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrRecordNotFound       = errors.New("analysis record not found")
	ErrAnalysisInProgress   = errors.New("analysis already in progress")
	ErrContentRead          = errors.New("failed to read document content")
	ErrPDFExportUnavailable = errors.New("pdf export is not available")
	ErrExportFailed         = errors.New("export failed")
)

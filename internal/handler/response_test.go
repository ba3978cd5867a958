package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"docanalyzer/internal/domain"
	"docanalyzer/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrSessionNotFound, http.StatusNotFound, "SESSION_NOT_FOUND"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrRecordNotFound, http.StatusNotFound, "RECORD_NOT_FOUND"},
		{domain.ErrAnalysisInProgress, http.StatusConflict, "ANALYSIS_IN_PROGRESS"},
		{fmt.Errorf("%w: decode", domain.ErrContentRead), http.StatusUnprocessableEntity, "CONTENT_READ_FAILED"},
		{domain.ErrPDFExportUnavailable, http.StatusNotImplemented, "PDF_EXPORT_UNAVAILABLE"},
		{domain.ErrExportFailed, http.StatusInternalServerError, "EXPORT_FAILED"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"docanalyzer/internal/handler"
	"docanalyzer/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setSessionContext(c *gin.Context, sessionID uuid.UUID) {
	c.Set(middleware.ContextKeySessionID, sessionID)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docanalyzer/internal/domain"
	"docanalyzer/internal/handler"
	"docanalyzer/internal/service"
	"docanalyzer/mocks"
)

func TestSessionHandler_Start(t *testing.T) {
	mockSessions := new(mocks.MockSessionService)
	h := handler.NewSessionHandler(mockSessions)

	tok := &service.SessionToken{Token: "jwt", SessionID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	mockSessions.On("Start", mock.Anything).Return(tok, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/sessions", http.NoBody)

	h.Start(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "jwt", data["token"])
	mockSessions.AssertExpectations(t)
}

func TestSessionHandler_End(t *testing.T) {
	mockSessions := new(mocks.MockSessionService)
	h := handler.NewSessionHandler(mockSessions)

	sessionID := uuid.New()
	mockSessions.On("End", mock.Anything, sessionID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/sessions", http.NoBody)
	setSessionContext(c, sessionID)

	h.End(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSessions.AssertExpectations(t)
}

func TestSessionHandler_End_NotFound(t *testing.T) {
	mockSessions := new(mocks.MockSessionService)
	h := handler.NewSessionHandler(mockSessions)

	sessionID := uuid.New()
	mockSessions.On("End", mock.Anything, sessionID).Return(domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/sessions", http.NoBody)
	setSessionContext(c, sessionID)

	h.End(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
}

func TestSessionHandler_End_NoSessionContext(t *testing.T) {
	mockSessions := new(mocks.MockSessionService)
	h := handler.NewSessionHandler(mockSessions)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/sessions", http.NoBody)

	h.End(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSessions.AssertNotCalled(t, "End", mock.Anything, mock.Anything)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docanalyzer/internal/service"
)

// MockSessionService is a mock implementation of service.SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Start(ctx context.Context) (*service.SessionToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionToken), args.Error(1)
}

func (m *MockSessionService) End(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionClaims), args.Error(1)
}

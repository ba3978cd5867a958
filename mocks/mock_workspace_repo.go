package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docanalyzer/internal/domain"
	"docanalyzer/internal/port"
)

// MockWorkspaceRepo is a mock implementation of port.WorkspaceRepository.
type MockWorkspaceRepo struct {
	mock.Mock
}

func (m *MockWorkspaceRepo) Create(ctx context.Context, ws *domain.Workspace) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockWorkspaceRepo) Get(ctx context.Context, sessionID uuid.UUID) (*domain.Workspace, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepo) Update(ctx context.Context, sessionID uuid.UUID, fn port.WorkspaceMutator) (*domain.Workspace, error) {
	args := m.Called(ctx, sessionID, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepo) Delete(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockWorkspaceRepo) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

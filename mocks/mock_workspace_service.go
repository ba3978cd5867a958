package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docanalyzer/internal/domain"
	"docanalyzer/internal/service"
)

// MockWorkspaceService is a mock implementation of service.WorkspaceService.
type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) State(ctx context.Context, sessionID uuid.UUID) (*domain.WorkspaceView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceView), args.Error(1)
}

func (m *MockWorkspaceService) SelectFile(ctx context.Context, input service.SelectFileInput) (*domain.WorkspaceView, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceView), args.Error(1)
}

func (m *MockWorkspaceService) RemoveFile(ctx context.Context, sessionID uuid.UUID) (*domain.WorkspaceView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceView), args.Error(1)
}

func (m *MockWorkspaceService) Analyze(ctx context.Context, sessionID uuid.UUID) (*domain.AnalysisRecord, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisRecord), args.Error(1)
}

func (m *MockWorkspaceService) History(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]domain.AnalysisRecord, int, error) {
	args := m.Called(ctx, sessionID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AnalysisRecord), args.Int(1), args.Error(2)
}

func (m *MockWorkspaceService) GetRecord(ctx context.Context, sessionID, recordID uuid.UUID) (*domain.AnalysisRecord, error) {
	args := m.Called(ctx, sessionID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisRecord), args.Error(1)
}

func (m *MockWorkspaceService) SelectRecord(ctx context.Context, sessionID, recordID uuid.UUID) (*domain.AnalysisRecord, error) {
	args := m.Called(ctx, sessionID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisRecord), args.Error(1)
}

func (m *MockWorkspaceService) Selected(ctx context.Context, sessionID uuid.UUID) (*domain.AnalysisRecord, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisRecord), args.Error(1)
}

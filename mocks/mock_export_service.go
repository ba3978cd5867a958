package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docanalyzer/internal/domain"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportText(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error) {
	return m.artifact(m.Called(ctx, sessionID))
}

func (m *MockExportService) ExportPDF(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error) {
	return m.artifact(m.Called(ctx, sessionID))
}

func (m *MockExportService) ExportHistoryCSV(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error) {
	return m.artifact(m.Called(ctx, sessionID))
}

func (m *MockExportService) ExportHistoryXLSX(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error) {
	return m.artifact(m.Called(ctx, sessionID))
}

func (m *MockExportService) artifact(args mock.Arguments) (*domain.ExportArtifact, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportArtifact), args.Error(1)
}

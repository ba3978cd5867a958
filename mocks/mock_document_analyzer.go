package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docanalyzer/internal/port"
)

// MockDocumentAnalyzer is a mock implementation of port.DocumentAnalyzer.
type MockDocumentAnalyzer struct {
	mock.Mock
}

func (m *MockDocumentAnalyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*port.AnalyzeOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.AnalyzeOutput), args.Error(1)
}

func (m *MockDocumentAnalyzer) Name() string {
	args := m.Called()
	return args.String(0)
}

package port

import (
	"context"
)

// AnalyzeInput carries the document handed to an analyzer.
type AnalyzeInput struct {
	Filename string
	Content  []byte
}

// AnalyzeOutput is the result of analyzing one document.
type AnalyzeOutput struct {
	Summary      string
	OriginalText string
	WordCount    int
	LineCount    int
	CharCount    int
	AnalyzerName string
}

// DocumentAnalyzer turns a document into a summary. It is the integration
// point for an external analysis service; the shipped implementation is a
// local stub.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error)
	Name() string
}

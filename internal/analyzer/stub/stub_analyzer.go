// Package stub provides the local placeholder analyzer. It does not read the
// document for meaning; it reports word, line and character counts in a
// fixed template until an external analysis service is wired in.
package stub

import (
	"context"
	"fmt"

	"docanalyzer/internal/analyzer"
	"docanalyzer/internal/config"
	"docanalyzer/internal/port"
)

// ProviderName is the registry key for this analyzer.
const ProviderName = "stub"

const summaryTemplate = `Analysis of "%s"

Word count: %d
Line count: %d
Character count: %d

This summary was generated by the local placeholder analyzer. It reports basic
document statistics only; connect an external analysis service for a real
summary of the document's content.`

// Analyzer implements port.DocumentAnalyzer with a canned summary.
type Analyzer struct{}

// NewAnalyzer creates a stub analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Factory adapts NewAnalyzer to analyzer.ProviderFactory.
func Factory(_ *config.AnalysisConfig) (port.DocumentAnalyzer, error) {
	return NewAnalyzer(), nil
}

// Name returns the provider name.
func (a *Analyzer) Name() string {
	return ProviderName
}

// Analyze decodes the document text and formats the summary template.
func (a *Analyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*port.AnalyzeOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("stub.Analyze: %w", err)
	}

	text, err := analyzer.DecodeText(input.Content)
	if err != nil {
		return nil, fmt.Errorf("stub.Analyze: %w", err)
	}

	stats := analyzer.Count(text)
	return &port.AnalyzeOutput{
		Summary:      Summary(input.Filename, stats),
		OriginalText: text,
		WordCount:    stats.Words,
		LineCount:    stats.Lines,
		CharCount:    stats.Chars,
		AnalyzerName: ProviderName,
	}, nil
}

// Summary renders the fixed summary template.
func Summary(filename string, stats analyzer.TextStats) string {
	return fmt.Sprintf(summaryTemplate, filename, stats.Words, stats.Lines, stats.Chars)
}

package stub_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docanalyzer/internal/analyzer"
	"docanalyzer/internal/analyzer/stub"
	"docanalyzer/internal/config"
	"docanalyzer/internal/port"
)

func TestAnalyzer_ThreeWordsOneLine(t *testing.T) {
	a := stub.NewAnalyzer()

	out, err := a.Analyze(context.Background(), port.AnalyzeInput{
		Filename: "abc.txt",
		Content:  []byte("a b c"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, out.WordCount)
	assert.Equal(t, 1, out.LineCount)
	assert.Equal(t, "a b c", out.OriginalText)
	assert.Contains(t, out.Summary, `Analysis of "abc.txt"`)
	assert.Contains(t, out.Summary, "Word count: 3")
	assert.Contains(t, out.Summary, "Line count: 1")
	assert.Equal(t, stub.ProviderName, out.AnalyzerName)
}

func TestAnalyzer_BinaryContentIsReadAsText(t *testing.T) {
	a := stub.NewAnalyzer()

	out, err := a.Analyze(context.Background(), port.AnalyzeInput{
		Filename: "report.pdf",
		Content:  []byte("%PDF-1.4\nsome text\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.WordCount)
	assert.Equal(t, 3, out.LineCount)
}

func TestAnalyzer_CanceledContext(t *testing.T) {
	a := stub.NewAnalyzer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx, port.AnalyzeInput{Filename: "a.txt", Content: []byte("x")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummary_IsDeterministic(t *testing.T) {
	stats := analyzer.TextStats{Words: 10, Lines: 2, Chars: 50}
	assert.Equal(t, stub.Summary("x.txt", stats), stub.Summary("x.txt", stats))
}

func TestFactory_Registration(t *testing.T) {
	analyzer.RegisterProvider(stub.ProviderName, stub.Factory)

	a, err := analyzer.NewAnalyzer(&config.AnalysisConfig{Provider: stub.ProviderName})
	require.NoError(t, err)
	assert.Equal(t, stub.ProviderName, a.Name())

	_, err = analyzer.NewAnalyzer(&config.AnalysisConfig{Provider: "remote"})
	assert.Error(t, err)
}

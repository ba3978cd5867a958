package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"docanalyzer/internal/domain"
)

// TextStats holds the counts reported for a document.
type TextStats struct {
	Words int
	Lines int
	Chars int
}

// DecodeText reads raw upload bytes as text. A UTF-8 or UTF-16 byte order
// mark selects the encoding; otherwise UTF-8 is assumed. Invalid sequences
// become U+FFFD. Binary formats (pdf, doc) are not parsed and decode to
// whatever text their bytes happen to contain.
func DecodeText(content []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrContentRead, err)
	}
	return strings.ToValidUTF8(string(out), "\uFFFD"), nil
}

// Count computes word, line and character counts. Words are runs of
// non-whitespace; lines are the segments between \n, \r\n or \r breaks, so a
// trailing break starts an (empty) final line. Empty text has zero lines.
func Count(text string) TextStats {
	stats := TextStats{
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
	}
	if text == "" {
		return stats
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	stats.Lines = strings.Count(normalized, "\n") + 1
	return stats
}

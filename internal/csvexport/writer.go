package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"docanalyzer/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Columns defines the CSV header row.
var Columns = []string{
	"Record ID",
	"Filename",
	"Timestamp",
	"Created At",
	"Word Count",
	"Line Count",
	"Character Count",
	"Summary",
}

// Writer wraps csv.Writer for exporting analysis history as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(Columns)
}

// WriteRecords converts analysis records to CSV rows and writes them in order.
func (w *Writer) WriteRecords(records []domain.AnalysisRecord) error {
	for i := range records {
		if err := w.csv.Write(Row(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// Row converts a single record to a slice aligned with Columns.
func Row(rec *domain.AnalysisRecord) []string {
	return []string{
		rec.ID.String(),
		rec.Filename,
		rec.Timestamp,
		rec.CreatedAt.Format(time.RFC3339),
		strconv.Itoa(rec.WordCount),
		strconv.Itoa(rec.LineCount),
		strconv.Itoa(rec.CharCount),
		rec.Summary,
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized download filename.
// Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string, now time.Time) string {
	sanitized := SanitizeFilename(name)
	if sanitized == "" {
		sanitized = "export"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, now.Format("2006-01-02"), ext)
}

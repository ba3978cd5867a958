package xlsxexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"docanalyzer/internal/domain"
)

func TestWrite_HeaderAndRows(t *testing.T) {
	newer := domain.AnalysisRecord{
		ID:        uuid.New(),
		Filename:  "b.txt",
		Timestamp: "2025-02-01 10:00:00",
		CreatedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
		Summary:   "second",
		WordCount: 7,
		LineCount: 2,
		CharCount: 30,
	}
	older := domain.AnalysisRecord{
		ID:        uuid.New(),
		Filename:  "a.txt",
		Timestamp: "2025-02-01 09:00:00",
		CreatedAt: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		Summary:   "first",
		WordCount: 3,
		LineCount: 1,
		CharCount: 5,
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []domain.AnalysisRecord{newer, older}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Record ID", rows[0][0])
	assert.Equal(t, "Summary", rows[0][7])
	assert.Equal(t, newer.ID.String(), rows[1][0])
	assert.Equal(t, "b.txt", rows[1][1])
	assert.Equal(t, "7", rows[1][4])
	assert.Equal(t, "a.txt", rows[2][1])
	assert.Equal(t, "first", rows[2][7])
}

func TestWrite_EmptyHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"docanalyzer/internal/csvexport"
	"docanalyzer/internal/domain"
	"docanalyzer/internal/repository/memory"
	"docanalyzer/internal/service"
	"docanalyzer/internal/xlsxexport"
)

func TestTextExportFilename(t *testing.T) {
	assert.Equal(t, "report.docx_analysis.txt", service.TextExportFilename("report.docx"))
	assert.Equal(t, "notes.txt_analysis.txt", service.TextExportFilename("notes.txt"))
}

func TestExportService_ExportText(t *testing.T) {
	repo := memory.NewWorkspaceRepo()
	ws := newStubService(repo)
	exports := service.NewExportService(repo)
	sessionID := newSession(t, repo)
	ctx := context.Background()

	selectText(t, ws, sessionID, "notes.txt", "a b c")
	rec, err := ws.Analyze(ctx, sessionID)
	require.NoError(t, err)

	art, err := exports.ExportText(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, art)
	assert.Equal(t, "notes.txt_analysis.txt", art.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", art.ContentType)
	assert.Equal(t, rec.Summary, string(art.Content))
}

func TestExportService_ExportText_FollowsSelection(t *testing.T) {
	repo := memory.NewWorkspaceRepo()
	ws := newStubService(repo)
	exports := service.NewExportService(repo)
	sessionID := newSession(t, repo)
	ctx := context.Background()

	selectText(t, ws, sessionID, "first.txt", "one")
	first, err := ws.Analyze(ctx, sessionID)
	require.NoError(t, err)
	selectText(t, ws, sessionID, "second.txt", "two words")
	_, err = ws.Analyze(ctx, sessionID)
	require.NoError(t, err)

	_, err = ws.SelectRecord(ctx, sessionID, first.ID)
	require.NoError(t, err)

	art, err := exports.ExportText(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "first.txt_analysis.txt", art.Filename)
	assert.Equal(t, first.Summary, string(art.Content))
}

func TestExportService_ExportText_NoSelection(t *testing.T) {
	repo := memory.NewWorkspaceRepo()
	exports := service.NewExportService(repo)
	sessionID := newSession(t, repo)

	art, err := exports.ExportText(context.Background(), sessionID)
	assert.NoError(t, err)
	assert.Nil(t, art)
}

func TestExportService_ExportText_UnknownSession(t *testing.T) {
	exports := service.NewExportService(memory.NewWorkspaceRepo())

	_, err := exports.ExportText(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestExportService_ExportPDF_Unavailable(t *testing.T) {
	repo := memory.NewWorkspaceRepo()
	exports := service.NewExportService(repo)
	sessionID := newSession(t, repo)

	art, err := exports.ExportPDF(context.Background(), sessionID)
	assert.Nil(t, art)
	assert.ErrorIs(t, err, domain.ErrPDFExportUnavailable)
}

func TestExportService_ExportHistoryCSV(t *testing.T) {
	repo := memory.NewWorkspaceRepo()
	ws := newStubService(repo)
	exports := service.NewExportService(repo)
	sessionID := newSession(t, repo)
	ctx := context.Background()

	selectText(t, ws, sessionID, "a.txt", "one")
	_, err := ws.Analyze(ctx, sessionID)
	require.NoError(t, err)
	selectText(t, ws, sessionID, "b.txt", "one two")
	_, err = ws.Analyze(ctx, sessionID)
	require.NoError(t, err)

	art, err := exports.ExportHistoryCSV(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", art.ContentType)
	assert.True(t, strings.HasPrefix(art.Filename, "analysis_history_"))
	assert.True(t, strings.HasSuffix(art.Filename, ".csv"))
	require.True(t, bytes.HasPrefix(art.Content, csvexport.BOM))

	rows, err := csv.NewReader(bytes.NewReader(art.Content[len(csvexport.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvexport.Columns, rows[0])
	assert.Equal(t, "b.txt", rows[1][1])
	assert.Equal(t, "a.txt", rows[2][1])
}

func TestExportService_ExportHistoryXLSX(t *testing.T) {
	repo := memory.NewWorkspaceRepo()
	ws := newStubService(repo)
	exports := service.NewExportService(repo)
	sessionID := newSession(t, repo)
	ctx := context.Background()

	selectText(t, ws, sessionID, "sheet.txt", "x y")
	_, err := ws.Analyze(ctx, sessionID)
	require.NoError(t, err)

	art, err := exports.ExportHistoryXLSX(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, xlsxexport.ContentType, art.ContentType)
	assert.True(t, strings.HasSuffix(art.Filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(art.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxexport.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "sheet.txt", rows[1][1])
}

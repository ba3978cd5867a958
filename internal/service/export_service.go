package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docanalyzer/internal/csvexport"
	"docanalyzer/internal/domain"
	"docanalyzer/internal/port"
	"docanalyzer/internal/xlsxexport"
)

const historyExportName = "analysis_history"

// ExportService produces downloadable artifacts from a workspace.
type ExportService interface {
	// ExportText returns nil and no error when no record is selected.
	ExportText(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error)
	ExportPDF(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error)
	ExportHistoryCSV(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error)
	ExportHistoryXLSX(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error)
}

type exportService struct {
	repo port.WorkspaceRepository
	now  func() time.Time
}

// NewExportService creates a new ExportService implementation.
func NewExportService(repo port.WorkspaceRepository) ExportService {
	return &exportService{repo: repo, now: time.Now}
}

// TextExportFilename names the text export of a record.
func TextExportFilename(originalFilename string) string {
	return originalFilename + domain.ExportSuffix
}

func (s *exportService) ExportText(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error) {
	ws, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rec, ok := ws.Selected()
	if !ok {
		return nil, nil
	}
	return &domain.ExportArtifact{
		Filename:    TextExportFilename(rec.Filename),
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte(rec.Summary),
	}, nil
}

// ExportPDF is not implemented; callers get a notice that it is unavailable.
func (s *exportService) ExportPDF(_ context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error) {
	slog.Debug("exportService.ExportPDF: requested but unavailable", "session_id", sessionID)
	return nil, domain.ErrPDFExportUnavailable
}

func (s *exportService) ExportHistoryCSV(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error) {
	ws, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	if err := w.WriteRecords(ws.History); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	return &domain.ExportArtifact{
		Filename:    csvexport.BuildFilename(historyExportName, "csv", s.now()),
		ContentType: "text/csv; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

func (s *exportService) ExportHistoryXLSX(ctx context.Context, sessionID uuid.UUID) (*domain.ExportArtifact, error) {
	ws, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := xlsxexport.Write(&buf, ws.History); err != nil {
		slog.Error("exportService.ExportHistoryXLSX: render failed", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	return &domain.ExportArtifact{
		Filename:    csvexport.BuildFilename(historyExportName, "xlsx", s.now()),
		ContentType: xlsxexport.ContentType,
		Content:     buf.Bytes(),
	}, nil
}

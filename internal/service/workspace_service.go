package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"docanalyzer/internal/domain"
	"docanalyzer/internal/port"
)

// SelectFileInput is the DTO for holding a file in a workspace.
type SelectFileInput struct {
	SessionID uuid.UUID
	Filename  string
	Size      int64
	Content   io.Reader
}

// WorkspaceOptions tunes the workspace service.
type WorkspaceOptions struct {
	MaxUploadBytes  int64 // 0 disables the size check
	AnalysisTimeout time.Duration
	Location        *time.Location
}

// WorkspaceService defines the upload, analysis and history contract of a session workspace.
type WorkspaceService interface {
	State(ctx context.Context, sessionID uuid.UUID) (*domain.WorkspaceView, error)
	SelectFile(ctx context.Context, input SelectFileInput) (*domain.WorkspaceView, error)
	RemoveFile(ctx context.Context, sessionID uuid.UUID) (*domain.WorkspaceView, error)
	// Analyze returns nil and no error when no file is held.
	Analyze(ctx context.Context, sessionID uuid.UUID) (*domain.AnalysisRecord, error)
	History(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]domain.AnalysisRecord, int, error)
	GetRecord(ctx context.Context, sessionID, recordID uuid.UUID) (*domain.AnalysisRecord, error)
	SelectRecord(ctx context.Context, sessionID, recordID uuid.UUID) (*domain.AnalysisRecord, error)
	// Selected returns nil and no error when nothing is selected.
	Selected(ctx context.Context, sessionID uuid.UUID) (*domain.AnalysisRecord, error)
}

type workspaceService struct {
	repo     port.WorkspaceRepository
	analyzer port.DocumentAnalyzer
	opts     WorkspaceOptions
	now      func() time.Time
}

// NewWorkspaceService creates a new WorkspaceService implementation.
func NewWorkspaceService(repo port.WorkspaceRepository, analyzer port.DocumentAnalyzer, opts WorkspaceOptions) WorkspaceService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.AnalysisTimeout <= 0 {
		opts.AnalysisTimeout = 30 * time.Second
	}
	return &workspaceService{
		repo:     repo,
		analyzer: analyzer,
		opts:     opts,
		now:      time.Now,
	}
}

func (s *workspaceService) State(ctx context.Context, sessionID uuid.UUID) (*domain.WorkspaceView, error) {
	ws, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := ws.View()
	return &view, nil
}

func (s *workspaceService) SelectFile(ctx context.Context, input SelectFileInput) (*domain.WorkspaceView, error) {
	name := filepath.Base(strings.ReplaceAll(input.Filename, "\\", "/"))
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.opts.MaxUploadBytes
	if maxBytes > 0 && input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	reader := input.Content
	if maxBytes > 0 {
		reader = io.LimitReader(input.Content, maxBytes+1)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	held := &domain.HeldFile{
		Name:       name,
		Size:       int64(len(content)),
		Type:       fileType,
		SelectedAt: s.now().UTC(),
		Content:    content,
	}

	ws, err := s.repo.Update(ctx, input.SessionID, func(ws *domain.Workspace) error {
		ws.File = held
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("workspaceService.SelectFile: file held",
		"session_id", input.SessionID, "filename", name, "size_bytes", held.Size)

	view := ws.View()
	return &view, nil
}

func (s *workspaceService) RemoveFile(ctx context.Context, sessionID uuid.UUID) (*domain.WorkspaceView, error) {
	ws, err := s.repo.Update(ctx, sessionID, func(ws *domain.Workspace) error {
		ws.File = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	view := ws.View()
	return &view, nil
}

func (s *workspaceService) Analyze(ctx context.Context, sessionID uuid.UUID) (*domain.AnalysisRecord, error) {
	var held *domain.HeldFile
	_, err := s.repo.Update(ctx, sessionID, func(ws *domain.Workspace) error {
		if ws.Analyzing {
			return domain.ErrAnalysisInProgress
		}
		if ws.File == nil {
			return nil
		}
		ws.Analyzing = true
		f := *ws.File
		f.Content = append([]byte(nil), ws.File.Content...)
		held = &f
		return nil
	})
	if err != nil {
		return nil, err
	}
	if held == nil {
		slog.Debug("workspaceService.Analyze: no file held, nothing to do", "session_id", sessionID)
		return nil, nil
	}

	slog.Info("workspaceService.Analyze: analysis started",
		"session_id", sessionID, "filename", held.Name, "analyzer", s.analyzer.Name())

	analyzeCtx, cancel := context.WithTimeout(ctx, s.opts.AnalysisTimeout)
	out, analyzeErr := s.analyzer.Analyze(analyzeCtx, port.AnalyzeInput{
		Filename: held.Name,
		Content:  held.Content,
	})
	cancel()

	var rec *domain.AnalysisRecord
	if analyzeErr == nil {
		rec, analyzeErr = s.newRecord(held.Name, out)
	}

	// The in-progress flag must be cleared even if the request was canceled.
	_, err = s.repo.Update(context.WithoutCancel(ctx), sessionID, func(ws *domain.Workspace) error {
		ws.Analyzing = false
		if rec != nil {
			ws.Prepend(*rec)
		}
		return nil
	})

	if analyzeErr != nil {
		slog.Error("workspaceService.Analyze: content read failed",
			"session_id", sessionID, "filename", held.Name, "error", analyzeErr)
		if !errors.Is(analyzeErr, domain.ErrContentRead) {
			analyzeErr = fmt.Errorf("%w: %v", domain.ErrContentRead, analyzeErr)
		}
		return nil, analyzeErr
	}
	if err != nil {
		return nil, err
	}

	slog.Info("workspaceService.Analyze: analysis completed",
		"session_id", sessionID, "record_id", rec.ID,
		"word_count", rec.WordCount, "line_count", rec.LineCount)

	return rec, nil
}

func (s *workspaceService) newRecord(filename string, out *port.AnalyzeOutput) (*domain.AnalysisRecord, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating record id: %w", err)
	}
	now := s.now()
	return &domain.AnalysisRecord{
		ID:           id,
		Filename:     filename,
		Timestamp:    now.In(s.opts.Location).Format(domain.TimestampLayout),
		CreatedAt:    now.UTC(),
		Summary:      out.Summary,
		OriginalText: out.OriginalText,
		WordCount:    out.WordCount,
		LineCount:    out.LineCount,
		CharCount:    out.CharCount,
	}, nil
}

func (s *workspaceService) History(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]domain.AnalysisRecord, int, error) {
	ws, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}

	if offset < 0 {
		offset = 0
	}
	total := len(ws.History)
	if offset >= total {
		return []domain.AnalysisRecord{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return ws.History[offset:end], total, nil
}

func (s *workspaceService) GetRecord(ctx context.Context, sessionID, recordID uuid.UUID) (*domain.AnalysisRecord, error) {
	ws, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rec, ok := ws.FindRecord(recordID)
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

func (s *workspaceService) SelectRecord(ctx context.Context, sessionID, recordID uuid.UUID) (*domain.AnalysisRecord, error) {
	var selected domain.AnalysisRecord
	_, err := s.repo.Update(ctx, sessionID, func(ws *domain.Workspace) error {
		rec, ok := ws.FindRecord(recordID)
		if !ok {
			return domain.ErrRecordNotFound
		}
		id := rec.ID
		ws.SelectedID = &id
		selected = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &selected, nil
}

func (s *workspaceService) Selected(ctx context.Context, sessionID uuid.UUID) (*domain.AnalysisRecord, error) {
	ws, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rec, ok := ws.Selected()
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

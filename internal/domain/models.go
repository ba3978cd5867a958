package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is one completed analysis of one uploaded document.
// Records are immutable once created.
type AnalysisRecord struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	Timestamp    string    `json:"timestamp"`
	CreatedAt    time.Time `json:"created_at"`
	Summary      string    `json:"summary"`
	OriginalText string    `json:"original_text"`
	WordCount    int       `json:"word_count"`
	LineCount    int       `json:"line_count"`
	CharCount    int       `json:"char_count"`
}

// HeldFile is the file currently selected in a workspace but not yet analyzed.
type HeldFile struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       FileType  `json:"type"`
	SelectedAt time.Time `json:"selected_at"`
	Content    []byte    `json:"-"`
}

// Workspace is the per-session state: held file, history, selection and
// the in-progress flag. History is ordered newest first.
type Workspace struct {
	SessionID  uuid.UUID        `json:"session_id"`
	File       *HeldFile        `json:"file"`
	History    []AnalysisRecord `json:"-"`
	SelectedID *uuid.UUID       `json:"selected_id"`
	Analyzing  bool             `json:"analyzing"`
	CreatedAt  time.Time        `json:"created_at"`
	TouchedAt  time.Time        `json:"touched_at"`
}

// NewWorkspace returns an empty workspace for the given session.
func NewWorkspace(sessionID uuid.UUID, now time.Time) *Workspace {
	return &Workspace{
		SessionID: sessionID,
		CreatedAt: now,
		TouchedAt: now,
	}
}

// Status derives the workspace status from its state.
func (w *Workspace) Status() WorkspaceStatus {
	switch {
	case w.Analyzing:
		return WorkspaceStatusAnalyzing
	case w.SelectedID != nil:
		return WorkspaceStatusAnalyzed
	case w.File != nil:
		return WorkspaceStatusFileSelected
	default:
		return WorkspaceStatusIdle
	}
}

// FindRecord returns the history entry with the given id.
func (w *Workspace) FindRecord(id uuid.UUID) (AnalysisRecord, bool) {
	for i := range w.History {
		if w.History[i].ID == id {
			return w.History[i], true
		}
	}
	return AnalysisRecord{}, false
}

// Selected returns the selected record, if any.
func (w *Workspace) Selected() (AnalysisRecord, bool) {
	if w.SelectedID == nil {
		return AnalysisRecord{}, false
	}
	return w.FindRecord(*w.SelectedID)
}

// Prepend puts rec at the front of the history and selects it.
func (w *Workspace) Prepend(rec AnalysisRecord) {
	history := make([]AnalysisRecord, 0, len(w.History)+1)
	history = append(history, rec)
	history = append(history, w.History...)
	w.History = history
	id := rec.ID
	w.SelectedID = &id
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (w *Workspace) Clone() *Workspace {
	c := *w
	if w.File != nil {
		f := *w.File
		f.Content = append([]byte(nil), w.File.Content...)
		c.File = &f
	}
	if w.SelectedID != nil {
		id := *w.SelectedID
		c.SelectedID = &id
	}
	c.History = append([]AnalysisRecord(nil), w.History...)
	return &c
}

// WorkspaceView is the externally visible snapshot of a workspace.
type WorkspaceView struct {
	SessionID    uuid.UUID       `json:"session_id"`
	Status       WorkspaceStatus `json:"status"`
	File         *HeldFile       `json:"file"`
	Selected     *AnalysisRecord `json:"selected"`
	HistoryCount int             `json:"history_count"`
	Analyzing    bool            `json:"analyzing"`
}

// View builds the snapshot returned to clients.
func (w *Workspace) View() WorkspaceView {
	v := WorkspaceView{
		SessionID:    w.SessionID,
		Status:       w.Status(),
		HistoryCount: len(w.History),
		Analyzing:    w.Analyzing,
	}
	if w.File != nil {
		f := *w.File
		f.Content = nil
		v.File = &f
	}
	if rec, ok := w.Selected(); ok {
		v.Selected = &rec
	}
	return v
}

// ExportArtifact is a downloadable file produced by an export action.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

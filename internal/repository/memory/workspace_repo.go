package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"docanalyzer/internal/domain"
	"docanalyzer/internal/port"
)

type workspaceRepo struct {
	mu         sync.Mutex
	workspaces map[uuid.UUID]*domain.Workspace
	now        func() time.Time
}

// NewWorkspaceRepo creates a process-local WorkspaceRepository. State is lost
// when the process exits.
func NewWorkspaceRepo() port.WorkspaceRepository {
	return NewWorkspaceRepoWithClock(time.Now)
}

// NewWorkspaceRepoWithClock is NewWorkspaceRepo with an injectable clock.
func NewWorkspaceRepoWithClock(now func() time.Time) port.WorkspaceRepository {
	return &workspaceRepo{
		workspaces: make(map[uuid.UUID]*domain.Workspace),
		now:        now,
	}
}

func (r *workspaceRepo) Create(_ context.Context, ws *domain.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.workspaces[ws.SessionID]; exists {
		return fmt.Errorf("workspaceRepo.Create: session %s already exists", ws.SessionID)
	}
	r.workspaces[ws.SessionID] = ws.Clone()
	return nil
}

func (r *workspaceRepo) Get(_ context.Context, sessionID uuid.UUID) (*domain.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return ws.Clone(), nil
}

func (r *workspaceRepo) Update(_ context.Context, sessionID uuid.UUID, fn port.WorkspaceMutator) (*domain.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	draft := ws.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}
	draft.TouchedAt = r.now().UTC()
	r.workspaces[sessionID] = draft
	return draft.Clone(), nil
}

func (r *workspaceRepo) Delete(_ context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workspaces[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.workspaces, sessionID)
	return nil
}

// DeleteIdleSince removes workspaces last touched before cutoff. Workspaces
// with an analysis in flight are kept.
func (r *workspaceRepo) DeleteIdleSince(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, ws := range r.workspaces {
		if ws.Analyzing || !ws.TouchedAt.Before(cutoff) {
			continue
		}
		delete(r.workspaces, id)
		removed++
	}
	return removed, nil
}

package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"docanalyzer/internal/domain"
)

// WorkspaceMutator mutates a workspace. Changes are committed only when it
// returns nil.
type WorkspaceMutator func(ws *domain.Workspace) error

// WorkspaceRepository holds per-session workspaces. Implementations must apply
// Update atomically with respect to other calls for the same session and must
// never hand out references to stored state.
type WorkspaceRepository interface {
	Create(ctx context.Context, ws *domain.Workspace) error
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.Workspace, error)
	Update(ctx context.Context, sessionID uuid.UUID, fn WorkspaceMutator) (*domain.Workspace, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}

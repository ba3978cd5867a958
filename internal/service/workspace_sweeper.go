package service

import (
	"context"
	"log/slog"
	"time"

	"docanalyzer/internal/port"
)

// WorkspaceSweeper discards workspaces whose session has been idle longer
// than the session TTL.
type WorkspaceSweeper struct {
	repo     port.WorkspaceRepository
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
}

// NewWorkspaceSweeper creates a new WorkspaceSweeper.
func NewWorkspaceSweeper(repo port.WorkspaceRepository, ttl, interval time.Duration) *WorkspaceSweeper {
	return &WorkspaceSweeper{repo: repo, ttl: ttl, interval: interval, now: time.Now}
}

// Start runs the sweep loop until ctx is canceled.
func (w *WorkspaceSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("workspaceSweeper: started", "ttl", w.ttl, "interval", w.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("workspaceSweeper: shutdown complete")
			return
		case <-ticker.C:
			w.SweepOnce(ctx)
		}
	}
}

// SweepOnce removes idle workspaces and returns how many were discarded.
func (w *WorkspaceSweeper) SweepOnce(ctx context.Context) int {
	removed, err := w.repo.DeleteIdleSince(ctx, w.now().UTC().Add(-w.ttl))
	if err != nil {
		slog.Error("workspaceSweeper: sweep failed", "error", err)
		return 0
	}
	if removed > 0 {
		slog.Info("workspaceSweeper: discarded idle workspaces", "count", removed)
	}
	return removed
}

package repository

import (
	"context"

	"github.com/maheshrc27/postdeck/internal/scheduler"
)

// SnapshotRepository persists the store's durable subset: accounts, brand
// voice, and scheduled posts. Topics and engagement snapshots are static
// reference data and are not persisted.
//
// Save is write-through and fire-and-forget from the store's perspective:
// a persistence failure never rolls back in-memory state.
type SnapshotRepository interface {
	// Load returns the stored state, or found=false when nothing has been
	// persisted yet.
	Load(ctx context.Context) (*scheduler.State, bool, error)
	Save(ctx context.Context, state *scheduler.State) error
}

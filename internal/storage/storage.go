// Package storage defines how the aggregate state snapshot is persisted.
//
// The durable format is one serialized JSON blob written wholesale under a
// single key. There is no schema version and no migration path; a loader
// that meets an incompatible shape just produces whatever decodes.
package storage

import (
	"context"

	apperrors "github.com/tableforge/tableforge/internal/platform/errors"
	"github.com/tableforge/tableforge/internal/state"
)

// ErrNotFound indicates no snapshot has been saved yet. Callers fall back
// to bootstrapping a fresh state.
var ErrNotFound = apperrors.New(apperrors.CodeSnapshotNotFound, "state snapshot not found")

// Persister owns the durable copy of the aggregate.
type Persister interface {
	// Save overwrites the durable snapshot with the full aggregate.
	Save(ctx context.Context, st *state.State) error
	// Load returns the last saved aggregate, or ErrNotFound.
	Load(ctx context.Context) (*state.State, error)
	// Close releases the underlying resources.
	Close() error
}

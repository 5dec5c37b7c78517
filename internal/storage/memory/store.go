// Package memory provides an in-memory Persister used by tests and
// ephemeral sessions.
package memory

import (
	"context"
	"sync"

	"github.com/tableforge/tableforge/internal/state"
	"github.com/tableforge/tableforge/internal/storage"
)

// Store keeps the snapshot as encoded bytes so Load always returns an
// independent copy, exactly like a durable backend would.
type Store struct {
	mu   sync.Mutex
	data []byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Save encodes and retains the aggregate.
func (s *Store) Save(ctx context.Context, st *state.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := state.Encode(st)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// Load decodes the retained snapshot.
func (s *Store) Load(ctx context.Context) (*state.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, storage.ErrNotFound
	}
	return state.Decode(s.data)
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// Package memory provides an in-process implementation of storage.Store.
// All data is lost when the process exits.
package memory

import (
	"context"
	"sync"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store holds a single snapshot reference.
type Store struct {
	mu     sync.RWMutex
	snap   *models.Snapshot
	closed bool
}

// New creates a Store seeded with a copy of seed. A nil seed starts empty.
func New(seed *models.Snapshot) *Store {
	return &Store{snap: seed.Clone()}
}

// Snapshot returns a deep copy of the current snapshot.
func (s *Store) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrClosed
	}
	return s.snap.Clone(), nil
}

// Replace stores a copy of snap as the current snapshot.
func (s *Store) Replace(ctx context.Context, snap *models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	next := snap.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	s.snap = next
	return nil
}

// Close drops the snapshot. Later calls fail with storage.ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.snap = nil
	return nil
}

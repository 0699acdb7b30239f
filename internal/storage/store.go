// Package storage provides abstractions for holding the community snapshot.
package storage

import (
	"context"
	"errors"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// ErrClosed is returned by a store after Close.
var ErrClosed = errors.New("store is closed")

// Store defines the interface for snapshot storage.
// This abstraction keeps the service layer independent of where the
// snapshot lives.
type Store interface {
	// Snapshot returns a deep copy of the current snapshot. Callers may
	// modify the copy freely; it is not shared with the store.
	Snapshot(ctx context.Context) (*models.Snapshot, error)

	// Replace swaps the whole snapshot atomically. Readers observe either
	// the previous snapshot or the new one, never a mix.
	Replace(ctx context.Context, snap *models.Snapshot) error

	// Close releases any resources held by the store.
	Close() error
}

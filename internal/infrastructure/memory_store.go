package infrastructure

import (
	"sync"

	"github.com/Agurato/moviedir/internal/model"
)

// MemoryStore holds the collection of directors for the lifetime of the process.
// Snapshots returned by GetDirectors are never modified afterwards: every change
// swaps in a new slice.
type MemoryStore struct {
	mu        sync.RWMutex
	directors []model.Director
}

// NewMemoryStore initializes an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		directors: []model.Director{},
	}
}

// GetDirectors returns the current snapshot
func (ms *MemoryStore) GetDirectors() []model.Director {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.directors
}

// ReplaceDirectors swaps the whole collection
func (ms *MemoryStore) ReplaceDirectors(directors []model.Director) {
	if directors == nil {
		directors = []model.Director{}
	}
	ms.mu.Lock()
	ms.directors = directors
	ms.mu.Unlock()
}

// UpdateDirectors replaces the collection with the result of update, applied to the current one.
// Updates are serialized. If update returns an error, the collection is kept.
func (ms *MemoryStore) UpdateDirectors(update func(directors []model.Director) ([]model.Director, error)) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	directors, err := update(ms.directors)
	if err != nil {
		return err
	}
	if directors == nil {
		directors = []model.Director{}
	}
	ms.directors = directors
	return nil
}

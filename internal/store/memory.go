// Package store holds the single in-memory dataset the service operates on.
// A dataset is replaced wholesale on reseed or import, never mutated in
// place; the derived view is recomputed with it.
package store

import (
	"sync"

	"github.com/AngelCh415/SDR_GO/internal/models"
)

type Store struct {
	mu      sync.RWMutex
	dataset models.GeneratedDataset
	derived []models.DerivedEvent
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps the current dataset and its derived view atomically.
func (s *Store) Replace(ds models.GeneratedDataset, derived []models.DerivedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	s.derived = derived
}

// Snapshot returns the current dataset and derived events. Callers must
// treat both as read-only.
func (s *Store) Snapshot() (models.GeneratedDataset, []models.DerivedEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset, s.derived
}

func (s *Store) Seed() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset.Seed
}

func (s *Store) EventCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dataset.Events)
}

package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/swashington/snas/internal/domain/model"
)

// MemoryStore implements Store with a mutex-guarded map. Insertion order
// is preserved for deterministic listings.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]model.Achievement
	order   []string
}

// NewMemoryStore creates an empty in-memory achievement store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]model.Achievement),
	}
}

// List returns records matching the filter in insertion order.
func (s *MemoryStore) List(_ context.Context, f Filter) ([]model.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Achievement, 0, len(s.order))
	for _, id := range s.order {
		a, ok := s.records[id]
		if !ok {
			continue
		}
		if matches(a, f) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Get returns the record with the given id.
func (s *MemoryStore) Get(_ context.Context, id string) (model.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.records[id]
	if !ok {
		return model.Achievement{}, ErrNotFound
	}
	return a, nil
}

// Insert stores a new record, assigning an id when none is set.
func (s *MemoryStore) Insert(_ context.Context, a model.Achievement) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(a), nil
}

func (s *MemoryStore) insertLocked(a model.Achievement) string {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, exists := s.records[a.ID]; !exists {
		s.order = append(s.order, a.ID)
	}
	s.records[a.ID] = a
	return a.ID
}

// Update replaces the record identified by a.ID.
func (s *MemoryStore) Update(_ context.Context, a model.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[a.ID]; !ok {
		return ErrNotFound
	}
	s.records[a.ID] = a
	return nil
}

// Upsert creates or updates keyed on (name, issuer) under one lock.
func (s *MemoryStore) Upsert(_ context.Context, a model.Achievement) (string, bool, error) {
	if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.Issuer) == "" {
		return "", false, ErrMissingKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.findByNameIssuerLocked(a.Name, a.Issuer); ok {
		a.ID = existing.ID
		s.records[a.ID] = a
		return a.ID, false, nil
	}
	return s.insertLocked(a), true, nil
}

// FindByNameIssuer returns the record matching both name and issuer.
func (s *MemoryStore) FindByNameIssuer(_ context.Context, name, issuer string) (model.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.findByNameIssuerLocked(name, issuer); ok {
		return a, nil
	}
	return model.Achievement{}, ErrNotFound
}

func (s *MemoryStore) findByNameIssuerLocked(name, issuer string) (model.Achievement, bool) {
	for _, id := range s.order {
		a := s.records[id]
		if strings.EqualFold(a.Name, name) && strings.EqualFold(a.Issuer, issuer) {
			return a, true
		}
	}
	return model.Achievement{}, false
}

// DeleteAll removes every record matching the filter.
func (s *MemoryStore) DeleteAll(_ context.Context, f Filter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	kept := s.order[:0]
	for _, id := range s.order {
		a := s.records[id]
		if matches(a, f) {
			delete(s.records, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed, nil
}

// Count returns the number of stored records.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func matches(a model.Achievement, f Filter) bool {
	if f.Type != "" && a.Type != f.Type {
		return false
	}
	if f.Category != "" && !strings.EqualFold(a.Category, f.Category) {
		return false
	}
	if f.ActiveOnly && !a.Active {
		return false
	}
	return true
}

package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/okian/mergington/internal/domain/model"
	"github.com/okian/mergington/pkg/metrics"
)

// MemoryStore is an in-process Store. The mutex keeps map and roster access
// memory safe under net/http's goroutine-per-request model; it gives no
// ordering guarantee between competing requests.
type MemoryStore struct {
	mu              sync.RWMutex
	activities      map[string]*model.Activity
	seed            []model.Activity
	enforceCapacity bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns a store populated with model.SeedActivities unless
// WithActivities supplies another catalog.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{seed: model.SeedActivities()}
	for _, opt := range opts {
		opt(s)
	}

	s.activities = make(map[string]*model.Activity, len(s.seed))
	for _, a := range s.seed {
		c := a.Clone()
		s.activities[c.Name] = &c
	}
	s.seed = nil

	metrics.UpdateActivityCount(len(s.activities))
	for name, a := range s.activities {
		metrics.UpdateParticipantCount(name, len(a.Participants))
	}
	return s
}

// List returns a deep copy of the registry.
func (s *MemoryStore) List(_ context.Context) (model.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(model.Catalog, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// Get returns a copy of one activity.
func (s *MemoryStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, fmt.Errorf("%w: %q", ErrActivityNotFound, name)
	}
	return a.Clone(), nil
}

// AddParticipant appends email to the roster.
func (s *MemoryStore) AddParticipant(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, fmt.Errorf("%w: %q", ErrActivityNotFound, name)
	}
	if a.HasParticipant(email) {
		return model.Activity{}, fmt.Errorf("%w: %s in %q", ErrAlreadySignedUp, email, name)
	}
	if s.enforceCapacity && a.IsFull() {
		return model.Activity{}, fmt.Errorf("%w: %q has %d of %d", ErrActivityFull, name, len(a.Participants), a.MaxParticipants)
	}

	a.Participants = append(a.Participants, email)
	metrics.UpdateParticipantCount(name, len(a.Participants))
	return a.Clone(), nil
}

// RemoveParticipant drops email from the roster, keeping the order of the rest.
func (s *MemoryStore) RemoveParticipant(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, fmt.Errorf("%w: %q", ErrActivityNotFound, name)
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return model.Activity{}, fmt.Errorf("%w: %s in %q", ErrNotSignedUp, email, name)
	}

	a.Participants = slices.Delete(a.Participants, i, i+1)
	metrics.UpdateParticipantCount(name, len(a.Participants))
	return a.Clone(), nil
}

// Count returns the number of activities.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

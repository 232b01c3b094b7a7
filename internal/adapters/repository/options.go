package repository

import "github.com/okian/mergington/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithActivities replaces the seed catalog. Later duplicates of a name win.
func WithActivities(activities []model.Activity) Option {
	return func(s *MemoryStore) {
		s.seed = activities
	}
}

// WithCapacityEnforcement rejects signups once MaxParticipants is reached.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *MemoryStore) {
		s.enforceCapacity = enabled
	}
}

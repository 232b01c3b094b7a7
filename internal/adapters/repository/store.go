// Package repository holds the activity registry store.
package repository

import (
	"context"

	"github.com/okian/mergington/internal/domain/model"
)

// Store provides read/write access to the activity registry.
type Store interface {
	// List returns a snapshot of every activity keyed by name.
	List(ctx context.Context) (model.Catalog, error)

	// Get returns a copy of one activity.
	// Returns ErrActivityNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// AddParticipant appends email to the roster of name and returns the
	// updated activity. Returns ErrAlreadySignedUp if email is present.
	AddParticipant(ctx context.Context, name, email string) (model.Activity, error)

	// RemoveParticipant drops email from the roster of name and returns the
	// updated activity. Returns ErrNotSignedUp if email is absent.
	RemoveParticipant(ctx context.Context, name, email string) (model.Activity, error)

	// Count returns the number of activities in the registry.
	Count(ctx context.Context) int
}

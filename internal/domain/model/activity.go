// Package model contains domain models passed between layers.
package model

import "slices"

// Activity is an extracurricular offering with its participant roster.
// Name is the registry key and is not repeated in the JSON body.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Catalog maps activity names to activities, matching GET /activities.
type Catalog map[string]Activity

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SpotsLeft returns remaining capacity; may be negative when the cap is not enforced.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull reports whether the roster has reached MaxParticipants.
func (a Activity) IsFull() bool {
	return a.SpotsLeft() <= 0
}

// Clone returns a copy that shares no roster storage with a.
func (a Activity) Clone() Activity {
	a.Participants = slices.Clone(a.Participants)
	if a.Participants == nil {
		a.Participants = []string{}
	}
	return a
}

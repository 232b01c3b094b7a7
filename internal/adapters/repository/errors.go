package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up")
	ErrNotSignedUp      = errors.New("student not signed up")
	ErrActivityFull     = errors.New("activity is full")
)

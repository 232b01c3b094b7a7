package service

import (
	"errors"

	"github.com/okian/mergington/internal/adapters/repository"
)

// Sentinel kinds returned by Service. Registry kinds are re-exported so
// callers need not import the repository package.
var (
	ErrMissingEmail       = errors.New("missing email")
	ErrInvalidBody        = errors.New("invalid request body")
	ErrMissingToken       = errors.New("missing verification token")
	ErrVerificationFailed = errors.New("verification failed")

	ErrActivityNotFound = repository.ErrActivityNotFound
	ErrAlreadySignedUp  = repository.ErrAlreadySignedUp
	ErrNotSignedUp      = repository.ErrNotSignedUp
	ErrActivityFull     = repository.ErrActivityFull
)

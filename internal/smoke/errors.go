package smoke

import "errors"

// Error constants.
var (
	ErrUnhealthy        = errors.New("service health check failed")
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrActivityMissing  = errors.New("activity not in catalog")
	ErrRosterMismatch   = errors.New("roster does not match expected state")
)

// Package verification defines the human-verification contract used before
// a signup is accepted.
package verification

import (
	"context"
	"errors"
)

// Sentinel kinds for verification errors.
var (
	ErrUnavailable = errors.New("verification service unavailable")
	ErrBadResponse = errors.New("verification service returned an unexpected response")
)

// Result is the decoded answer of the verification service.
type Result struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verifier checks a client-supplied token. An error means the service could
// not give an answer; a Result with Success=false means it rejected the token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (Result, error)
}

// StaticVerifier answers every call with the same outcome without any I/O.
type StaticVerifier struct {
	Success bool
}

// Verify implements Verifier.
func (v StaticVerifier) Verify(_ context.Context, _ string, _ string) (Result, error) {
	if !v.Success {
		return Result{Success: false, ErrorCodes: []string{"static-reject"}}, nil
	}
	return Result{Success: true}, nil
}

// Package service provides the activity registry service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/okian/mergington/internal/adapters/repository"
	"github.com/okian/mergington/internal/domain/model"
	"github.com/okian/mergington/internal/domain/verification"
	"github.com/okian/mergington/pkg/logger"
	"github.com/okian/mergington/pkg/metrics"
)

// SignupInput carries one signup request after transport decoding.
type SignupInput struct {
	Activity string
	Email    string
	Token    string
	RemoteIP string

	// BodyErr carries a request body decode failure. It is reported only
	// once the activity is known to exist.
	BodyErr error
}

// Service implements the API dependencies for the activity registry.
type Service struct {
	mu sync.RWMutex

	store    repository.Store
	verifier verification.Verifier

	enforceCapacity bool

	started  bool
	signups  atomic.Int64
	removals atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore injects the registry store. Without it a seeded MemoryStore is built.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithVerifier sets the human-verification client. Without it every
// non-empty token is accepted.
func WithVerifier(v verification.Verifier) Option {
	return func(s *Service) {
		if v != nil {
			s.verifier = v
		}
	}
}

// WithCapacityEnforcement caps rosters at MaxParticipants for the default
// store. It has no effect when WithStore is used.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *Service) {
		s.enforceCapacity = enabled
	}
}

// New constructs a Service. The global logger must be initialized unless
// WithLogger is supplied.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger = s.logger.Named("service")
	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithCapacityEnforcement(s.enforceCapacity))
	}
	if s.verifier == nil {
		s.verifier = verification.StaticVerifier{Success: true}
	}
	return s
}

// Start marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	s.started = true
	s.logger.Info(ctx, "activity service started",
		logger.Int("activities", s.store.Count(ctx)),
		logger.Bool("enforceCapacity", s.enforceCapacity),
	)
	return nil
}

// Stop marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "activity service stopped",
		logger.Any("signups", s.signups.Load()),
		logger.Any("removals", s.removals.Load()),
	)
}

// ListActivities returns a snapshot of the whole registry.
func (s *Service) ListActivities(ctx context.Context) (model.Catalog, error) {
	return s.store.List(ctx)
}

// Signup verifies the token and adds the email to the activity roster.
// Checks run in order: activity exists, body decoded, email present, token
// present, token verified, email not already on the roster.
func (s *Service) Signup(ctx context.Context, in SignupInput) (string, error) {
	if _, err := s.store.Get(ctx, in.Activity); err != nil {
		metrics.RecordSignup(metricLabel(err, in.Activity), metrics.OutcomeRejected)
		return "", err
	}
	if in.BodyErr != nil {
		metrics.RecordSignup(in.Activity, metrics.OutcomeRejected)
		return "", fmt.Errorf("%w: %w", ErrInvalidBody, in.BodyErr)
	}
	if strings.TrimSpace(in.Email) == "" {
		metrics.RecordSignup(in.Activity, metrics.OutcomeRejected)
		return "", ErrMissingEmail
	}
	if strings.TrimSpace(in.Token) == "" {
		metrics.RecordSignup(in.Activity, metrics.OutcomeRejected)
		return "", ErrMissingToken
	}

	res, err := s.verifier.Verify(ctx, in.Token, in.RemoteIP)
	if err != nil {
		s.logger.Warn(ctx, "verification call failed",
			logger.String("activity", in.Activity),
			logger.Error(err),
		)
		metrics.RecordSignup(in.Activity, metrics.OutcomeError)
		return "", fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	if !res.Success {
		s.logger.Info(ctx, "verification rejected",
			logger.String("activity", in.Activity),
			logger.Any("errorCodes", res.ErrorCodes),
		)
		metrics.RecordSignup(in.Activity, metrics.OutcomeRejected)
		return "", ErrVerificationFailed
	}

	a, err := s.store.AddParticipant(ctx, in.Activity, in.Email)
	if err != nil {
		metrics.RecordSignup(in.Activity, metrics.OutcomeRejected)
		return "", err
	}

	s.signups.Add(1)
	metrics.RecordSignup(in.Activity, metrics.OutcomeSuccess)
	s.logger.Info(ctx, "participant signed up",
		logger.String("activity", in.Activity),
		logger.String("email", in.Email),
		logger.Int("participants", len(a.Participants)),
	)
	return fmt.Sprintf("Signed up %s for %s", in.Email, in.Activity), nil
}

// RemoveParticipant drops email from the activity roster.
func (s *Service) RemoveParticipant(ctx context.Context, activity, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		if _, err := s.store.Get(ctx, activity); err != nil {
			metrics.RecordRemoval(metricLabel(err, activity), metrics.OutcomeRejected)
			return "", err
		}
		metrics.RecordRemoval(activity, metrics.OutcomeRejected)
		return "", ErrMissingEmail
	}

	a, err := s.store.RemoveParticipant(ctx, activity, email)
	if err != nil {
		metrics.RecordRemoval(metricLabel(err, activity), metrics.OutcomeRejected)
		return "", err
	}

	s.removals.Add(1)
	metrics.RecordRemoval(activity, metrics.OutcomeSuccess)
	s.logger.Info(ctx, "participant removed",
		logger.String("activity", activity),
		logger.String("email", email),
		logger.Int("participants", len(a.Participants)),
	)
	return fmt.Sprintf("Removed %s from %s", email, activity), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":         s.started,
		"enforceCapacity": s.enforceCapacity,
		"signups":         s.signups.Load(),
		"removals":        s.removals.Load(),
	}

	catalog, err := s.store.List(ctx)
	if err != nil {
		return stats
	}
	total := 0
	for _, a := range catalog {
		total += len(a.Participants)
	}
	stats["activities"] = len(catalog)
	stats["participants"] = total
	metrics.UpdateActivityCount(len(catalog))
	return stats
}

// metricLabel keeps unknown activity names out of metric label values.
func metricLabel(err error, activity string) string {
	if errors.Is(err, ErrActivityNotFound) {
		return "unknown"
	}
	return activity
}

package smoke

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/okian/mergington/pkg/logger"
)

// Run executes the walkthrough against config.BaseURL. The target email must
// not already be on the roster.
func Run(ctx context.Context, config *Config, log logger.Logger) (*Report, error) {
	report := &Report{StartTime: time.Now()}
	client := newHTTPClient(config.BaseURL, config.Timeout)

	log.Info(ctx, "starting smoke run",
		logger.String("baseURL", config.BaseURL),
		logger.String("activity", config.Activity),
		logger.String("email", config.Email),
		logger.Duration("timeout", config.Timeout))

	status, err := client.Health(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if status != http.StatusOK {
		return report, fmt.Errorf("%w: status %d", ErrUnhealthy, status)
	}

	if err := expectRoster(ctx, client, config, false); err != nil {
		return report, err
	}

	signup := func() (int, Response, error) {
		return client.Signup(ctx, config.Activity, config.Email, config.Token)
	}
	remove := func() (int, Response, error) {
		return client.Remove(ctx, config.Activity, config.Email)
	}

	if err := runSteps(ctx, log, config, report,
		request{"signup", http.StatusOK, signup},
		request{"duplicate signup", http.StatusBadRequest, signup},
	); err != nil {
		return report, err
	}
	if err := expectRoster(ctx, client, config, true); err != nil {
		return report, err
	}

	if err := runSteps(ctx, log, config, report,
		request{"remove", http.StatusOK, remove},
		request{"repeat remove", http.StatusBadRequest, remove},
	); err != nil {
		return report, err
	}
	if err := expectRoster(ctx, client, config, false); err != nil {
		return report, err
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
	log.Info(ctx, "smoke run completed",
		logger.Int("steps", len(report.Steps)),
		logger.Duration("duration", report.Duration))
	return report, nil
}

// request is one walkthrough call and the status it must return.
type request struct {
	name string
	want int
	call func() (int, Response, error)
}

func runSteps(ctx context.Context, log logger.Logger, config *Config, report *Report, steps ...request) error {
	for _, s := range steps {
		start := time.Now()
		status, body, err := s.call()
		step := Step{Name: s.name, Status: status, Want: s.want, Body: body, Duration: time.Since(start)}
		report.Steps = append(report.Steps, step)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if config.Verbose {
			log.Info(ctx, "step", logger.String("name", s.name), logger.Int("status", status),
				logger.String("message", body.Message), logger.String("detail", body.Detail))
		}
		if status != s.want {
			return fmt.Errorf("%w: %s returned %d (want %d): %s", ErrUnexpectedStatus, s.name, status, s.want, body.Detail)
		}
	}
	return nil
}

// expectRoster checks whether config.Email is on the target roster.
func expectRoster(ctx context.Context, client *HTTPClient, config *Config, present bool) error {
	catalog, err := client.Activities(ctx)
	if err != nil {
		return err
	}
	a, ok := catalog[config.Activity]
	if !ok {
		return fmt.Errorf("%w: %q", ErrActivityMissing, config.Activity)
	}
	if slices.Contains(a.Participants, config.Email) != present {
		return fmt.Errorf("%w: %s present=%t", ErrRosterMismatch, config.Email, !present)
	}
	return nil
}

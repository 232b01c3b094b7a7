package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/okian/mergington/pkg/metrics"
	"github.com/okian/mergington/pkg/telemetry"
)

// Default reCAPTCHA settings.
const (
	DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	defaultTimeout   = 5 * time.Second
	maxResponseBytes = 64 << 10
)

// RecaptchaVerifier calls the reCAPTCHA siteverify endpoint. It never retries.
type RecaptchaVerifier struct {
	secret    string
	verifyURL string
	timeout   time.Duration
	client    *http.Client
	tracer    trace.Tracer
}

var _ Verifier = (*RecaptchaVerifier)(nil)

// NewRecaptchaVerifier creates a verifier that authenticates with secret.
func NewRecaptchaVerifier(secret string, opts ...Option) *RecaptchaVerifier {
	v := &RecaptchaVerifier{
		secret:    secret,
		verifyURL: DefaultVerifyURL,
		timeout:   defaultTimeout,
		client:    &http.Client{},
		tracer:    telemetry.Tracer("github.com/okian/mergington/internal/domain/verification"),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify posts the token to the siteverify endpoint and decodes its answer.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) (Result, error) {
	ctx, span := v.tracer.Start(ctx, "recaptcha.siteverify", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	res, err := v.verify(ctx, token, remoteIP)
	metrics.RecordVerificationLatency(float64(time.Since(start).Milliseconds()))

	switch {
	case err != nil:
		metrics.RecordVerification(metrics.OutcomeError)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case !res.Success:
		metrics.RecordVerification(metrics.OutcomeRejected)
		span.SetAttributes(attribute.StringSlice("recaptcha.error_codes", res.ErrorCodes))
	default:
		metrics.RecordVerification(metrics.OutcomeSuccess)
	}
	span.SetAttributes(attribute.Bool("recaptcha.success", res.Success))
	return res, err
}

func (v *RecaptchaVerifier) verify(ctx context.Context, token, remoteIP string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("%w: build request: %w", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return Result{}, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var res Result
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&res); err != nil {
		return Result{}, fmt.Errorf("%w: decode: %w", ErrBadResponse, err)
	}
	return res, nil
}

package verification

import (
	"net/http"
	"time"
)

// Option applies a configuration option to the RecaptchaVerifier.
type Option func(*RecaptchaVerifier)

// WithVerifyURL points the verifier at another siteverify endpoint.
func WithVerifyURL(url string) Option {
	return func(v *RecaptchaVerifier) {
		if url != "" {
			v.verifyURL = url
		}
	}
}

// WithTimeout bounds each verification call.
func WithTimeout(timeout time.Duration) Option {
	return func(v *RecaptchaVerifier) {
		if timeout > 0 {
			v.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the HTTP client used for the outbound call.
func WithHTTPClient(c *http.Client) Option {
	return func(v *RecaptchaVerifier) {
		if c != nil {
			v.client = c
		}
	}
}

// Package config defines service configuration and its layered loader.
package config

import "github.com/okian/mergington/internal/domain/verification"

// Default upstream and credentials for the human-verification service.
// The secret is the public reCAPTCHA test key, which accepts any token.
const (
	DefaultRecaptchaVerifyURL = verification.DefaultVerifyURL
	DefaultRecaptchaSecret    = "6LeIxAcTAAAAAGG-vFI1TnRWxMZNFuojJ4WifJWe"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// RecaptchaEnabled turns the upstream verification call on. When false
	// every non-empty token is accepted.
	RecaptchaEnabled bool `koanf:"recaptcha_enabled"`

	// RecaptchaSecret is the shared secret sent with each verification.
	RecaptchaSecret string `koanf:"recaptcha_secret"`

	// RecaptchaVerifyURL is the siteverify endpoint.
	RecaptchaVerifyURL string `koanf:"recaptcha_verify_url"`

	// RecaptchaTimeoutMS bounds a single verification call.
	RecaptchaTimeoutMS int `koanf:"recaptcha_timeout_ms"`

	// EnforceCapacity rejects signups once max_participants is reached.
	EnforceCapacity bool `koanf:"enforce_capacity"`

	// OTelEndpoint is the OTLP/HTTP traces endpoint; empty disables tracing.
	OTelEndpoint string `koanf:"otel_endpoint"`

	// ServiceName is reported as the tracing resource name.
	ServiceName string `koanf:"service_name"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":8000",
		RecaptchaEnabled:   true,
		RecaptchaSecret:    DefaultRecaptchaSecret,
		RecaptchaVerifyURL: DefaultRecaptchaVerifyURL,
		RecaptchaTimeoutMS: 5000,
		EnforceCapacity:    false,
		ServiceName:        "mergington-activities",
	}
}

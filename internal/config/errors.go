package config

import "errors"

// Sentinels returned by Load and Validate.
var (
	// ErrInvalidConfig marks a setting that parsed but cannot run the server,
	// such as an empty addr or a non-positive recaptcha_timeout_ms.
	ErrInvalidConfig = errors.New("invalid activities config")
	// ErrLoadConfig marks a failure reading MERGINGTON_CONFIG or the
	// MERGINGTON_ environment layer.
	ErrLoadConfig = errors.New("load activities config")
)

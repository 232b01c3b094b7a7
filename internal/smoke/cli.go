package smoke

import "os"

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`Mergington Activities Smoke Tool
================================

Signs a student up for an activity, repeats the signup expecting a
rejection, removes the student, and repeats the removal expecting a
rejection. The roster is checked between every pair of steps.

Usage:
  go run ./cmd/smoke [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -email string
        Student email to sign up and remove (default "smoke@mergington.edu")
  -activity string
        Activity name (default "Chess Club")
  -token string
        reCAPTCHA token sent with the signup (default "smoke-token")
  -timeout duration
        HTTP request timeout (default 10s)
  -json
        Emit JSON logs
  -verbose
        Log every response
  -help
        Show this help message

The default token is only accepted when the service runs with the reCAPTCHA
test secret or with MERGINGTON_RECAPTCHA_ENABLED=false.
`)
}

// Package smoke drives a running activities service through a signup and
// removal walkthrough and checks every response.
package smoke

import "time"

// Config holds configuration for the smoke run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Email    string        // Student email signed up and removed
	Activity string        // Target activity name
	Token    string        // reCAPTCHA token sent with the signup
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Log every response body
}

// Activity mirrors one entry of GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Response is the union of the success and error bodies.
type Response struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Detail  string `json:"detail"`
}

// Step records the outcome of one walkthrough request.
type Step struct {
	Name     string
	Status   int
	Want     int
	Body     Response
	Duration time.Duration
}

// Report holds the run statistics.
type Report struct {
	Steps     []Step
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

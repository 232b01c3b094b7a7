// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/mergington/internal/app"
	"github.com/okian/mergington/internal/domain/model"
	"github.com/okian/mergington/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	ActivityLister
	Signer
	Remover
}

// Server wires HTTP routes for the business API.
type Server struct {
	activitiesHandler   *ActivitiesHandler
	signupHandler       *SignupHandler
	participantsHandler *ParticipantsHandler
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, log logger.Logger) *Server {
	if log == nil {
		log = logger.Get()
	}
	log = log.Named("api")
	return &Server{
		activitiesHandler:   NewActivitiesHandler(deps, log),
		signupHandler:       NewSignupHandler(deps, log),
		participantsHandler: NewParticipantsHandler(deps, log),
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /activities", MetricsMiddleware(s.activitiesHandler.HandleList, "activities"))
	mux.HandleFunc("POST /activities/{name}/signup", MetricsMiddleware(s.signupHandler.HandleSignup, "signup"))
	mux.HandleFunc("DELETE /activities/{name}/participants", MetricsMiddleware(s.participantsHandler.HandleRemove, "participants"))
}

type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse keeps the "detail" key the browser client reads.
type errorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	if detail == "" {
		detail = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Code: code, Detail: detail})
}

// failure is the HTTP rendering of a service error. Unclassified errors
// carry no kind.
type failure struct {
	status int
	code   string
	kind   error
	detail string
}

// classify maps service sentinels to status, code and client-facing detail.
func classify(err error) failure {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		return failure{http.StatusNotFound, "not_found", ErrNotFound, "Activity not found"}
	case errors.Is(err, service.ErrInvalidBody):
		return failure{http.StatusBadRequest, "bad_request", ErrBadRequest, "Request body must be JSON with a recaptcha_token field"}
	case errors.Is(err, service.ErrMissingEmail):
		return failure{http.StatusBadRequest, "bad_request", ErrBadRequest, "Missing email"}
	case errors.Is(err, service.ErrMissingToken):
		return failure{http.StatusBadRequest, "bad_request", ErrBadRequest, "Missing reCAPTCHA token"}
	case errors.Is(err, service.ErrVerificationFailed):
		return failure{http.StatusBadRequest, "bad_request", ErrBadRequest, "Invalid reCAPTCHA. Please try again."}
	case errors.Is(err, service.ErrAlreadySignedUp):
		return failure{http.StatusBadRequest, "bad_request", ErrBadRequest, "Student already signed up for this activity"}
	case errors.Is(err, service.ErrNotSignedUp):
		return failure{http.StatusBadRequest, "bad_request", ErrBadRequest, "Student is not signed up for this activity"}
	case errors.Is(err, service.ErrActivityFull):
		return failure{http.StatusBadRequest, "bad_request", ErrBadRequest, "Activity is full"}
	default:
		return failure{http.StatusInternalServerError, "internal_error", nil, ""}
	}
}

// respondError classifies err, logs it against op and writes the response.
func respondError(ctx context.Context, w http.ResponseWriter, log logger.Logger, op string, err error) {
	f := classify(err)
	if f.status >= http.StatusInternalServerError {
		log.Error(ctx, "request failed", logger.Error(Wrap(op, err)))
	} else {
		log.Debug(ctx, "request rejected", logger.Int("status", f.status), logger.Error(WrapKind(op, f.kind, err)))
	}
	writeError(w, f.status, f.code, f.detail)
}

// Catalog is the read shape of GET /activities.
type Catalog = model.Catalog

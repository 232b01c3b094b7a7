package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	service "github.com/okian/mergington/internal/app"
	"github.com/okian/mergington/pkg/logger"
)

const maxSignupBodyBytes = 1 << 20

// Signer performs signups.
type Signer interface {
	Signup(ctx context.Context, in service.SignupInput) (string, error)
}

// SignupHandler handles signup requests.
type SignupHandler struct {
	deps Signer
	log  logger.Logger
}

// NewSignupHandler creates a new signup handler.
func NewSignupHandler(deps Signer, log logger.Logger) *SignupHandler {
	return &SignupHandler{deps: deps, log: log}
}

// signupRequest mirrors the OpenAPI schema for the signup body.
type signupRequest struct {
	RecaptchaToken string `json:"recaptcha_token"`
}

// decodeSignupRequest reads the body; an empty body is a request without a token.
func decodeSignupRequest(r *http.Request) (signupRequest, error) {
	var req signupRequest
	if r.Body == nil {
		return req, nil
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if errors.Is(err, io.EOF) {
		return req, nil
	}
	return req, err
}

// HandleSignup handles POST /activities/{name}/signup?email=....
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	const op = "api.signup"
	r.Body = http.MaxBytesReader(w, r.Body, maxSignupBodyBytes)

	// Email and body problems are reported by the service after the
	// activity lookup, so an unknown activity is always a 404.
	req, bodyErr := decodeSignupRequest(r)
	msg, err := h.deps.Signup(r.Context(), service.SignupInput{
		Activity: r.PathValue("name"),
		Email:    strings.TrimSpace(r.URL.Query().Get("email")),
		Token:    strings.TrimSpace(req.RecaptchaToken),
		RemoteIP: remoteIP(r),
		BodyErr:  bodyErr,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, op, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

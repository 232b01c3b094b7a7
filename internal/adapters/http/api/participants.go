package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/mergington/pkg/logger"
)

// Remover removes participants.
type Remover interface {
	RemoveParticipant(ctx context.Context, activity, email string) (string, error)
}

// ParticipantsHandler handles roster removal requests.
type ParticipantsHandler struct {
	deps Remover
	log  logger.Logger
}

// NewParticipantsHandler creates a new participants handler.
func NewParticipantsHandler(deps Remover, log logger.Logger) *ParticipantsHandler {
	return &ParticipantsHandler{deps: deps, log: log}
}

// HandleRemove handles DELETE /activities/{name}/participants?email=....
func (h *ParticipantsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	const op = "api.remove_participant"
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	msg, err := h.deps.RemoveParticipant(r.Context(), r.PathValue("name"), email)
	if err != nil {
		respondError(r.Context(), w, h.log, op, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

package api

import (
	"context"
	"net/http"

	"github.com/okian/mergington/pkg/logger"
)

// ActivityLister reads the registry.
type ActivityLister interface {
	ListActivities(ctx context.Context) (Catalog, error)
}

// ActivitiesHandler handles catalog requests.
type ActivitiesHandler struct {
	deps ActivityLister
	log  logger.Logger
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivityLister, log logger.Logger) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps, log: log}
}

// HandleList handles GET /activities.
func (h *ActivitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_activities"
	catalog, err := h.deps.ListActivities(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.log, op, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

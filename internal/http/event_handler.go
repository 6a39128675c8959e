package http

import (
	"encoding/json"
	"net/http"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

// EventHandler exposes read access to the event stream
type EventHandler struct {
	eventRepo domain.EventRepository
	adminAuth func(http.Handler) http.Handler
	logger    logger.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventRepo domain.EventRepository, adminAuth func(http.Handler) http.Handler, logger logger.Logger) *EventHandler {
	return &EventHandler{
		eventRepo: eventRepo,
		adminAuth: adminAuth,
		logger:    logger,
	}
}

func (h *EventHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/events.list", h.adminAuth(http.HandlerFunc(h.handleList)))
}

func (h *EventHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.ListEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	events, err := h.eventRepo.ListByPerson(r.Context(), req.PersonID, req.Limit)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list events")
		WriteJSONError(w, "Failed to list events", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
	})
}

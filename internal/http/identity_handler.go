package http

import (
	"encoding/json"
	"net/http"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

// IdentityHandler exposes identity resolution
type IdentityHandler struct {
	identityService    domain.IdentityService
	attributionService domain.AttributionService
	logger             logger.Logger
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(identityService domain.IdentityService, attributionService domain.AttributionService, logger logger.Logger) *IdentityHandler {
	return &IdentityHandler{
		identityService:    identityService,
		attributionService: attributionService,
		logger:             logger,
	}
}

func (h *IdentityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/identity.resolve", http.HandlerFunc(h.handleResolve))
}

// resolveBody extends the resolve payload with the optional visitor pair
// used only for stitching, never for matching
type resolveBody struct {
	domain.ResolvePersonRequest
	AnonymousID string `json:"anonymous_id,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
}

func (h *IdentityHandler) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body resolveBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	signals, err := body.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	person, created, err := h.identityService.ResolvePerson(r.Context(), signals)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to resolve person")
		WriteJSONError(w, "Failed to resolve person", http.StatusInternalServerError)
		return
	}

	if body.AnonymousID != "" && body.SessionID != "" {
		if err := h.attributionService.StitchAnonymousTouch(r.Context(), person.ID, body.AnonymousID, body.SessionID); err != nil {
			// the resolved person is already committed; stitching can catch
			// up on the next resolve
			h.logger.WithFields(map[string]interface{}{
				"person_id": person.ID,
				"error":     err.Error(),
			}).Error("Failed to stitch anonymous history")
		}
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]interface{}{
		"person":  person,
		"created": created,
	})
}

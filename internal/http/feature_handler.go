package http

import (
	"encoding/json"
	"net/http"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

// FeatureHandler exposes the scheduled feature recompute endpoint and
// snapshot reads
type FeatureHandler struct {
	service      domain.FeatureService
	featuresRepo domain.PersonFeaturesRepository
	cronAuth     func(http.Handler) http.Handler
	logger       logger.Logger
}

// NewFeatureHandler creates a new feature handler
func NewFeatureHandler(service domain.FeatureService, featuresRepo domain.PersonFeaturesRepository, cronAuth func(http.Handler) http.Handler, logger logger.Logger) *FeatureHandler {
	return &FeatureHandler{
		service:      service,
		featuresRepo: featuresRepo,
		cronAuth:     cronAuth,
		logger:       logger,
	}
}

func (h *FeatureHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/features.compute", h.cronAuth(http.HandlerFunc(h.handleCompute)))
	mux.Handle("/api/features.get", http.HandlerFunc(h.handleGet))
}

type computeFeaturesBody struct {
	PersonID string `json:"person_id,omitempty"`
}

// handleCompute recomputes one person when person_id is given, otherwise
// sweeps everyone
func (h *FeatureHandler) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body computeFeaturesBody
	if r.Body != nil {
		// an empty body means a full sweep
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	if body.PersonID != "" {
		features, err := h.service.ComputePersonFeatures(r.Context(), body.PersonID)
		if err != nil {
			if _, ok := err.(*domain.ErrPersonNotFound); ok {
				WriteJSONError(w, "Person not found", http.StatusNotFound)
				return
			}
			h.logger.WithFields(map[string]interface{}{
				"person_id": body.PersonID,
				"error":     err.Error(),
			}).Error("Failed to compute person features")
			WriteJSONError(w, "Failed to compute features", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"features": features,
		})
		return
	}

	result, err := h.service.ComputeAllPersonFeatures(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to compute all person features")
		WriteJSONError(w, "Failed to compute features", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result": result,
	})
}

func (h *FeatureHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	personID := r.URL.Query().Get("person_id")
	if personID == "" {
		WriteJSONError(w, "person_id is required", http.StatusBadRequest)
		return
	}

	features, err := h.featuresRepo.GetFeatures(r.Context(), personID)
	if err != nil {
		if _, ok := err.(*domain.ErrPersonFeaturesNotFound); ok {
			WriteJSONError(w, "Features not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get person features")
		WriteJSONError(w, "Failed to get features", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"features": features,
	})
}

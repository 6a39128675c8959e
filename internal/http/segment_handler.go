package http

import (
	"encoding/json"
	"net/http"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

// SegmentHandler exposes segment administration and evaluation. Admin
// endpoints sit behind JWT auth; the evaluation sweep behind the cron
// secret.
type SegmentHandler struct {
	service   domain.SegmentService
	adminAuth func(http.Handler) http.Handler
	cronAuth  func(http.Handler) http.Handler
	logger    logger.Logger
}

// NewSegmentHandler creates a new segment handler
func NewSegmentHandler(service domain.SegmentService, adminAuth, cronAuth func(http.Handler) http.Handler, logger logger.Logger) *SegmentHandler {
	return &SegmentHandler{
		service:   service,
		adminAuth: adminAuth,
		cronAuth:  cronAuth,
		logger:    logger,
	}
}

func (h *SegmentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/segments.list", h.adminAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/segments.get", h.adminAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/segments.create", h.adminAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/segments.update", h.adminAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/segments.delete", h.adminAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/segments.evaluate", h.cronAuth(http.HandlerFunc(h.handleEvaluate)))
}

func (h *SegmentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	segments, err := h.service.ListSegments(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list segments")
		WriteJSONError(w, "Failed to list segments", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"segments": segments,
	})
}

func (h *SegmentHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := &domain.GetSegmentRequest{ID: r.URL.Query().Get("id")}
	segment, err := h.service.GetSegment(r.Context(), req)
	if err != nil {
		h.writeSegmentError(w, err, "Failed to get segment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"segment": segment,
	})
}

func (h *SegmentHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	segment, err := h.service.CreateSegment(r.Context(), &req)
	if err != nil {
		h.writeSegmentError(w, err, "Failed to create segment")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"segment": segment,
	})
}

func (h *SegmentHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	segment, err := h.service.UpdateSegment(r.Context(), &req)
	if err != nil {
		h.writeSegmentError(w, err, "Failed to update segment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"segment": segment,
	})
}

func (h *SegmentHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.DeleteSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSegment(r.Context(), &req); err != nil {
		h.writeSegmentError(w, err, "Failed to delete segment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}

// handleEvaluate runs the sweep for one person when person_id is given,
// otherwise for everyone
func (h *SegmentHandler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.EvaluateSegmentsRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if req.PersonID != "" {
		transitions, err := h.service.EvaluateAllSegmentsForPerson(r.Context(), req.PersonID)
		if err != nil {
			h.writeSegmentError(w, err, "Failed to evaluate segments")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"transitions": transitions,
		})
		return
	}

	result, err := h.service.EvaluateAllPersons(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to evaluate all persons")
		WriteJSONError(w, "Failed to evaluate segments", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result": result,
	})
}

func (h *SegmentHandler) writeSegmentError(w http.ResponseWriter, err error, fallback string) {
	switch err.(type) {
	case domain.ValidationError:
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case *domain.ErrSegmentNotFound:
		WriteJSONError(w, "Segment not found", http.StatusNotFound)
	case *domain.ErrPersonNotFound:
		WriteJSONError(w, "Person not found", http.StatusNotFound)
	case *domain.ConflictError:
		WriteJSONError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.WithField("error", err.Error()).Error(fallback)
		WriteJSONError(w, fallback, http.StatusInternalServerError)
	}
}

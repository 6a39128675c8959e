package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

// TrackingHandler exposes the public attribution endpoints. It alone reads
// and writes the visitor cookie; the service layer only sees payloads.
type TrackingHandler struct {
	service domain.AttributionService
	logger  logger.Logger
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(service domain.AttributionService, logger logger.Logger) *TrackingHandler {
	return &TrackingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *TrackingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/track.pageView", http.HandlerFunc(h.handlePageView))
	mux.Handle("/api/track.conversion", http.HandlerFunc(h.handleConversion))
	mux.Handle("/api/attribution.get", http.HandlerFunc(h.handleGetAttribution))
	mux.Handle("/visit", http.HandlerFunc(h.handleVisit))
}

// readTrackingCookie decodes the visitor cookie; nil when absent or malformed
func readTrackingCookie(r *http.Request) *domain.TrackingCookie {
	cookie, err := r.Cookie(domain.TrackingCookieName)
	if err != nil {
		return nil
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	return domain.DecodeTrackingCookie(value)
}

// writeTrackingCookie sets the visitor cookie per the tracking contract:
// httpOnly, site-scoped path, SameSite=Lax, 30-day TTL
func (h *TrackingHandler) writeTrackingCookie(w http.ResponseWriter, cookie domain.TrackingCookie) {
	payload, err := cookie.Encode()
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to encode tracking cookie")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     domain.TrackingCookieName,
		Value:    url.QueryEscape(payload),
		Path:     "/",
		MaxAge:   int(domain.AttributionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

type pageViewBody struct {
	URL         string `json:"url"`
	Referrer    string `json:"referrer"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UTMContent  string `json:"utm_content"`
	UTMTerm     string `json:"utm_term"`
}

func (h *TrackingHandler) handlePageView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body pageViewBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req := &domain.TrackPageViewRequest{
		URL:      body.URL,
		Referrer: body.Referrer,
		UTM: domain.UTMParams{
			Source:   body.UTMSource,
			Medium:   body.UTMMedium,
			Campaign: body.UTMCampaign,
			Content:  body.UTMContent,
			Term:     body.UTMTerm,
		},
	}

	next, err := h.service.TrackPageView(r.Context(), req, readTrackingCookie(r))
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to track page view")
		WriteJSONError(w, "Failed to track page view", http.StatusInternalServerError)
		return
	}

	h.writeTrackingCookie(w, next)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"anonymous_id": next.AnonymousID,
		"session_id":   next.SessionID,
	})
}

func (h *TrackingHandler) handleConversion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.TrackConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.TrackConversion(r.Context(), &req, readTrackingCookie(r)); err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to track conversion")
		WriteJSONError(w, "Failed to track conversion", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tracked": true,
	})
}

// handleVisit is the email click-redirect endpoint: ?m=<message id> and
// ?u=<base64url destination>. The destination must decode to a well-formed
// absolute http(s) URL, otherwise the request fails instead of redirecting.
func (h *TrackingHandler) handleVisit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	messageID := r.URL.Query().Get("m")
	encodedURL := r.URL.Query().Get("u")
	if messageID == "" || encodedURL == "" {
		WriteJSONError(w, "Missing required parameters", http.StatusBadRequest)
		return
	}

	destination, ok := decodeDestinationURL(encodedURL)
	if !ok {
		WriteJSONError(w, "Invalid destination URL", http.StatusBadRequest)
		return
	}

	next, err := h.service.TrackEmailClick(r.Context(), messageID, destination, readTrackingCookie(r))
	if err != nil {
		// the redirect must still happen when tracking fails
		h.logger.WithFields(map[string]interface{}{
			"email_message_id": messageID,
			"error":            err.Error(),
		}).Error("Failed to track email click")
	} else {
		h.writeTrackingCookie(w, next)
	}

	http.Redirect(w, r, destination, http.StatusFound)
}

// decodeDestinationURL decodes and validates the redirect target,
// rejecting anything that is not an absolute http(s) URL
func decodeDestinationURL(encoded string) (string, bool) {
	decoded, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		// tolerate unpadded encoders
		decoded, err = base64.RawURLEncoding.DecodeString(encoded)
		if err != nil {
			return "", false
		}
	}

	u, err := url.Parse(string(decoded))
	if err != nil {
		return "", false
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}

	return u.String(), true
}

func (h *TrackingHandler) handleGetAttribution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	anonymousID := r.URL.Query().Get("anonymous_id")
	sessionID := r.URL.Query().Get("session_id")

	data, err := h.service.GetAttribution(r.Context(), anonymousID, sessionID)
	if err != nil {
		switch err.(type) {
		case domain.ValidationError:
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case *domain.ErrAttributionNotFound:
			WriteJSONError(w, "Attribution not found", http.StatusNotFound)
		default:
			h.logger.WithField("error", err.Error()).Error("Failed to get attribution")
			WriteJSONError(w, "Failed to get attribution", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"attribution": data,
	})
}

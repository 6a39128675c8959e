package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_attribution_repository.go -package mocks github.com/courseloop/growthplane/internal/domain AttributionRepository
//go:generate mockgen -destination mocks/mock_attribution_service.go -package mocks github.com/courseloop/growthplane/internal/domain AttributionService

const (
	// TrackingCookieName is the visitor cookie carrying the id pair
	TrackingCookieName = "gp_vid"
	// AttributionTTL bounds both the cookie and the attribution row
	AttributionTTL = 30 * 24 * time.Hour
)

// TrackingCookie is the JSON payload of the visitor cookie: two opaque UUIDs
type TrackingCookie struct {
	AnonymousID string `json:"anonymous_id"`
	SessionID   string `json:"session_id"`
}

// Valid reports whether both ids parse as UUIDs
func (c *TrackingCookie) Valid() bool {
	if c == nil {
		return false
	}
	if _, err := uuid.Parse(c.AnonymousID); err != nil {
		return false
	}
	if _, err := uuid.Parse(c.SessionID); err != nil {
		return false
	}
	return true
}

// Encode serializes the cookie payload to JSON
func (c *TrackingCookie) Encode() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode tracking cookie: %w", err)
	}
	return string(data), nil
}

// DecodeTrackingCookie parses a cookie value; malformed payloads return nil
// so the caller falls back to generating a fresh pair
func DecodeTrackingCookie(value string) *TrackingCookie {
	var c TrackingCookie
	if err := json.Unmarshal([]byte(value), &c); err != nil {
		return nil
	}
	if !c.Valid() {
		return nil
	}
	return &c
}

// EnsureTrackingCookie returns the current cookie, or a freshly generated
// pair when absent or malformed. Pure: the HTTP layer alone reads and
// writes the actual cookie header.
func EnsureTrackingCookie(current *TrackingCookie) (TrackingCookie, bool) {
	if current.Valid() {
		return *current, false
	}
	return TrackingCookie{
		AnonymousID: uuid.New().String(),
		SessionID:   uuid.New().String(),
	}, true
}

// UTMParams carries the campaign query parameters of a touch
type UTMParams struct {
	Source   string `json:"utm_source,omitempty"`
	Medium   string `json:"utm_medium,omitempty"`
	Campaign string `json:"utm_campaign,omitempty"`
	Content  string `json:"utm_content,omitempty"`
	Term     string `json:"utm_term,omitempty"`
}

// UTMFromQuery extracts utm_* parameters from a query string
func UTMFromQuery(values url.Values) UTMParams {
	return UTMParams{
		Source:   values.Get("utm_source"),
		Medium:   values.Get("utm_medium"),
		Campaign: values.Get("utm_campaign"),
		Content:  values.Get("utm_content"),
		Term:     values.Get("utm_term"),
	}
}

// AttributionData records the marketing touches of one visitor.
// First-touch fields are write-once; UTM and email fields are last-touch.
type AttributionData struct {
	AnonymousID      string          `json:"anonymous_id"`
	SessionID        string          `json:"session_id"`
	EmailMessageID   *NullableString `json:"email_message_id,omitempty"`
	LinkURL          *NullableString `json:"link_url,omitempty"`
	UTMSource        *NullableString `json:"utm_source,omitempty"`
	UTMMedium        *NullableString `json:"utm_medium,omitempty"`
	UTMCampaign      *NullableString `json:"utm_campaign,omitempty"`
	UTMContent       *NullableString `json:"utm_content,omitempty"`
	UTMTerm          *NullableString `json:"utm_term,omitempty"`
	FirstLandingPage *NullableString `json:"first_landing_page,omitempty"`
	FirstReferrer    *NullableString `json:"first_referrer,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	ExpiresAt        time.Time       `json:"expires_at"`
}

// NewAttributionData creates an empty attribution row for a visitor
func NewAttributionData(anonymousID, sessionID string, now time.Time) *AttributionData {
	return &AttributionData{
		AnonymousID: anonymousID,
		SessionID:   sessionID,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(AttributionTTL),
	}
}

// IsExpired reports whether the attribution window has closed
func (a *AttributionData) IsExpired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}

// ApplyPageView folds a page view touch in: first-touch fields only when
// absent, UTM fields always overwritten
func (a *AttributionData) ApplyPageView(landingPage, referrer string, utm UTMParams, now time.Time) {
	if a.FirstLandingPage == nil || a.FirstLandingPage.IsNull {
		a.FirstLandingPage = StringValue(landingPage)
	}
	if (a.FirstReferrer == nil || a.FirstReferrer.IsNull) && referrer != "" {
		a.FirstReferrer = StringValue(referrer)
	}
	a.UTMSource = StringValue(utm.Source)
	a.UTMMedium = StringValue(utm.Medium)
	a.UTMCampaign = StringValue(utm.Campaign)
	a.UTMContent = StringValue(utm.Content)
	a.UTMTerm = StringValue(utm.Term)
	a.UpdatedAt = now
}

// ApplyEmailClick folds an email click touch in (last-touch)
func (a *AttributionData) ApplyEmailClick(emailMessageID, linkURL string, now time.Time) {
	a.EmailMessageID = StringValue(emailMessageID)
	a.LinkURL = StringValue(linkURL)
	a.UpdatedAt = now
}

// Snapshot freezes the full attribution chain into event properties
func (a *AttributionData) Snapshot() MapOfAny {
	snapshot := MapOfAny{}
	put := func(key string, v *NullableString) {
		if v != nil && !v.IsNull && v.String != "" {
			snapshot[key] = v.String
		}
	}
	put("first_landing_page", a.FirstLandingPage)
	put("first_referrer", a.FirstReferrer)
	put("utm_source", a.UTMSource)
	put("utm_medium", a.UTMMedium)
	put("utm_campaign", a.UTMCampaign)
	put("utm_content", a.UTMContent)
	put("utm_term", a.UTMTerm)
	put("email_message_id", a.EmailMessageID)
	return snapshot
}

// For database scanning
type dbAttributionData struct {
	AnonymousID      string
	SessionID        string
	EmailMessageID   NullableString
	LinkURL          NullableString
	UTMSource        NullableString
	UTMMedium        NullableString
	UTMCampaign      NullableString
	UTMContent       NullableString
	UTMTerm          NullableString
	FirstLandingPage NullableString
	FirstReferrer    NullableString
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ExpiresAt        time.Time
}

// ScanAttributionData scans an attribution row from the database
func ScanAttributionData(scanner interface {
	Scan(dest ...interface{}) error
}) (*AttributionData, error) {
	var dba dbAttributionData
	if err := scanner.Scan(
		&dba.AnonymousID,
		&dba.SessionID,
		&dba.EmailMessageID,
		&dba.LinkURL,
		&dba.UTMSource,
		&dba.UTMMedium,
		&dba.UTMCampaign,
		&dba.UTMContent,
		&dba.UTMTerm,
		&dba.FirstLandingPage,
		&dba.FirstReferrer,
		&dba.CreatedAt,
		&dba.UpdatedAt,
		&dba.ExpiresAt,
	); err != nil {
		return nil, err
	}

	return &AttributionData{
		AnonymousID:      dba.AnonymousID,
		SessionID:        dba.SessionID,
		EmailMessageID:   &dba.EmailMessageID,
		LinkURL:          &dba.LinkURL,
		UTMSource:        &dba.UTMSource,
		UTMMedium:        &dba.UTMMedium,
		UTMCampaign:      &dba.UTMCampaign,
		UTMContent:       &dba.UTMContent,
		UTMTerm:          &dba.UTMTerm,
		FirstLandingPage: &dba.FirstLandingPage,
		FirstReferrer:    &dba.FirstReferrer,
		CreatedAt:        dba.CreatedAt,
		UpdatedAt:        dba.UpdatedAt,
		ExpiresAt:        dba.ExpiresAt,
	}, nil
}

// Request types

type TrackPageViewRequest struct {
	URL      string `json:"url"`
	Referrer string `json:"referrer,omitempty"`
	UTM      UTMParams
}

func (r *TrackPageViewRequest) Validate() error {
	if r.URL == "" {
		return NewValidationError("url is required")
	}
	return nil
}

type TrackConversionRequest struct {
	EventName string `json:"event_name"`
	PersonID  string `json:"person_id"`
}

func (r *TrackConversionRequest) Validate() error {
	if r.EventName == "" {
		return NewValidationError("event_name is required")
	}
	if r.PersonID == "" {
		return NewValidationError("person_id is required")
	}
	return nil
}

// AttributionService maintains the per-visitor attribution chain and folds
// touches into the event stream
type AttributionService interface {
	// TrackPageView records a page view touch and returns the next cookie
	TrackPageView(ctx context.Context, req *TrackPageViewRequest, cookie *TrackingCookie) (TrackingCookie, error)

	// TrackEmailClick records an email click touch (reached via the
	// click-redirect endpoint) and returns the next cookie
	TrackEmailClick(ctx context.Context, emailMessageID, linkURL string, cookie *TrackingCookie) (TrackingCookie, error)

	// TrackConversion emits a conversion event carrying the frozen
	// attribution snapshot and stitches anonymous history to the person
	TrackConversion(ctx context.Context, req *TrackConversionRequest, cookie *TrackingCookie) error

	// StitchAnonymousTouch back-fills person_id onto prior anonymous
	// events; idempotent
	StitchAnonymousTouch(ctx context.Context, personID, anonymousID, sessionID string) error

	// GetAttribution returns the live attribution row for a visitor
	GetAttribution(ctx context.Context, anonymousID, sessionID string) (*AttributionData, error)
}

// AttributionRepository persists attribution rows keyed by visitor
type AttributionRepository interface {
	// GetByVisitor retrieves the attribution row for an id pair
	GetByVisitor(ctx context.Context, anonymousID, sessionID string) (*AttributionData, error)

	// UpsertTouch writes the row; first-touch columns are protected by
	// COALESCE in the conflict clause so they stay write-once under
	// concurrent requests
	UpsertTouch(ctx context.Context, data *AttributionData) error

	// DeleteExpired removes rows past their expiry, returns rows removed
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ErrAttributionNotFound is returned when no attribution row exists
type ErrAttributionNotFound struct {
	Message string
}

func (e *ErrAttributionNotFound) Error() string {
	return e.Message
}

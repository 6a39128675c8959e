package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

// AttributionService maintains the per-visitor marketing touch chain and
// folds touches into the event stream
type AttributionService struct {
	attributionRepo domain.AttributionRepository
	eventRepo       domain.EventRepository
	logger          logger.Logger
}

// NewAttributionService creates a new attribution service
func NewAttributionService(
	attributionRepo domain.AttributionRepository,
	eventRepo domain.EventRepository,
	logger logger.Logger,
) *AttributionService {
	return &AttributionService{
		attributionRepo: attributionRepo,
		eventRepo:       eventRepo,
		logger:          logger,
	}
}

// TrackPageView folds a page view touch into the attribution row and emits
// a landing_view event. First-touch fields are only set when absent; UTM
// fields always take the latest value.
func (s *AttributionService) TrackPageView(ctx context.Context, req *domain.TrackPageViewRequest, cookie *domain.TrackingCookie) (domain.TrackingCookie, error) {
	if err := req.Validate(); err != nil {
		return domain.TrackingCookie{}, err
	}

	next, _ := domain.EnsureTrackingCookie(cookie)
	now := time.Now().UTC()

	data, err := s.loadOrCreate(ctx, next, now)
	if err != nil {
		return domain.TrackingCookie{}, err
	}

	landingPage := landingPagePath(req.URL)
	data.ApplyPageView(landingPage, req.Referrer, req.UTM, now)

	if err := s.attributionRepo.UpsertTouch(ctx, data); err != nil {
		return domain.TrackingCookie{}, err
	}

	properties := domain.MapOfAny{
		"url":      req.URL,
		"referrer": req.Referrer,
	}
	if req.UTM.Source != "" {
		properties["utm_source"] = req.UTM.Source
	}
	if req.UTM.Medium != "" {
		properties["utm_medium"] = req.UTM.Medium
	}
	if req.UTM.Campaign != "" {
		properties["utm_campaign"] = req.UTM.Campaign
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        domain.EventNameLandingView,
		AnonymousID: next.AnonymousID,
		SessionID:   next.SessionID,
		Source:      domain.EventSourceWeb,
		Properties:  properties,
		CreatedAt:   now,
	}
	if err := s.eventRepo.InsertEvent(ctx, event); err != nil {
		return domain.TrackingCookie{}, fmt.Errorf("failed to record page view event: %w", err)
	}

	return next, nil
}

// TrackEmailClick records an email click touch (last-touch) and emits an
// attribution.email_click event
func (s *AttributionService) TrackEmailClick(ctx context.Context, emailMessageID, linkURL string, cookie *domain.TrackingCookie) (domain.TrackingCookie, error) {
	if emailMessageID == "" {
		return domain.TrackingCookie{}, domain.NewValidationError("email message id is required")
	}

	next, _ := domain.EnsureTrackingCookie(cookie)
	now := time.Now().UTC()

	data, err := s.loadOrCreate(ctx, next, now)
	if err != nil {
		return domain.TrackingCookie{}, err
	}

	data.ApplyEmailClick(emailMessageID, linkURL, now)

	if err := s.attributionRepo.UpsertTouch(ctx, data); err != nil {
		return domain.TrackingCookie{}, err
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        domain.EventNameEmailClick,
		AnonymousID: next.AnonymousID,
		SessionID:   next.SessionID,
		Source:      domain.EventSourceEmail,
		Properties: domain.MapOfAny{
			"email_message_id": emailMessageID,
			"link_url":         linkURL,
		},
		CreatedAt: now,
	}
	if err := s.eventRepo.InsertEvent(ctx, event); err != nil {
		return domain.TrackingCookie{}, fmt.Errorf("failed to record email click event: %w", err)
	}

	return next, nil
}

// TrackConversion emits a conversion event carrying the frozen attribution
// snapshot and stitches the visitor's anonymous history to the person
func (s *AttributionService) TrackConversion(ctx context.Context, req *domain.TrackConversionRequest, cookie *domain.TrackingCookie) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !cookie.Valid() {
		return domain.NewValidationError("tracking cookie is required for conversion")
	}

	now := time.Now().UTC()
	properties := domain.MapOfAny{}

	data, err := s.attributionRepo.GetByVisitor(ctx, cookie.AnonymousID, cookie.SessionID)
	if err != nil {
		if _, ok := err.(*domain.ErrAttributionNotFound); !ok {
			return err
		}
	} else if !data.IsExpired(now) {
		// freeze the full chain at conversion time; later touches must
		// not rewrite what this conversion is credited to
		properties = data.Snapshot()
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        req.EventName,
		PersonID:    domain.StringValue(req.PersonID),
		AnonymousID: cookie.AnonymousID,
		SessionID:   cookie.SessionID,
		Source:      domain.EventSourceWeb,
		Properties:  properties,
		CreatedAt:   now,
	}
	if err := s.eventRepo.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to record conversion event: %w", err)
	}

	return s.StitchAnonymousTouch(ctx, req.PersonID, cookie.AnonymousID, cookie.SessionID)
}

// StitchAnonymousTouch back-fills person_id onto the visitor's prior
// anonymous events. Idempotent: a repeat call updates zero rows.
func (s *AttributionService) StitchAnonymousTouch(ctx context.Context, personID, anonymousID, sessionID string) error {
	if personID == "" || anonymousID == "" || sessionID == "" {
		return domain.NewValidationError("person_id, anonymous_id and session_id are required")
	}

	stitched, err := s.eventRepo.StitchPersonID(ctx, personID, anonymousID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to stitch anonymous touch: %w", err)
	}

	if stitched > 0 {
		s.logger.WithFields(map[string]interface{}{
			"person_id":    personID,
			"anonymous_id": anonymousID,
			"events":       stitched,
		}).Info("Stitched anonymous events to person")
	}

	return nil
}

// GetAttribution returns the live attribution row for a visitor
func (s *AttributionService) GetAttribution(ctx context.Context, anonymousID, sessionID string) (*domain.AttributionData, error) {
	if anonymousID == "" || sessionID == "" {
		return nil, domain.NewValidationError("anonymous_id and session_id are required")
	}
	return s.attributionRepo.GetByVisitor(ctx, anonymousID, sessionID)
}

// loadOrCreate returns the visitor's attribution row, starting a fresh one
// when none exists or the window has expired
func (s *AttributionService) loadOrCreate(ctx context.Context, cookie domain.TrackingCookie, now time.Time) (*domain.AttributionData, error) {
	data, err := s.attributionRepo.GetByVisitor(ctx, cookie.AnonymousID, cookie.SessionID)
	if err != nil {
		if _, ok := err.(*domain.ErrAttributionNotFound); ok {
			return domain.NewAttributionData(cookie.AnonymousID, cookie.SessionID, now), nil
		}
		return nil, err
	}
	if data.IsExpired(now) {
		return domain.NewAttributionData(cookie.AnonymousID, cookie.SessionID, now), nil
	}
	return data, nil
}

// landingPagePath reduces a full URL to its path for first-touch recording
func landingPagePath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return raw
	}
	return u.Path
}

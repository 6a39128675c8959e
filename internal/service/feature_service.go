package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

const (
	featureWindow       = 30 * 24 * time.Hour
	batchConcurrency    = 8
	maxEventsPerCompute = 10000
)

// FeatureService recomputes per-person rollup snapshots from the raw event
// history
type FeatureService struct {
	personRepo   domain.PersonRepository
	eventRepo    domain.EventRepository
	featuresRepo domain.PersonFeaturesRepository
	logger       logger.Logger
}

// NewFeatureService creates a new feature service
func NewFeatureService(
	personRepo domain.PersonRepository,
	eventRepo domain.EventRepository,
	featuresRepo domain.PersonFeaturesRepository,
	logger logger.Logger,
) *FeatureService {
	return &FeatureService{
		personRepo:   personRepo,
		eventRepo:    eventRepo,
		featuresRepo: featuresRepo,
		logger:       logger,
	}
}

// ComputePersonFeatures recomputes the snapshot from the person's full
// event history and overwrites it wholesale. Re-running is safe: windowed
// metrics are derived from event timestamps at read time, never from
// running counters, so backfills and replays cannot drift the values.
func (s *FeatureService) ComputePersonFeatures(ctx context.Context, personID string) (*domain.PersonFeatures, error) {
	if personID == "" {
		return nil, domain.NewValidationError("person_id is required")
	}

	if _, err := s.personRepo.GetPersonByID(ctx, personID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByPerson(ctx, personID, maxEventsPerCompute)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	features := computeFeatures(personID, events, time.Now().UTC())

	if err := s.featuresRepo.UpsertFeatures(ctx, features); err != nil {
		return nil, err
	}

	return features, nil
}

// ComputeAllPersonFeatures recomputes every person's snapshot. Per-person
// failures are counted and never abort the batch.
func (s *FeatureService) ComputeAllPersonFeatures(ctx context.Context) (*domain.BatchResult, error) {
	personIDs, err := s.personRepo.ListPersonIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	result := &domain.BatchResult{Total: len(personIDs)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, personID := range personIDs {
		personID := personID
		g.Go(func() error {
			_, err := s.ComputePersonFeatures(gctx, personID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", personID, err))
				s.logger.WithFields(map[string]interface{}{
					"person_id": personID,
					"error":     err.Error(),
				}).Warn("Failed to compute person features")
			} else {
				result.Successful++
			}
			// never propagate: one person must not abort the batch
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// computeFeatures is a pure function of the event history and the clock
func computeFeatures(personID string, events []*domain.Event, now time.Time) *domain.PersonFeatures {
	features := &domain.PersonFeatures{
		PersonID:   personID,
		ComputedAt: now,
	}

	windowStart := now.Add(-featureWindow)
	var lastSeen time.Time
	var firstTouch time.Time
	var firstUTMSource string

	for _, event := range events {
		if event.CreatedAt.After(lastSeen) {
			lastSeen = event.CreatedAt
		}
		inWindow := event.CreatedAt.After(windowStart)

		switch event.Name {
		case domain.EventNameLessonCompleted:
			if inWindow {
				features.LessonsCompleted30d++
			}
		case domain.EventNameEmailOpen:
			if inWindow {
				features.EmailOpens30d++
			}
		case domain.EventNameEmailClick:
			if inWindow {
				features.EmailClicks30d++
			}
		case domain.EventNameLandingView:
			if inWindow {
				features.PageViews30d++
			}
			if firstTouch.IsZero() || event.CreatedAt.Before(firstTouch) {
				if source := propertyString(event, "utm_source"); source != "" {
					firstTouch = event.CreatedAt
					firstUTMSource = source
				}
			}
		case domain.EventNameCourseEnrolled:
			features.CoursesEnrolled++
		case domain.EventNameOrderCompleted:
			features.OrdersCount++
			features.LifetimeValue += propertyFloat(event, "value")
		default:
			// conversion events carry the frozen attribution snapshot
			if source := propertyString(event, "utm_source"); source != "" {
				if firstTouch.IsZero() || event.CreatedAt.Before(firstTouch) {
					firstTouch = event.CreatedAt
					firstUTMSource = source
				}
			}
		}
	}

	if firstUTMSource != "" {
		features.FirstUTMSource = domain.StringValue(firstUTMSource)
	}
	if !lastSeen.IsZero() {
		features.LastSeenAt = domain.TimeValue(lastSeen)
	}

	return features
}

// propertyString reads a string property from the event's JSON payload
func propertyString(event *domain.Event, path string) string {
	raw, err := json.Marshal(event.Properties)
	if err != nil {
		return ""
	}
	return gjson.GetBytes(raw, path).String()
}

// propertyFloat reads a numeric property from the event's JSON payload
func propertyFloat(event *domain.Event, path string) float64 {
	raw, err := json.Marshal(event.Properties)
	if err != nil {
		return 0
	}
	return gjson.GetBytes(raw, path).Float()
}

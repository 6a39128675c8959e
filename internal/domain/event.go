package domain

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

//go:generate mockgen -destination mocks/mock_event_repository.go -package mocks github.com/courseloop/growthplane/internal/domain EventRepository

// Well-known event names emitted by the pipeline itself
const (
	EventNameLandingView     = "landing_view"
	EventNameEmailClick      = "attribution.email_click"
	EventNameEmailOpen       = "email_opened"
	EventNameLessonCompleted = "lesson_completed"
	EventNameCourseEnrolled  = "course_enrolled"
	EventNameOrderCompleted  = "order_completed"
)

// Event sources
const (
	EventSourceWeb   = "web"
	EventSourceEmail = "email"
	EventSourceAPI   = "api"
)

var eventNameRegex = regexp.MustCompile(`^[a-z0-9_.]+$`)

// Event is one immutable row of the event stream. PersonID is null until
// the visitor is stitched to a person.
type Event struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	PersonID    *NullableString `json:"person_id,omitempty"`
	AnonymousID string          `json:"anonymous_id"`
	SessionID   string          `json:"session_id"`
	Source      string          `json:"source"`
	Properties  MapOfAny        `json:"properties"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate checks the event fields
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("invalid event: id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("invalid event: name is required")
	}
	if len(e.Name) > 100 {
		return fmt.Errorf("invalid event: name must be 100 characters or less")
	}
	if !eventNameRegex.MatchString(e.Name) {
		return fmt.Errorf("invalid event: name must contain only lowercase letters, numbers, underscores and dots")
	}
	if e.Source == "" {
		return fmt.Errorf("invalid event: source is required")
	}
	if e.CreatedAt.IsZero() {
		return fmt.Errorf("invalid event: created_at is required")
	}
	if e.Properties == nil {
		e.Properties = MapOfAny{}
	}
	return nil
}

// For database scanning
type dbEvent struct {
	ID          string
	Name        string
	PersonID    NullableString
	AnonymousID string
	SessionID   string
	Source      string
	Properties  MapOfAny
	CreatedAt   time.Time
}

// ScanEvent scans an event row from the database
func ScanEvent(scanner interface {
	Scan(dest ...interface{}) error
}) (*Event, error) {
	var dbe dbEvent
	if err := scanner.Scan(
		&dbe.ID,
		&dbe.Name,
		&dbe.PersonID,
		&dbe.AnonymousID,
		&dbe.SessionID,
		&dbe.Source,
		&dbe.Properties,
		&dbe.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &Event{
		ID:          dbe.ID,
		Name:        dbe.Name,
		PersonID:    &dbe.PersonID,
		AnonymousID: dbe.AnonymousID,
		SessionID:   dbe.SessionID,
		Source:      dbe.Source,
		Properties:  dbe.Properties,
		CreatedAt:   dbe.CreatedAt,
	}, nil
}

type ListEventsRequest struct {
	PersonID string `json:"person_id"`
	Limit    int    `json:"limit,omitempty"`
}

func (r *ListEventsRequest) Validate() error {
	if r.PersonID == "" {
		return NewValidationError("person_id is required")
	}
	if r.Limit < 0 {
		return NewValidationError("limit must not be negative")
	}
	if r.Limit == 0 || r.Limit > 500 {
		r.Limit = 500
	}
	return nil
}

// EventRepository is the append-only event store. Rows are immutable once
// written except for stitching, which only fills a null person_id.
type EventRepository interface {
	// InsertEvent appends one event
	InsertEvent(ctx context.Context, event *Event) error

	// ListByPerson returns a person's events, newest first
	ListByPerson(ctx context.Context, personID string, limit int) ([]*Event, error)

	// ListByVisitor returns a visitor's events, newest first
	ListByVisitor(ctx context.Context, anonymousID, sessionID string, limit int) ([]*Event, error)

	// StitchPersonID back-fills person_id on events matching the visitor
	// pair where person_id is still null. Idempotent; returns rows updated.
	StitchPersonID(ctx context.Context, personID, anonymousID, sessionID string) (int64, error)
}

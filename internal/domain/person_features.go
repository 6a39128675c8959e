package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_person_features_repository.go -package mocks github.com/courseloop/growthplane/internal/domain PersonFeaturesRepository
//go:generate mockgen -destination mocks/mock_feature_service.go -package mocks github.com/courseloop/growthplane/internal/domain FeatureService

// Feature field names readable by segment rules
const (
	FeatureLessonsCompleted30d = "lessons_completed_30d"
	FeatureEmailOpens30d       = "email_opens_30d"
	FeatureEmailClicks30d      = "email_clicks_30d"
	FeaturePageViews30d        = "page_views_30d"
	FeatureOrdersCount         = "orders_count"
	FeatureLifetimeValue       = "lifetime_value"
	FeatureCoursesEnrolled     = "courses_enrolled"
	FeatureFirstUTMSource      = "first_utm_source"
	FeatureLastSeenAt          = "last_seen_at"
)

// FeatureFields lists every field a segment rule may reference
var FeatureFields = []string{
	FeatureLessonsCompleted30d,
	FeatureEmailOpens30d,
	FeatureEmailClicks30d,
	FeaturePageViews30d,
	FeatureOrdersCount,
	FeatureLifetimeValue,
	FeatureCoursesEnrolled,
	FeatureFirstUTMSource,
	FeatureLastSeenAt,
}

// IsFeatureField reports whether a rule field name is known
func IsFeatureField(name string) bool {
	for _, f := range FeatureFields {
		if f == name {
			return true
		}
	}
	return false
}

// PersonFeatures is the derived rollup snapshot of one person. It is
// recomputed wholesale from the event history, never accumulated, so
// out-of-order or replayed events cannot drift the values.
type PersonFeatures struct {
	PersonID            string          `json:"person_id"`
	LessonsCompleted30d int             `json:"lessons_completed_30d"`
	EmailOpens30d       int             `json:"email_opens_30d"`
	EmailClicks30d      int             `json:"email_clicks_30d"`
	PageViews30d        int             `json:"page_views_30d"`
	OrdersCount         int             `json:"orders_count"`
	LifetimeValue       float64         `json:"lifetime_value"`
	CoursesEnrolled     int             `json:"courses_enrolled"`
	FirstUTMSource      *NullableString `json:"first_utm_source,omitempty"`
	LastSeenAt          *NullableTime   `json:"last_seen_at,omitempty"`
	ComputedAt          time.Time       `json:"computed_at"`
}

// FieldMap exposes the snapshot to the rules engine. Absent optional
// fields map to nil so is_null operators work.
func (f *PersonFeatures) FieldMap() map[string]interface{} {
	m := map[string]interface{}{
		FeatureLessonsCompleted30d: float64(f.LessonsCompleted30d),
		FeatureEmailOpens30d:       float64(f.EmailOpens30d),
		FeatureEmailClicks30d:      float64(f.EmailClicks30d),
		FeaturePageViews30d:        float64(f.PageViews30d),
		FeatureOrdersCount:         float64(f.OrdersCount),
		FeatureLifetimeValue:       f.LifetimeValue,
		FeatureCoursesEnrolled:     float64(f.CoursesEnrolled),
	}
	if f.FirstUTMSource != nil && !f.FirstUTMSource.IsNull {
		m[FeatureFirstUTMSource] = f.FirstUTMSource.String
	} else {
		m[FeatureFirstUTMSource] = nil
	}
	if f.LastSeenAt != nil && !f.LastSeenAt.IsNull {
		m[FeatureLastSeenAt] = f.LastSeenAt.Time
	} else {
		m[FeatureLastSeenAt] = nil
	}
	return m
}

// For database scanning
type dbPersonFeatures struct {
	PersonID            string
	LessonsCompleted30d int
	EmailOpens30d       int
	EmailClicks30d      int
	PageViews30d        int
	OrdersCount         int
	LifetimeValue       float64
	CoursesEnrolled     int
	FirstUTMSource      NullableString
	LastSeenAt          NullableTime
	ComputedAt          time.Time
}

// ScanPersonFeatures scans a features row from the database
func ScanPersonFeatures(scanner interface {
	Scan(dest ...interface{}) error
}) (*PersonFeatures, error) {
	var dbf dbPersonFeatures
	if err := scanner.Scan(
		&dbf.PersonID,
		&dbf.LessonsCompleted30d,
		&dbf.EmailOpens30d,
		&dbf.EmailClicks30d,
		&dbf.PageViews30d,
		&dbf.OrdersCount,
		&dbf.LifetimeValue,
		&dbf.CoursesEnrolled,
		&dbf.FirstUTMSource,
		&dbf.LastSeenAt,
		&dbf.ComputedAt,
	); err != nil {
		return nil, err
	}

	return &PersonFeatures{
		PersonID:            dbf.PersonID,
		LessonsCompleted30d: dbf.LessonsCompleted30d,
		EmailOpens30d:       dbf.EmailOpens30d,
		EmailClicks30d:      dbf.EmailClicks30d,
		PageViews30d:        dbf.PageViews30d,
		OrdersCount:         dbf.OrdersCount,
		LifetimeValue:       dbf.LifetimeValue,
		CoursesEnrolled:     dbf.CoursesEnrolled,
		FirstUTMSource:      &dbf.FirstUTMSource,
		LastSeenAt:          &dbf.LastSeenAt,
		ComputedAt:          dbf.ComputedAt,
	}, nil
}

// BatchResult summarizes a batch operation; partial failures are counted,
// never thrown
type BatchResult struct {
	Total      int      `json:"total"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors,omitempty"`
}

// FeatureService recomputes person feature snapshots from event history
type FeatureService interface {
	// ComputePersonFeatures recomputes and overwrites one snapshot
	ComputePersonFeatures(ctx context.Context, personID string) (*PersonFeatures, error)

	// ComputeAllPersonFeatures sweeps every person; per-person failures
	// are counted and never abort the batch
	ComputeAllPersonFeatures(ctx context.Context) (*BatchResult, error)
}

// PersonFeaturesRepository persists feature snapshots
type PersonFeaturesRepository interface {
	// UpsertFeatures overwrites the snapshot wholesale
	UpsertFeatures(ctx context.Context, features *PersonFeatures) error

	// GetFeatures retrieves a person's snapshot
	GetFeatures(ctx context.Context, personID string) (*PersonFeatures, error)
}

// ErrPersonFeaturesNotFound is returned when no snapshot exists yet
type ErrPersonFeaturesNotFound struct {
	Message string
}

func (e *ErrPersonFeaturesNotFound) Error() string {
	return e.Message
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/courseloop/growthplane/internal/domain"
)

type personFeaturesRepository struct {
	db *sql.DB
}

// NewPersonFeaturesRepository creates a new PostgreSQL person features repository
func NewPersonFeaturesRepository(db *sql.DB) domain.PersonFeaturesRepository {
	return &personFeaturesRepository{db: db}
}

func (r *personFeaturesRepository) UpsertFeatures(ctx context.Context, features *domain.PersonFeatures) error {
	// the snapshot is overwritten wholesale: every column takes the
	// recomputed value, never an increment
	query := `
		INSERT INTO person_features (
			person_id, lessons_completed_30d, email_opens_30d, email_clicks_30d,
			page_views_30d, orders_count, lifetime_value, courses_enrolled,
			first_utm_source, last_seen_at, computed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (person_id) DO UPDATE SET
			lessons_completed_30d = EXCLUDED.lessons_completed_30d,
			email_opens_30d = EXCLUDED.email_opens_30d,
			email_clicks_30d = EXCLUDED.email_clicks_30d,
			page_views_30d = EXCLUDED.page_views_30d,
			orders_count = EXCLUDED.orders_count,
			lifetime_value = EXCLUDED.lifetime_value,
			courses_enrolled = EXCLUDED.courses_enrolled,
			first_utm_source = EXCLUDED.first_utm_source,
			last_seen_at = EXCLUDED.last_seen_at,
			computed_at = EXCLUDED.computed_at
	`

	_, err := r.db.ExecContext(ctx, query,
		features.PersonID,
		features.LessonsCompleted30d,
		features.EmailOpens30d,
		features.EmailClicks30d,
		features.PageViews30d,
		features.OrdersCount,
		features.LifetimeValue,
		features.CoursesEnrolled,
		features.FirstUTMSource,
		features.LastSeenAt,
		features.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert person features: %w", err)
	}

	return nil
}

func (r *personFeaturesRepository) GetFeatures(ctx context.Context, personID string) (*domain.PersonFeatures, error) {
	query := `
		SELECT
			person_id, lessons_completed_30d, email_opens_30d, email_clicks_30d,
			page_views_30d, orders_count, lifetime_value, courses_enrolled,
			first_utm_source, last_seen_at, computed_at
		FROM person_features
		WHERE person_id = $1
	`

	row := r.db.QueryRowContext(ctx, query, personID)
	features, err := domain.ScanPersonFeatures(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrPersonFeaturesNotFound{Message: "person features not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person features: %w", err)
	}

	return features, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/courseloop/growthplane/internal/domain"
)

type attributionRepository struct {
	db *sql.DB
}

// NewAttributionRepository creates a new PostgreSQL attribution repository
func NewAttributionRepository(db *sql.DB) domain.AttributionRepository {
	return &attributionRepository{db: db}
}

func (r *attributionRepository) GetByVisitor(ctx context.Context, anonymousID, sessionID string) (*domain.AttributionData, error) {
	query := `
		SELECT
			anonymous_id, session_id, email_message_id, link_url,
			utm_source, utm_medium, utm_campaign, utm_content, utm_term,
			first_landing_page, first_referrer,
			created_at, updated_at, expires_at
		FROM attribution_touches
		WHERE anonymous_id = $1 AND session_id = $2
	`

	row := r.db.QueryRowContext(ctx, query, anonymousID, sessionID)
	data, err := domain.ScanAttributionData(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrAttributionNotFound{Message: "attribution not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attribution: %w", err)
	}

	return data, nil
}

func (r *attributionRepository) UpsertTouch(ctx context.Context, data *domain.AttributionData) error {
	// first-touch columns keep their existing value via COALESCE so they
	// stay write-once even when two requests race on a fresh visitor
	query := `
		INSERT INTO attribution_touches (
			anonymous_id, session_id, email_message_id, link_url,
			utm_source, utm_medium, utm_campaign, utm_content, utm_term,
			first_landing_page, first_referrer,
			created_at, updated_at, expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (anonymous_id, session_id) DO UPDATE SET
			email_message_id = COALESCE(EXCLUDED.email_message_id, attribution_touches.email_message_id),
			link_url = COALESCE(EXCLUDED.link_url, attribution_touches.link_url),
			utm_source = COALESCE(EXCLUDED.utm_source, attribution_touches.utm_source),
			utm_medium = COALESCE(EXCLUDED.utm_medium, attribution_touches.utm_medium),
			utm_campaign = COALESCE(EXCLUDED.utm_campaign, attribution_touches.utm_campaign),
			utm_content = COALESCE(EXCLUDED.utm_content, attribution_touches.utm_content),
			utm_term = COALESCE(EXCLUDED.utm_term, attribution_touches.utm_term),
			first_landing_page = COALESCE(attribution_touches.first_landing_page, EXCLUDED.first_landing_page),
			first_referrer = COALESCE(attribution_touches.first_referrer, EXCLUDED.first_referrer),
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		data.AnonymousID,
		data.SessionID,
		data.EmailMessageID,
		data.LinkURL,
		data.UTMSource,
		data.UTMMedium,
		data.UTMCampaign,
		data.UTMContent,
		data.UTMTerm,
		data.FirstLandingPage,
		data.FirstReferrer,
		data.CreatedAt,
		data.UpdatedAt,
		data.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attribution touch: %w", err)
	}

	return nil
}

func (r *attributionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM attribution_touches WHERE expires_at < $1`

	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired attribution rows: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}

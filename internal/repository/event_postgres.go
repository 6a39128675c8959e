package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/courseloop/growthplane/internal/domain"
)

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new PostgreSQL event repository
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, name, person_id, anonymous_id, session_id, source, properties, created_at`

func (r *eventRepository) InsertEvent(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Name,
		event.PersonID,
		event.AnonymousID,
		event.SessionID,
		event.Source,
		event.Properties,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

func (r *eventRepository) listEvents(ctx context.Context, builder sq.SelectBuilder) ([]*domain.Event, error) {
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build events query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := domain.ScanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

func (r *eventRepository) ListByPerson(ctx context.Context, personID string, limit int) ([]*domain.Event, error) {
	builder := sq.Select(
		"id", "name", "person_id", "anonymous_id", "session_id", "source", "properties", "created_at",
	).
		From("events").
		Where(sq.Eq{"person_id": personID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return r.listEvents(ctx, builder)
}

func (r *eventRepository) ListByVisitor(ctx context.Context, anonymousID, sessionID string, limit int) ([]*domain.Event, error) {
	builder := sq.Select(
		"id", "name", "person_id", "anonymous_id", "session_id", "source", "properties", "created_at",
	).
		From("events").
		Where(sq.Eq{"anonymous_id": anonymousID, "session_id": sessionID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return r.listEvents(ctx, builder)
}

func (r *eventRepository) StitchPersonID(ctx context.Context, personID, anonymousID, sessionID string) (int64, error) {
	// only fills null person_id, so re-invoking with the same ids updates
	// zero rows instead of erroring or duplicating
	query := `
		UPDATE events
		SET person_id = $1
		WHERE anonymous_id = $2 AND session_id = $3 AND person_id IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, personID, anonymousID, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to stitch events: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}

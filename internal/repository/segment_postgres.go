package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/courseloop/growthplane/internal/domain"
)

type segmentRepository struct {
	db *sql.DB
}

// NewSegmentRepository creates a new PostgreSQL segment repository
func NewSegmentRepository(db *sql.DB) domain.SegmentRepository {
	return &segmentRepository{db: db}
}

func (r *segmentRepository) CreateSegment(ctx context.Context, segment *domain.Segment) error {
	query := `
		INSERT INTO segments (id, name, conditions, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		segment.ID,
		segment.Name,
		segment.Conditions.ToMapOfAny(),
		segment.IsActive,
		segment.CreatedAt,
		segment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create segment: %w", err)
	}

	return nil
}

func (r *segmentRepository) GetSegmentByID(ctx context.Context, id string) (*domain.Segment, error) {
	query := `
		SELECT id, name, conditions, is_active, created_at, updated_at
		FROM segments
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	segment, err := domain.ScanSegment(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrSegmentNotFound{Message: "segment not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}

	return segment, nil
}

func (r *segmentRepository) GetSegments(ctx context.Context, activeOnly bool) ([]*domain.Segment, error) {
	builder := sq.Select("id", "name", "conditions", "is_active", "created_at", "updated_at").
		From("segments").
		OrderBy("created_at ASC")
	if activeOnly {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build segments query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get segments: %w", err)
	}
	defer rows.Close()

	var segments []*domain.Segment
	for rows.Next() {
		segment, err := domain.ScanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, segment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating segment rows: %w", err)
	}

	return segments, nil
}

func (r *segmentRepository) UpdateSegment(ctx context.Context, segment *domain.Segment) error {
	query := `
		UPDATE segments
		SET name = $2, conditions = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		segment.ID,
		segment.Name,
		segment.Conditions.ToMapOfAny(),
		segment.IsActive,
		segment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update segment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrSegmentNotFound{Message: "segment not found"}
	}

	return nil
}

func (r *segmentRepository) DeactivateSegment(ctx context.Context, id string) error {
	query := `UPDATE segments SET is_active = FALSE, updated_at = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to deactivate segment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrSegmentNotFound{Message: "segment not found"}
	}

	return nil
}

func (r *segmentRepository) GetActiveMembership(ctx context.Context, personID, segmentID string) (*domain.SegmentMembership, error) {
	query := `
		SELECT id, person_id, segment_id, entered_at, exited_at, is_active
		FROM segment_memberships
		WHERE person_id = $1 AND segment_id = $2 AND is_active
	`

	row := r.db.QueryRowContext(ctx, query, personID, segmentID)
	membership, err := domain.ScanSegmentMembership(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrMembershipNotFound{Message: "no active membership"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return membership, nil
}

func (r *segmentRepository) OpenMembership(ctx context.Context, membership *domain.SegmentMembership) (bool, error) {
	// the partial unique index on (person_id, segment_id) WHERE is_active
	// makes a concurrent open of the same pair a no-op
	query := `
		INSERT INTO segment_memberships (id, person_id, segment_id, entered_at, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (person_id, segment_id) WHERE is_active DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query,
		membership.ID,
		membership.PersonID,
		membership.SegmentID,
		membership.EnteredAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to open membership: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

func (r *segmentRepository) CloseMembership(ctx context.Context, personID, segmentID string, exitedAt time.Time) (bool, error) {
	// closed rows are preserved as history, never deleted
	query := `
		UPDATE segment_memberships
		SET exited_at = $3, is_active = FALSE
		WHERE person_id = $1 AND segment_id = $2 AND is_active
	`

	result, err := r.db.ExecContext(ctx, query, personID, segmentID, exitedAt)
	if err != nil {
		return false, fmt.Errorf("failed to close membership: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

func (r *segmentRepository) EvaluateSQLCondition(ctx context.Context, personID, predicate string) (bool, error) {
	// sql-mode predicates are boolean expressions over the person_features
	// columns; EXISTS over the single snapshot row keeps them side-effect
	// free and deterministic for a given snapshot
	query, args, err := sq.Select("1").
		From("person_features").
		Where(sq.Eq{"person_id": personID}).
		Where(sq.Expr("(" + predicate + ")")).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build condition query: %w", err)
	}

	var matches bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&matches); err != nil {
		return false, fmt.Errorf("failed to evaluate sql condition: %w", err)
	}

	return matches, nil
}

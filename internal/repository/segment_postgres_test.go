package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseloop/growthplane/internal/domain"
)

func TestOpenMembership(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSegmentRepository(db)
	membership := &domain.SegmentMembership{
		ID:        "m1",
		PersonID:  "p1",
		SegmentID: "power_users",
		EnteredAt: time.Now().UTC(),
		IsActive:  true,
	}

	t.Run("opens a new row", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO segment_memberships").
			WithArgs(membership.ID, membership.PersonID, membership.SegmentID, membership.EnteredAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		opened, err := repo.OpenMembership(context.Background(), membership)
		require.NoError(t, err)
		assert.True(t, opened)
	})

	t.Run("concurrent open is a no-op", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO segment_memberships").
			WithArgs(membership.ID, membership.PersonID, membership.SegmentID, membership.EnteredAt).
			WillReturnResult(sqlmock.NewResult(0, 0))

		opened, err := repo.OpenMembership(context.Background(), membership)
		require.NoError(t, err)
		assert.False(t, opened)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseMembership(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSegmentRepository(db)
	exitedAt := time.Now().UTC()

	t.Run("closes the active row", func(t *testing.T) {
		mock.ExpectExec("UPDATE segment_memberships").
			WithArgs("p1", "power_users", exitedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		closed, err := repo.CloseMembership(context.Background(), "p1", "power_users", exitedAt)
		require.NoError(t, err)
		assert.True(t, closed)
	})

	t.Run("nothing to close", func(t *testing.T) {
		mock.ExpectExec("UPDATE segment_memberships").
			WithArgs("p1", "power_users", exitedAt).
			WillReturnResult(sqlmock.NewResult(0, 0))

		closed, err := repo.CloseMembership(context.Background(), "p1", "power_users", exitedAt)
		require.NoError(t, err)
		assert.False(t, closed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveMembershipNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSegmentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM segment_memberships").
		WithArgs("p1", "power_users").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetActiveMembership(context.Background(), "p1", "power_users")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrMembershipNotFound{}, err)
}

func TestEvaluateSQLCondition(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSegmentRepository(db)

	mock.ExpectQuery(`SELECT EXISTS\( SELECT 1 FROM person_features`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	matches, err := repo.EvaluateSQLCondition(context.Background(), "p1", "lifetime_value > 500")
	require.NoError(t, err)
	assert.True(t, matches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSegmentByIDParsesConditions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSegmentRepository(db)
	now := time.Now().UTC()

	conditions := []byte(`{"type":"rules","rules":[{"field":"orders_count","operator":"greater_than","value":0}]}`)
	mock.ExpectQuery("SELECT (.+) FROM segments").
		WithArgs("power_users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "conditions", "is_active", "created_at", "updated_at"}).
			AddRow("power_users", "Power Users", conditions, true, now, now))

	segment, err := repo.GetSegmentByID(context.Background(), "power_users")
	require.NoError(t, err)
	assert.Equal(t, domain.ConditionTypeRules, segment.Conditions.Type)
	require.Len(t, segment.Conditions.Rules, 1)
	assert.Equal(t, domain.FeatureOrdersCount, segment.Conditions.Rules[0].Field)
}

func TestDeactivateSegmentNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSegmentRepository(db)

	mock.ExpectExec("UPDATE segments SET is_active").
		WithArgs("ghost", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeactivateSegment(context.Background(), "ghost")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrSegmentNotFound{}, err)
}

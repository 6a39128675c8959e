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

func TestUpsertFeatures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPersonFeaturesRepository(db)
	now := time.Now().UTC()
	features := &domain.PersonFeatures{
		PersonID:            "p1",
		LessonsCompleted30d: 12,
		PageViews30d:        40,
		OrdersCount:         2,
		LifetimeValue:       148.0,
		FirstUTMSource:      domain.StringValue("google"),
		LastSeenAt:          domain.TimeValue(now),
		ComputedAt:          now,
	}

	mock.ExpectExec("INSERT INTO person_features").
		WithArgs(
			features.PersonID, features.LessonsCompleted30d, features.EmailOpens30d,
			features.EmailClicks30d, features.PageViews30d, features.OrdersCount,
			features.LifetimeValue, features.CoursesEnrolled,
			features.FirstUTMSource, features.LastSeenAt, features.ComputedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertFeatures(context.Background(), features))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeaturesNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPersonFeaturesRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM person_features").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetFeatures(context.Background(), "ghost")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrPersonFeaturesNotFound{}, err)
}

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/internal/domain/mocks"
)

func eventAt(name string, at time.Time, properties domain.MapOfAny) *domain.Event {
	return &domain.Event{
		ID:          name + at.String(),
		Name:        name,
		AnonymousID: "anon",
		SessionID:   "sess",
		Source:      domain.EventSourceWeb,
		Properties:  properties,
		CreatedAt:   at,
	}
}

func TestComputeFeaturesWindowing(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	inWindow := now.Add(-24 * time.Hour)
	outOfWindow := now.Add(-45 * 24 * time.Hour)

	events := []*domain.Event{
		eventAt(domain.EventNameLessonCompleted, inWindow, nil),
		eventAt(domain.EventNameLessonCompleted, inWindow.Add(time.Hour), nil),
		eventAt(domain.EventNameLessonCompleted, outOfWindow, nil),
		eventAt(domain.EventNameEmailOpen, inWindow, nil),
		eventAt(domain.EventNameEmailClick, outOfWindow, nil),
		eventAt(domain.EventNameLandingView, inWindow, domain.MapOfAny{"utm_source": "newsletter"}),
		// lifetime metrics ignore the window
		eventAt(domain.EventNameCourseEnrolled, outOfWindow, nil),
		eventAt(domain.EventNameOrderCompleted, outOfWindow, domain.MapOfAny{"value": 49.0}),
		eventAt(domain.EventNameOrderCompleted, inWindow, domain.MapOfAny{"value": 99.0}),
	}

	features := computeFeatures("p1", events, now)

	assert.Equal(t, 2, features.LessonsCompleted30d)
	assert.Equal(t, 1, features.EmailOpens30d)
	assert.Equal(t, 0, features.EmailClicks30d)
	assert.Equal(t, 1, features.PageViews30d)
	assert.Equal(t, 1, features.CoursesEnrolled)
	assert.Equal(t, 2, features.OrdersCount)
	assert.Equal(t, 148.0, features.LifetimeValue)
	require.NotNil(t, features.FirstUTMSource)
	assert.Equal(t, "newsletter", features.FirstUTMSource.String)
	require.NotNil(t, features.LastSeenAt)
	assert.Equal(t, inWindow.Add(time.Hour), features.LastSeenAt.Time)
}

func TestComputeFeaturesFirstUTMSourceIsEarliest(t *testing.T) {
	now := time.Now().UTC()
	events := []*domain.Event{
		eventAt(domain.EventNameLandingView, now.Add(-time.Hour), domain.MapOfAny{"utm_source": "twitter"}),
		eventAt(domain.EventNameLandingView, now.Add(-48*time.Hour), domain.MapOfAny{"utm_source": "google"}),
		eventAt(domain.EventNameLandingView, now.Add(-2*time.Hour), nil),
	}

	features := computeFeatures("p1", events, now)

	require.NotNil(t, features.FirstUTMSource)
	assert.Equal(t, "google", features.FirstUTMSource.String)
}

func TestComputeFeaturesEmptyHistory(t *testing.T) {
	features := computeFeatures("p1", nil, time.Now().UTC())

	assert.Equal(t, 0, features.OrdersCount)
	assert.Zero(t, features.LifetimeValue)
	assert.Nil(t, features.FirstUTMSource)
	assert.Nil(t, features.LastSeenAt)
}

func TestComputeFeaturesIsIdempotent(t *testing.T) {
	now := time.Now().UTC()
	events := []*domain.Event{
		eventAt(domain.EventNameOrderCompleted, now.Add(-time.Hour), domain.MapOfAny{"value": 100.0}),
	}

	first := computeFeatures("p1", events, now)
	second := computeFeatures("p1", events, now)

	// recomputation from the same history yields the same snapshot
	assert.Equal(t, first.OrdersCount, second.OrdersCount)
	assert.Equal(t, first.LifetimeValue, second.LifetimeValue)
}

func TestComputePersonFeatures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	personRepo := mocks.NewMockPersonRepository(ctrl)
	eventRepo := mocks.NewMockEventRepository(ctrl)
	featuresRepo := mocks.NewMockPersonFeaturesRepository(ctrl)
	service := NewFeatureService(personRepo, eventRepo, featuresRepo, newTestLogger(ctrl))

	personRepo.EXPECT().GetPersonByID(gomock.Any(), "p1").Return(&domain.Person{ID: "p1"}, nil)
	eventRepo.EXPECT().ListByPerson(gomock.Any(), "p1", maxEventsPerCompute).
		Return([]*domain.Event{
			eventAt(domain.EventNameLessonCompleted, time.Now().UTC().Add(-time.Hour), nil),
		}, nil)
	featuresRepo.EXPECT().UpsertFeatures(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *domain.PersonFeatures) error {
			assert.Equal(t, "p1", f.PersonID)
			assert.Equal(t, 1, f.LessonsCompleted30d)
			return nil
		})

	features, err := service.ComputePersonFeatures(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, features.LessonsCompleted30d)
}

func TestComputePersonFeaturesUnknownPerson(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	personRepo := mocks.NewMockPersonRepository(ctrl)
	service := NewFeatureService(personRepo, mocks.NewMockEventRepository(ctrl), mocks.NewMockPersonFeaturesRepository(ctrl), newTestLogger(ctrl))

	personRepo.EXPECT().GetPersonByID(gomock.Any(), "ghost").
		Return(nil, &domain.ErrPersonNotFound{Message: "person not found"})

	_, err := service.ComputePersonFeatures(context.Background(), "ghost")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrPersonNotFound{}, err)
}

func TestComputeAllPersonFeaturesPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	personRepo := mocks.NewMockPersonRepository(ctrl)
	eventRepo := mocks.NewMockEventRepository(ctrl)
	featuresRepo := mocks.NewMockPersonFeaturesRepository(ctrl)
	service := NewFeatureService(personRepo, eventRepo, featuresRepo, newTestLogger(ctrl))

	personRepo.EXPECT().ListPersonIDs(gomock.Any()).Return([]string{"p1", "p2", "p3"}, nil)

	personRepo.EXPECT().GetPersonByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*domain.Person, error) {
			if id == "p2" {
				return nil, fmt.Errorf("database gone")
			}
			return &domain.Person{ID: id}, nil
		}).Times(3)
	eventRepo.EXPECT().ListByPerson(gomock.Any(), gomock.Any(), maxEventsPerCompute).
		Return(nil, nil).Times(2)
	featuresRepo.EXPECT().UpsertFeatures(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := service.ComputeAllPersonFeatures(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Successful)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "p2")
}

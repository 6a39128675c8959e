package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/internal/domain/mocks"
	"github.com/courseloop/growthplane/internal/http/middleware"
)

const testJWTSecret = "jwt-signing-secret"

func segmentFixture(t *testing.T) (*mocks.MockSegmentService, *http.ServeMux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockSegmentService(ctrl)
	adminAuth := middleware.NewAuthMiddleware(testJWTSecret).RequireAuth()
	handler := NewSegmentHandler(service, adminAuth, middleware.RequireCronSecret(testCronSecret), newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return service, mux
}

func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func TestListSegmentsRequiresAuth(t *testing.T) {
	_, mux := segmentFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/segments.list", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListSegmentsRejectsBadToken(t *testing.T) {
	_, mux := segmentFixture(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin"})
	signed, err := token.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/segments.list", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListSegments(t *testing.T) {
	service, mux := segmentFixture(t)

	service.EXPECT().ListSegments(gomock.Any()).
		Return([]*domain.Segment{{ID: "power_users", Name: "Power Users"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/segments.list", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "power_users")
}

func TestCreateSegment(t *testing.T) {
	service, mux := segmentFixture(t)

	service.EXPECT().CreateSegment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *domain.CreateSegmentRequest) (*domain.Segment, error) {
			assert.Equal(t, "power_users", req.ID)
			return &domain.Segment{ID: req.ID, Name: req.Name}, nil
		})

	body := `{"id":"power_users","name":"Power Users","conditions":{"type":"rules","rules":[{"field":"orders_count","operator":"greater_than","value":0}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/segments.create", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateSegmentValidationError(t *testing.T) {
	service, mux := segmentFixture(t)

	service.EXPECT().CreateSegment(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewValidationError("invalid segment id"))

	req := httptest.NewRequest(http.MethodPost, "/api/segments.create", strings.NewReader(`{"id":"Bad Id"}`))
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSegmentNotFound(t *testing.T) {
	service, mux := segmentFixture(t)

	service.EXPECT().GetSegment(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ErrSegmentNotFound{Message: "segment not found"})

	req := httptest.NewRequest(http.MethodGet, "/api/segments.get?id=ghost", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSegment(t *testing.T) {
	service, mux := segmentFixture(t)

	service.EXPECT().DeleteSegment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *domain.DeleteSegmentRequest) error {
			assert.Equal(t, "power_users", req.ID)
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/segments.delete", strings.NewReader(`{"id":"power_users"}`))
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":true`)
}

func TestEvaluateRequiresCronSecret(t *testing.T) {
	_, mux := segmentFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/segments.evaluate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEvaluateSinglePerson(t *testing.T) {
	service, mux := segmentFixture(t)

	service.EXPECT().EvaluateAllSegmentsForPerson(gomock.Any(), "p1").
		Return([]domain.SegmentTransition{{
			PersonID:   "p1",
			SegmentID:  "power_users",
			Transition: domain.TransitionEntered,
			OccurredAt: time.Now().UTC(),
		}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/segments.evaluate", strings.NewReader(`{"person_id":"p1"}`))
	req.Header.Set(middleware.CronSecretHeader, testCronSecret)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transition":"entered"`)
}

func TestEvaluateSweepsAll(t *testing.T) {
	service, mux := segmentFixture(t)

	service.EXPECT().EvaluateAllPersons(gomock.Any()).
		Return(&domain.BatchResult{Total: 10, Successful: 10}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/segments.evaluate", strings.NewReader(`{}`))
	req.Header.Set(middleware.CronSecretHeader, testCronSecret)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":10`)
}

func TestSegmentsListMethodNotAllowed(t *testing.T) {
	_, mux := segmentFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/segments.list", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/internal/domain/mocks"
)

func identityFixture(t *testing.T) (*mocks.MockIdentityService, *mocks.MockAttributionService, *http.ServeMux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	identityService := mocks.NewMockIdentityService(ctrl)
	attributionService := mocks.NewMockAttributionService(ctrl)
	handler := NewIdentityHandler(identityService, attributionService, newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return identityService, attributionService, mux
}

func resolvedPerson() *domain.Person {
	now := time.Now().UTC()
	return &domain.Person{
		ID:        "p1",
		Email:     domain.StringValue("ada@example.com"),
		EmailHash: domain.StringValue(domain.HashEmail("ada@example.com")),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestResolveCreatesPerson(t *testing.T) {
	identityService, _, mux := identityFixture(t)

	identityService.EXPECT().ResolvePerson(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, signals *domain.ResolveSignals) (*domain.Person, bool, error) {
			assert.Equal(t, "ada@example.com", signals.Email)
			return resolvedPerson(), true, nil
		})

	body := `{"email":"Ada@Example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/identity.resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var payload struct {
		Person  *domain.Person `json:"person"`
		Created bool           `json:"created"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.True(t, payload.Created)
	assert.Equal(t, "p1", payload.Person.ID)
}

func TestResolveExistingPerson(t *testing.T) {
	identityService, _, mux := identityFixture(t)

	identityService.EXPECT().ResolvePerson(gomock.Any(), gomock.Any()).
		Return(resolvedPerson(), false, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/identity.resolve", strings.NewReader(`{"email":"ada@example.com"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveStitchesVisitorHistory(t *testing.T) {
	identityService, attributionService, mux := identityFixture(t)

	identityService.EXPECT().ResolvePerson(gomock.Any(), gomock.Any()).
		Return(resolvedPerson(), false, nil)
	attributionService.EXPECT().StitchAnonymousTouch(gomock.Any(), "p1", "anon", "sess").
		Return(nil)

	body := `{"email":"ada@example.com","anonymous_id":"anon","session_id":"sess"}`
	req := httptest.NewRequest(http.MethodPost, "/api/identity.resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveSucceedsWhenStitchingFails(t *testing.T) {
	identityService, attributionService, mux := identityFixture(t)

	identityService.EXPECT().ResolvePerson(gomock.Any(), gomock.Any()).
		Return(resolvedPerson(), true, nil)
	attributionService.EXPECT().StitchAnonymousTouch(gomock.Any(), "p1", "anon", "sess").
		Return(assertedError{})

	body := `{"email":"ada@example.com","anonymous_id":"anon","session_id":"sess"}`
	req := httptest.NewRequest(http.MethodPost, "/api/identity.resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResolveRejectsEmptySignals(t *testing.T) {
	_, _, mux := identityFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/identity.resolve", strings.NewReader(`{"first_name":"Ada"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveMethodNotAllowed(t *testing.T) {
	_, _, mux := identityFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/identity.resolve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

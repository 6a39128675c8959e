package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/internal/domain/mocks"
	pkgmocks "github.com/courseloop/growthplane/pkg/mocks"
)

func newTestLogger(ctrl *gomock.Controller) *pkgmocks.MockLogger {
	l := pkgmocks.NewMockLogger(ctrl)
	l.EXPECT().Debug(gomock.Any()).AnyTimes()
	l.EXPECT().Info(gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any()).AnyTimes()
	l.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(l).AnyTimes()
	l.EXPECT().WithFields(gomock.Any()).Return(l).AnyTimes()
	return l
}

func freshCookie() domain.TrackingCookie {
	return domain.TrackingCookie{
		AnonymousID: uuid.New().String(),
		SessionID:   uuid.New().String(),
	}
}

func findTrackingCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == domain.TrackingCookieName {
			return c
		}
	}
	return nil
}

func TestHandlePageViewSetsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAttributionService(ctrl)
	handler := NewTrackingHandler(service, newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	next := freshCookie()
	service.EXPECT().TrackPageView(gomock.Any(), gomock.Any(), nil).
		Return(next, nil)

	body := `{"url":"https://courses.example.com/go","utm_source":"google"}`
	req := httptest.NewRequest(http.MethodPost, "/api/track.pageView", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findTrackingCookie(t, rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(domain.AttributionTTL.Seconds()), cookie.MaxAge)

	decoded := domain.DecodeTrackingCookie(mustUnescape(t, cookie.Value))
	require.NotNil(t, decoded)
	assert.Equal(t, next, *decoded)
}

func mustUnescape(t *testing.T, value string) string {
	t.Helper()
	unescaped, err := url.QueryUnescape(value)
	require.NoError(t, err)
	return unescaped
}

func TestHandlePageViewPassesExistingCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAttributionService(ctrl)
	handler := NewTrackingHandler(service, newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	current := freshCookie()
	encoded, err := current.Encode()
	require.NoError(t, err)

	service.EXPECT().TrackPageView(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ *domain.TrackPageViewRequest, c *domain.TrackingCookie) (domain.TrackingCookie, error) {
			require.NotNil(t, c)
			assert.Equal(t, current, *c)
			return current, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/track.pageView", strings.NewReader(`{"url":"/pricing"}`))
	req.AddCookie(&http.Cookie{Name: domain.TrackingCookieName, Value: url.QueryEscape(encoded)})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePageViewValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAttributionService(ctrl)
	handler := NewTrackingHandler(service, newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	service.EXPECT().TrackPageView(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.TrackingCookie{}, domain.NewValidationError("url is required"))

	req := httptest.NewRequest(http.MethodPost, "/api/track.pageView", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleVisitRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAttributionService(ctrl)
	handler := NewTrackingHandler(service, newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	destination := "https://courses.example.com/go-basics"
	encoded := base64.URLEncoding.EncodeToString([]byte(destination))
	next := freshCookie()

	service.EXPECT().TrackEmailClick(gomock.Any(), "msg_42", destination, nil).
		Return(next, nil)

	req := httptest.NewRequest(http.MethodGet, "/visit?m=msg_42&u="+encoded, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, destination, rec.Header().Get("Location"))
	assert.NotNil(t, findTrackingCookie(t, rec))
}

func TestHandleVisitRejectsBadDestinations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAttributionService(ctrl)
	handler := NewTrackingHandler(service, newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	cases := []struct {
		name string
		url  string
	}{
		{"missing params", "/visit"},
		{"missing destination", "/visit?m=msg_42"},
		{"not base64", "/visit?m=msg_42&u=!not-base64!"},
		{"relative url", "/visit?m=msg_42&u=" + base64.URLEncoding.EncodeToString([]byte("/relative/path"))},
		{"javascript scheme", "/visit?m=msg_42&u=" + base64.URLEncoding.EncodeToString([]byte("javascript:alert(1)"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleVisitRedirectsEvenWhenTrackingFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAttributionService(ctrl)
	handler := NewTrackingHandler(service, newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	destination := "https://courses.example.com/go-basics"
	encoded := base64.URLEncoding.EncodeToString([]byte(destination))

	service.EXPECT().TrackEmailClick(gomock.Any(), "msg_42", destination, nil).
		Return(domain.TrackingCookie{}, assertedError{})

	req := httptest.NewRequest(http.MethodGet, "/visit?m=msg_42&u="+encoded, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	// the visitor lands on the destination regardless
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, destination, rec.Header().Get("Location"))
}

type assertedError struct{}

func (assertedError) Error() string { return "storage offline" }

func TestHandleConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAttributionService(ctrl)
	handler := NewTrackingHandler(service, newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	current := freshCookie()
	encoded, err := current.Encode()
	require.NoError(t, err)

	service.EXPECT().TrackConversion(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *domain.TrackConversionRequest, c *domain.TrackingCookie) error {
			assert.Equal(t, "order_completed", req.EventName)
			assert.Equal(t, "p1", req.PersonID)
			require.NotNil(t, c)
			return nil
		})

	body := `{"event_name":"order_completed","person_id":"p1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/track.conversion", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: domain.TrackingCookieName, Value: url.QueryEscape(encoded)})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleGetAttribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockAttributionService(ctrl)
	handler := NewTrackingHandler(service, newTestLogger(ctrl))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	service.EXPECT().GetAttribution(gomock.Any(), "anon", "sess").
		Return(nil, &domain.ErrAttributionNotFound{Message: "not found"})

	req := httptest.NewRequest(http.MethodGet, "/api/attribution.get?anonymous_id=anon&session_id=sess", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, "Attribution not found", payload["error"])
}

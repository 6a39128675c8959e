package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"
)

func TestTracingMiddlewarePassesRequestThrough(t *testing.T) {
	var sawSpan bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSpan = trace.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("brewing"))
	})

	handler := TracingMiddleware(next)

	req := httptest.NewRequest(http.MethodGet, "/api/segments.list", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.True(t, sawSpan)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "brewing", rec.Body.String())
}

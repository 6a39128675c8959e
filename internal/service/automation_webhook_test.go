package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseloop/growthplane/internal/domain"
)

func testWebhookSecret() string {
	return base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
}

func testTransition() domain.SegmentTransition {
	return domain.SegmentTransition{
		PersonID:   "p1",
		SegmentID:  "power_users",
		Transition: domain.TransitionEntered,
		OccurredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// shrinkRetryDelays makes retry tests fast; restored afterwards
func shrinkRetryDelays(t *testing.T) {
	t.Helper()
	original := dispatchRetryDelays
	dispatchRetryDelays = []time.Duration{time.Millisecond}
	t.Cleanup(func() {
		dispatchRetryDelays = original
	})
}

func TestWebhookDispatcherDelivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	secret := testWebhookSecret()
	verifier, err := standardwebhooks.NewWebhook(secret)
	require.NoError(t, err)

	var received atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("Webhook-Id"))
		assert.NotEmpty(t, r.Header.Get("Webhook-Timestamp"))
		assert.NoError(t, verifier.Verify(body, r.Header))
		received.Store(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher, err := NewWebhookAutomationDispatcher(server.URL, secret, 3, server.Client(), newTestLogger(ctrl))
	require.NoError(t, err)

	transition := testTransition()
	require.NoError(t, dispatcher.Notify(context.Background(), transition))

	body, ok := received.Load().([]byte)
	require.True(t, ok)

	var delivered domain.SegmentTransition
	require.NoError(t, json.Unmarshal(body, &delivered))
	assert.Equal(t, transition, delivered)
}

func TestWebhookDispatcherRetriesTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	shrinkRetryDelays(t)

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher, err := NewWebhookAutomationDispatcher(server.URL, testWebhookSecret(), 3, server.Client(), newTestLogger(ctrl))
	require.NoError(t, err)

	require.NoError(t, dispatcher.Notify(context.Background(), testTransition()))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestWebhookDispatcherGivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	shrinkRetryDelays(t)

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dispatcher, err := NewWebhookAutomationDispatcher(server.URL, testWebhookSecret(), 2, server.Client(), newTestLogger(ctrl))
	require.NoError(t, err)

	err = dispatcher.Notify(context.Background(), testTransition())
	require.Error(t, err)
	assert.IsType(t, &domain.DownstreamError{}, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestWebhookDispatcherStableMessageID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	shrinkRetryDelays(t)

	// the message id is derived from the transition, so a retried delivery
	// is deduplicatable downstream
	var ids []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("Webhook-Id"))
		if len(ids) < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher, err := NewWebhookAutomationDispatcher(server.URL, testWebhookSecret(), 3, server.Client(), newTestLogger(ctrl))
	require.NoError(t, err)

	transition := testTransition()
	require.NoError(t, dispatcher.Notify(context.Background(), transition))

	require.Len(t, ids, 2)
	assert.Equal(t, transition.DedupKey(), ids[0])
	assert.Equal(t, ids[0], ids[1])
}

func TestLoggingDispatcherNeverFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := NewLoggingAutomationDispatcher(newTestLogger(ctrl))
	assert.NoError(t, dispatcher.Notify(context.Background(), testTransition()))
}

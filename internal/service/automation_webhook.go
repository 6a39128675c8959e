package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

// retry delays between webhook attempts; bounded so no dispatch blocks
// indefinitely
var dispatchRetryDelays = []time.Duration{
	1 * time.Second,
	5 * time.Second,
	15 * time.Second,
}

// WebhookAutomationDispatcher notifies the downstream automation executor
// of segment transitions over signed webhooks (standard-webhooks format).
// Delivery is at-least-once with the transition dedup key as message id.
type WebhookAutomationDispatcher struct {
	endpoint    string
	signer      *standardwebhooks.Webhook
	httpClient  *http.Client
	maxAttempts int
	logger      logger.Logger
}

// NewWebhookAutomationDispatcher creates a new webhook dispatcher
func NewWebhookAutomationDispatcher(endpoint, secret string, maxAttempts int, httpClient *http.Client, logger logger.Logger) (*WebhookAutomationDispatcher, error) {
	signer, err := standardwebhooks.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook signer: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 10 * time.Second,
		}
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &WebhookAutomationDispatcher{
		endpoint:    endpoint,
		signer:      signer,
		httpClient:  httpClient,
		maxAttempts: maxAttempts,
		logger:      logger,
	}, nil
}

// Notify delivers one transition. It retries transient failures with a
// bounded backoff and returns DownstreamError when every attempt fails.
func (d *WebhookAutomationDispatcher) Notify(ctx context.Context, transition domain.SegmentTransition) error {
	payload, err := json.Marshal(transition)
	if err != nil {
		return &domain.DownstreamError{Endpoint: d.endpoint, Err: err}
	}

	msgID := transition.DedupKey()
	timestamp := time.Now().UTC()

	signature, err := d.signer.Sign(msgID, timestamp, payload)
	if err != nil {
		return &domain.DownstreamError{Endpoint: d.endpoint, Err: err}
	}

	var lastErr error
	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := dispatchRetryDelays[min(attempt-1, len(dispatchRetryDelays)-1)]
			select {
			case <-ctx.Done():
				return &domain.DownstreamError{Endpoint: d.endpoint, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}

		lastErr = d.deliver(ctx, msgID, timestamp, signature, payload)
		if lastErr == nil {
			return nil
		}

		d.logger.WithFields(map[string]interface{}{
			"endpoint": d.endpoint,
			"msg_id":   msgID,
			"attempt":  attempt + 1,
			"error":    lastErr.Error(),
		}).Warn("Automation webhook delivery attempt failed")
	}

	return &domain.DownstreamError{Endpoint: d.endpoint, Err: lastErr}
}

func (d *WebhookAutomationDispatcher) deliver(ctx context.Context, msgID string, timestamp time.Time, signature string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Webhook-Id", msgID)
	req.Header.Set("Webhook-Timestamp", fmt.Sprintf("%d", timestamp.Unix()))
	req.Header.Set("Webhook-Signature", signature)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

// LoggingAutomationDispatcher is used when no webhook endpoint is
// configured: transitions are only logged
type LoggingAutomationDispatcher struct {
	logger logger.Logger
}

// NewLoggingAutomationDispatcher creates a dispatcher that logs transitions
func NewLoggingAutomationDispatcher(logger logger.Logger) *LoggingAutomationDispatcher {
	return &LoggingAutomationDispatcher{logger: logger}
}

// Notify logs the transition
func (d *LoggingAutomationDispatcher) Notify(ctx context.Context, transition domain.SegmentTransition) error {
	d.logger.WithFields(map[string]interface{}{
		"person_id":  transition.PersonID,
		"segment_id": transition.SegmentID,
		"transition": transition.Transition,
	}).Info("Segment transition")
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

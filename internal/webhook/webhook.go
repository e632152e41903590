// Package webhook delivers finished analyses to the downstream automation
// endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/julialegal/brujula/internal/common"
	"github.com/julialegal/brujula/internal/model"
)

// Payload is the delivery envelope the automation endpoint expects.
type Payload struct {
	Profile   model.Profile  `json:"profile"`
	Analysis  model.Analysis `json:"analysis"`
	Action    string         `json:"action"`
	SessionID string         `json:"sessionId,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Sender posts payloads to a fixed webhook URL with retry on transient
// failures. 4xx responses are terminal: the payload is wrong, not the wire.
type Sender struct {
	url    string
	client *http.Client
	retry  common.RetryOptions
}

// NewSender creates a sender for the given URL.
func NewSender(url string) (*Sender, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: webhook URL", common.ErrMissingConfig)
	}
	return &Sender{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		retry: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: time.Second,
			MaxDelay:     15 * time.Second,
			Multiplier:   2.0,
		},
	}, nil
}

// Send posts the payload, stamping the timestamp if unset.
func (s *Sender) Send(ctx context.Context, payload Payload) error {
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	err = common.WithRetry(ctx, func() error {
		return s.post(ctx, body)
	}, s.retry)
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}

	slog.Info("Webhook delivered",
		"session_id", payload.SessionID,
		"action", payload.Action)
	return nil
}

func (s *Sender) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return &common.RetryableError{Err: err, Retryable: false}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &common.RetryableError{Err: err, Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	wrapped := fmt.Errorf("%w: status %d: %s", common.ErrWebhookRejected, resp.StatusCode, string(snippet))

	// Server-side failures and throttling are worth retrying.
	retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
	return &common.RetryableError{Err: wrapped, Retryable: retryable}
}

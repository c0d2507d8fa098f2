package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nkiryanov/ledger/internal/logger"
)

const defaultWebhookTimeout = 5 * time.Second

type webhookPayload struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Webhook posts every notification as JSON to the URL
type Webhook struct {
	URL     string
	Timeout time.Duration

	client *http.Client
	logger logger.Logger
}

func NewWebhook(url string, l logger.Logger) *Webhook {
	return &Webhook{
		URL:     url,
		Timeout: defaultWebhookTimeout,
		client:  &http.Client{},
		logger:  l,
	}
}

// Send posts the notification. Any transport failure or non 2xx response reported as false.
func (w *Webhook) Send(message string, category string) bool {
	err := w.post(context.Background(), webhookPayload{Message: message, Category: category})
	if err != nil {
		w.logger.Warn("Failed to deliver notification", "url", w.URL, "category", category, "error", err)
		return false
	}

	w.logger.Debug("Notification delivered", "url", w.URL, "category", category)
	return true
}

func (w *Webhook) post(ctx context.Context, payload webhookPayload) error {
	ctx, cancel := context.WithTimeout(ctx, w.Timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	return nil
}

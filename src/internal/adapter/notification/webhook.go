package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type transferNotification struct {
	AccountID string `json:"accountId"`
	Message   string `json:"message"`
	SentAt    string `json:"sentAt"`
}

// WebhookNotifier delivers transfer notifications as JSON POSTs to a
// configured endpoint. Delivery is best effort; a slow or failing
// endpoint must never hold up or reverse a committed transfer, so the
// client carries a short timeout.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *WebhookNotifier) NotifyAboutTransfer(ctx context.Context, accountID string, message string) error {
	payload := transferNotification{
		AccountID: accountID,
		Message:   message,
		SentAt:    time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
}

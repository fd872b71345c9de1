package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TelegramNotifier implements Notifier against the Telegram relay webhook.
type TelegramNotifier struct {
	webhookURL string
	httpClient *http.Client
}

type telegramPayload struct {
	MessageText string `json:"messageText"`
	UserName    string `json:"userName"`
}

type telegramResponse struct {
	Error string `json:"error"`
}

// NewTelegramNotifier creates a notifier posting to the given webhook URL.
func NewTelegramNotifier(webhookURL string) *TelegramNotifier {
	return &TelegramNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Send posts the message to the webhook. A non-2xx response becomes a
// WebhookError carrying the endpoint's error text when the body provides one.
func (t *TelegramNotifier) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(telegramPayload{
		MessageText: msg.Text,
		UserName:    msg.UserName,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read webhook response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var result telegramResponse
		// Body may not be JSON at all; the status code alone is enough.
		_ = json.Unmarshal(body, &result)
		return &WebhookError{
			StatusCode: resp.StatusCode,
			Message:    result.Error,
		}
	}

	return nil
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bookhaven/bookstore-admin/pkg/logger"
)

// BotClient talks to the messaging-bot gateway that delivers alerts to
// the admin chat.
type BotClient struct {
	baseURL    string
	chatID     string
	httpClient *http.Client
}

// NewBotClient creates a new messaging bot client
func NewBotClient(baseURL, chatID string) *BotClient {
	client := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	logger.Logger.Info().
		Str("base_url", baseURL).
		Str("chat_id", chatID).
		Msg("Messaging bot client initialized")

	return &BotClient{
		baseURL:    baseURL,
		chatID:     chatID,
		httpClient: client,
	}
}

// SendMessage delivers one text message to the configured admin chat
func (c *BotClient) SendMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id": c.chatID,
		"text":    text,
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sendMessage", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach messaging bot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("messaging bot returned status %d", resp.StatusCode)
	}

	return nil
}

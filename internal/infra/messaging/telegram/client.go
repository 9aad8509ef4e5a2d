// Package telegram implements the messaging-platform interfaces (outbound
// sends and inbound update polling) against the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gabapcia/tokenwatch/internal/dispatch"
	"github.com/gabapcia/tokenwatch/internal/handlers/command"

	"github.com/hashicorp/go-retryablehttp"
)

// defaultAPIBaseURL is the public Bot API host.
const defaultAPIBaseURL = "https://api.telegram.org"

// client talks to the Bot API. The HTTP client should be configured without
// its own retries for sends: throttle retries are owned by the dispatcher so
// the rate budget sees every 429.
type client struct {
	httpClient *retryablehttp.Client
	token      string
	baseURL    string
}

// Compile-time interface assertions.
var (
	_ dispatch.Messenger   = (*client)(nil)
	_ command.UpdateSource = (*client)(nil)
)

// Option defines a functional option for configuring the client.
type Option func(*client)

// NewClient creates a Bot API client authenticated with the given token.
func NewClient(httpClient *retryablehttp.Client, token string, opts ...Option) *client {
	c := &client{
		httpClient: httpClient,
		token:      token,
		baseURL:    defaultAPIBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// apiResponse is the envelope every Bot API method returns.
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
	Result json.RawMessage `json:"result"`
}

// call posts one Bot API method and decodes the envelope. A 429 with a
// retry-after hint is mapped to dispatch.ThrottledError.
func (c *client) call(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data apiResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if !data.OK {
		if data.ErrorCode == http.StatusTooManyRequests && data.Parameters != nil {
			return nil, &dispatch.ThrottledError{
				RetryAfter: time.Duration(data.Parameters.RetryAfter) * time.Second,
			}
		}
		return nil, fmt.Errorf("telegram: [%d] %s", data.ErrorCode, data.Description)
	}

	return data.Result, nil
}

// SendMessage implements dispatch.Messenger.
func (c *client) SendMessage(ctx context.Context, recipient, text string, richFormatting bool) error {
	payload := map[string]any{
		"chat_id": recipient,
		"text":    text,
	}
	if richFormatting {
		payload["parse_mode"] = "Markdown"
	}

	_, err := c.call(ctx, "sendMessage", payload)
	return err
}

// update is one entry of the getUpdates result.
type update struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID   int64  `json:"id"`
			Type string `json:"type"`
		} `json:"chat"`
	} `json:"message"`
}

// GetUpdates implements command.UpdateSource.
func (c *client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]command.Update, error) {
	payload := map[string]any{
		"offset":          offset,
		"timeout":         int(timeout.Seconds()),
		"allowed_updates": []string{"message"},
	}

	data, err := c.call(ctx, "getUpdates", payload)
	if err != nil {
		return nil, err
	}

	var raw []update
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	updates := make([]command.Update, 0, len(raw))
	for _, u := range raw {
		if u.Message == nil {
			continue
		}

		updates = append(updates, command.Update{
			ID:      u.UpdateID,
			ChatID:  strconv.FormatInt(u.Message.Chat.ID, 10),
			IsGroup: u.Message.Chat.Type != "private",
			Text:    u.Message.Text,
		})
	}

	return updates, nil
}

// WithBaseURL overrides the Bot API host. Intended for tests and self-hosted
// API gateways.
func WithBaseURL(url string) Option {
	return func(c *client) {
		c.baseURL = url
	}
}

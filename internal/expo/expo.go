// Package expo is a minimal client for the Expo push API, covering
// just the send endpoint the dashboard fan-out needs.
package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	defaultSendURL = "https://exp.host/--/api/v2/push/send"

	// MaxBatchSize is the largest message batch the Expo API accepts
	// in a single request.
	MaxBatchSize = 100
)

// Message is one push notification addressed to a device token.
type Message struct {
	To        string         `json:"to"`
	Sound     string         `json:"sound,omitempty"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	Priority  string         `json:"priority,omitempty"`
	ChannelID string         `json:"channelId,omitempty"`
}

// Ticket is the per-message outcome reported by the API.
type Ticket struct {
	Status  string `json:"status"` // "ok" or "error"
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Details struct {
		Error string `json:"error,omitempty"`
	} `json:"details,omitempty"`
}

// OK reports whether the message was accepted for delivery.
func (t Ticket) OK() bool { return t.Status == "ok" }

// DeviceNotRegistered reports whether the target token is dead and
// should be deactivated.
func (t Ticket) DeviceNotRegistered() bool {
	return t.Details.Error == "DeviceNotRegistered"
}

type sendResponse struct {
	Data []Ticket `json:"data"`
}

// Client talks to the Expo push service.
type Client struct {
	sendURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithSendURL points the client at a different endpoint, mainly for
// tests against httptest servers.
func WithSendURL(url string) Option {
	return func(cl *Client) {
		cl.sendURL = url
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		sendURL:    defaultSendURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send submits one batch of at most MaxBatchSize messages and returns
// the per-message tickets in request order. Callers chunk larger
// fan-outs themselves.
func (c *Client) Send(ctx context.Context, messages []Message) ([]Ticket, error) {
	if len(messages) == 0 {
		return nil, nil
	}
	if len(messages) > MaxBatchSize {
		return nil, fmt.Errorf("expo: batch of %d exceeds limit of %d", len(messages), MaxBatchSize)
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("marshal messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sendURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("expo API error: status %d", resp.StatusCode)
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Data, nil
}

// Package dashsdk is a typed Go client for the team dashboard API.
// Unauthenticated auth-flow calls live on Client; Login returns a
// Session for the bearer-protected dashboard endpoints.
package dashsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dashboard api: status %d: %s", e.StatusCode, e.Message)
}

// Client is an unauthenticated dashboard API client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RequestSignupOTP emails a signup verification code.
func (c *Client) RequestSignupOTP(ctx context.Context, email string) error {
	var out OTPResponse
	return c.do(ctx, http.MethodPost, "/v1/auth/signup/otp", "", OTPRequest{Email: email}, &out)
}

// CompleteSignup finishes a signup and returns the new member.
func (c *Client) CompleteSignup(ctx context.Context, req SignupCompleteRequest) (Member, error) {
	var out Member
	err := c.do(ctx, http.MethodPost, "/v1/auth/signup/complete", "", req, &out)
	return out, err
}

// Login exchanges credentials for an authenticated session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", "", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.AccessToken, Member: out.Member}, nil
}

// RequestResetOTP emails a password-reset code.
func (c *Client) RequestResetOTP(ctx context.Context, email string) error {
	var out OTPResponse
	return c.do(ctx, http.MethodPost, "/v1/auth/reset/otp", "", OTPRequest{Email: email}, &out)
}

// CompleteReset sets a new password using the emailed code.
func (c *Client) CompleteReset(ctx context.Context, req ResetCompleteRequest) error {
	var out OTPResponse
	return c.do(ctx, http.MethodPost, "/v1/auth/reset/complete", "", req, &out)
}

// Livez checks the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", "", nil, &out)
	return out, err
}

// Session is an authenticated client bound to one member's token.
type Session struct {
	client *Client
	token  string

	// Member is the profile returned at login time.
	Member Member
}

// NewSessionFromToken builds a session from an existing bearer token.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Verify re-checks the token and returns the current member profile.
func (s *Session) Verify(ctx context.Context) (Member, error) {
	var out Member
	err := s.client.do(ctx, http.MethodGet, "/v1/auth/member", s.token, nil, &out)
	return out, err
}

// Users lists end-user accounts newest-first.
func (s *Session) Users(ctx context.Context) ([]EndUser, error) {
	var out []EndUser
	err := s.client.do(ctx, http.MethodGet, "/v1/dashboard/users", s.token, nil, &out)
	return out, err
}

// SetUserStatus moderates an end-user account.
func (s *Session) SetUserStatus(ctx context.Context, userID, status string) error {
	path := "/v1/dashboard/users/" + userID + "/status"
	return s.client.do(ctx, http.MethodPost, path, s.token, StatusUpdateRequest{Status: status}, nil)
}

// Transactions lists payment records newest-first.
func (s *Session) Transactions(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	err := s.client.do(ctx, http.MethodGet, "/v1/dashboard/transactions", s.token, nil, &out)
	return out, err
}

// Reports fetches the composite reports screen payload.
func (s *Session) Reports(ctx context.Context) (ReportsResponse, error) {
	var out ReportsResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/dashboard/reports", s.token, nil, &out)
	return out, err
}

// Activity fetches the recent activity feed.
func (s *Session) Activity(ctx context.Context) ([]ActivityEntry, error) {
	var out []ActivityEntry
	err := s.client.do(ctx, http.MethodGet, "/v1/dashboard/activity", s.token, nil, &out)
	return out, err
}

// SendNotification fans a push campaign out to end-user devices.
func (s *Session) SendNotification(ctx context.Context, req SendNotificationRequest) (SendNotificationResponse, error) {
	var out SendNotificationResponse
	err := s.client.do(ctx, http.MethodPost, "/v1/dashboard/notifications/send", s.token, req, &out)
	return out, err
}

// Notifications lists recent push campaigns.
func (s *Session) Notifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	err := s.client.do(ctx, http.MethodGet, "/v1/dashboard/notifications", s.token, nil, &out)
	return out, err
}

// do runs one API call, encoding payload as JSON when present and
// decoding 2xx bodies into out. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr ErrorResponse
		if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

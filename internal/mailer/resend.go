package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

const defaultResendURL = "https://api.resend.com/emails"

// ResendClient sends transactional email through the Resend HTTP API.
type ResendClient struct {
	apiKey     string
	fromEmail  string
	baseURL    string
	httpClient *http.Client
}

type ResendOption func(*ResendClient)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) ResendOption {
	return func(rc *ResendClient) {
		rc.httpClient = c
	}
}

// WithBaseURL points the client at a different endpoint, mainly for
// tests against httptest servers.
func WithBaseURL(url string) ResendOption {
	return func(rc *ResendClient) {
		rc.baseURL = url
	}
}

func NewResendClient(apiKey, fromEmail string, opts ...ResendOption) *ResendClient {
	c := &ResendClient{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		baseURL:    defaultResendURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured returns true if the API key is set.
func (c *ResendClient) Configured() bool {
	return c.apiKey != ""
}

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// SendOTP delivers a one-time code for signup or password reset.
func (c *ResendClient) SendOTP(ctx context.Context, toEmail, code string, purpose domain.OTPPurpose) error {
	if !c.Configured() {
		return fmt.Errorf("mailer not configured: missing api key")
	}

	var subject, lead string
	switch purpose {
	case domain.PurposeReset:
		subject = "Reset Your Team Dashboard Password"
		lead = "We received a request to reset your password. Your OTP code is:"
	default:
		subject = "Your OTP for Next Nukkad Team Registration"
		lead = "Your OTP for team registration is:"
	}

	textBody := fmt.Sprintf(
		"%s\n\n%s\n\nThis OTP will expire in 10 minutes. If you didn't request this, please ignore this email.",
		lead, code,
	)
	htmlBody := fmt.Sprintf(
		`<p>%s</p><h1 style="letter-spacing: 8px;">%s</h1><p>This OTP will expire in 10 minutes. If you didn't request this, please ignore this email.</p>`,
		lead, code,
	)

	payload := resendEmail{
		From:    c.fromEmail,
		To:      []string{toEmail},
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API error: status %d", resp.StatusCode)
	}

	return nil
}

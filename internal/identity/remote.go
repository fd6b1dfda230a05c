package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Remote talks to a GoTrue-compatible identity service over HTTP.
// Admin endpoints authenticate with the service-role key; user
// endpoints forward the caller's bearer token.
type Remote struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

type RemoteOption func(*Remote)

// WithHTTPClient overrides the HTTP client used for API calls. The
// client's timeout bounds every identity call.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *Remote) {
		r.httpClient = c
	}
}

func NewRemote(baseURL, serviceKey string, opts ...RemoteOption) *Remote {
	r := &Remote{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type remoteAccount struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (r *Remote) CreateAccount(ctx context.Context, email, password, name string) (Account, error) {
	payload := map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": true,
		"user_metadata": map[string]any{"name": name},
	}

	var out remoteAccount
	status, err := r.do(ctx, http.MethodPost, "/admin/users", r.serviceKey, payload, &out)
	if err != nil {
		return Account{}, err
	}
	switch {
	case status == http.StatusUnprocessableEntity, status == http.StatusConflict:
		return Account{}, ErrAccountExists
	case status >= 400:
		return Account{}, fmt.Errorf("identity: create account: status %d", status)
	}
	return Account{ID: out.ID, Email: out.Email}, nil
}

func (r *Remote) PasswordLogin(ctx context.Context, email, password string) (Session, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}

	var out struct {
		AccessToken string        `json:"access_token"`
		TokenType   string        `json:"token_type"`
		ExpiresIn   int64         `json:"expires_in"`
		User        remoteAccount `json:"user"`
	}
	path := "/token?" + url.Values{"grant_type": {"password"}}.Encode()
	status, err := r.do(ctx, http.MethodPost, path, r.serviceKey, payload, &out)
	if err != nil {
		return Session{}, err
	}
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnauthorized:
		return Session{}, ErrInvalidCredentials
	case status >= 400:
		return Session{}, fmt.Errorf("identity: login: status %d", status)
	}
	return Session{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresIn:   out.ExpiresIn,
		Account:     Account{ID: out.User.ID, Email: out.User.Email},
	}, nil
}

func (r *Remote) AccountByToken(ctx context.Context, token string) (Account, error) {
	var out remoteAccount
	status, err := r.do(ctx, http.MethodGet, "/user", token, nil, &out)
	if err != nil {
		return Account{}, err
	}
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return Account{}, ErrInvalidToken
	case status >= 400:
		return Account{}, fmt.Errorf("identity: get user: status %d", status)
	}
	if out.ID == "" {
		return Account{}, ErrInvalidToken
	}
	return Account{ID: out.ID, Email: out.Email}, nil
}

func (r *Remote) UpdatePassword(ctx context.Context, accountID, newPassword string) error {
	payload := map[string]any{"password": newPassword}

	status, err := r.do(ctx, http.MethodPut, "/admin/users/"+accountID, r.serviceKey, payload, nil)
	if err != nil {
		return err
	}
	if status >= 400 {
		return fmt.Errorf("identity: update password: status %d", status)
	}
	return nil
}

// do runs one API call. Transport failures map to ErrUnavailable; HTTP
// status handling is left to the caller.
func (r *Remote) do(ctx context.Context, method, path, bearer string, payload, out any) (int, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("identity: marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("identity: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)
	// GoTrue deployments fronted by an API gateway also want the key
	// as its own header.
	req.Header.Set("apikey", r.serviceKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 400 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("identity: decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

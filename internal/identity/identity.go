// Package identity abstracts the credential backend behind the
// dashboard. Production points at a hosted GoTrue-compatible service;
// deployments without one (and the test suite) use the store-backed
// local provider.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials means the email/password pair did not match.
	ErrInvalidCredentials = errors.New("identity: invalid credentials")

	// ErrInvalidToken means the bearer token failed verification.
	ErrInvalidToken = errors.New("identity: invalid token")

	// ErrAccountExists means an account with that email already exists.
	ErrAccountExists = errors.New("identity: account already exists")

	// ErrUnavailable means the backend could not be reached or timed
	// out. Callers treat this as retryable and run compensations.
	ErrUnavailable = errors.New("identity: backend unavailable")
)

// Account is the provider's view of a credential holder.
type Account struct {
	ID    string
	Email string
}

// Session is an authenticated login result.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	Account     Account
}

// Gateway is the narrow surface the dashboard needs from a credential
// backend.
type Gateway interface {
	// CreateAccount provisions a pre-confirmed account. The dashboard
	// verifies email ownership via OTP before calling this, so no
	// confirmation email should be triggered.
	CreateAccount(ctx context.Context, email, password, name string) (Account, error)

	// PasswordLogin exchanges credentials for a session.
	PasswordLogin(ctx context.Context, email, password string) (Session, error)

	// AccountByToken resolves a bearer token to its account.
	AccountByToken(ctx context.Context, token string) (Account, error)

	// UpdatePassword sets a new password for the account, invalidating
	// nothing else.
	UpdatePassword(ctx context.Context, accountID, newPassword string) error
}

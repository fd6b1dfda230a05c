package domain

import "time"

// OTPPurpose distinguishes the two flows a one-time passcode can
// belong to. Codes are never valid across purposes.
type OTPPurpose string

const (
	// PurposeCreate gates new team-member signup.
	PurposeCreate OTPPurpose = "create"
	// PurposeReset gates password reset for existing members.
	PurposeReset OTPPurpose = "reset"
)

// Valid reports whether p is a known purpose.
func (p OTPPurpose) Valid() bool {
	return p == PurposeCreate || p == PurposeReset
}

// OTPCode is a single issued one-time passcode. The code itself is
// stored only as a SHA-256 fingerprint; the plaintext exists in the
// delivery email and nowhere else.
type OTPCode struct {
	ID        string
	Email     string
	CodeHash  string
	Purpose   OTPPurpose
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code's validity window has passed.
func (c OTPCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

package domain

import "time"

// Account is a row in the local identity backend. It only exists when
// the service runs without an external identity provider; the remote
// gateway never touches this table.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2id PHC encoded
	Confirmed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

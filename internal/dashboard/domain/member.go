package domain

import "time"

// Member links an identity-provider account to its dashboard profile.
// At most one record exists per account id; rows are created once at
// signup completion and only last_login/is_active mutate afterwards.
type Member struct {
	ID          string
	AccountID   string
	Email       string
	Name        string
	Role        string
	TeamKeyUsed string // team key id consumed at signup
	IsActive    bool
	LastLogin   *time.Time
	CreatedAt   time.Time
}

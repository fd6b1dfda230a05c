package domain

import "time"

// TeamKey is a provisioned signup key with a usage quota. Keys are
// minted out of band (cmd/teamkey) and consumed once per successful
// signup; they are deactivated, never deleted.
type TeamKey struct {
	ID          string
	KeyCode     string
	IsActive    bool
	MaxUses     int
	CurrentUses int
	CreatedBy   *string // account id of the first consumer, set lazily
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

/// Usable reports whether the key can be consumed right now:
// active, under quota, and not past its optional expiry.
func (k TeamKey) Usable(now time.Time) bool {
	if !k.IsActive || k.CurrentUses >= k.MaxUses {
		return false
	}
	if k.ExpiresAt != nil && !k.ExpiresAt.After(now) {
		return false
	}
	return true
}

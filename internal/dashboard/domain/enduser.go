package domain

import "time"

// End-user account statuses a moderator can assign.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusBanned   = "banned"
)

// ValidModerationStatus reports whether s is a status a team member
// may set. Pending is the initial state and cannot be re-assigned.
func ValidModerationStatus(s string) bool {
	return s == StatusApproved || s == StatusRejected || s == StatusBanned
}

// EndUser is a consumer-app account as the dashboard sees it. The
// dashboard reads and moderates these rows but never creates them.
type EndUser struct {
	ID            string
	Email         string
	Phone         string
	Name          string
	Locality      string
	City          string
	State         string
	AccountMode   string // freemium | premium
	OnlineStatus  string // online | offline
	AccountStatus string
	CreatedAt     time.Time
	LastLogin     *time.Time
}

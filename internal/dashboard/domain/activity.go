package domain

import "time"

// Activity types the dashboard feed filters on.
const (
	ActivityStatusChange = "account_status_change"
	ActivityLogin        = "login"
	ActivityLogout       = "logout"
)

// ActivityEntry is a row in the end-user activity log. Moderation
// actions append here so the feed shows who did what.
type ActivityEntry struct {
	ID           string
	UserID       string
	ActivityType string
	Description  string
	CreatedAt    time.Time
}

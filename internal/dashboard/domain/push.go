package domain

import "time"

// PushToken is a device registration belonging to an end user.
type PushToken struct {
	UserID    string
	Token     string
	Platform  string // ios | android
	IsActive  bool
	CreatedAt time.Time
}

// Notification targeting modes.
const (
	TargetAll      = "all"
	TargetSelected = "selected"
)

// Notification records one push campaign sent from the dashboard,
// with the per-ticket outcome counts reported by the gateway.
type Notification struct {
	ID           string
	Title        string
	Body         string
	TargetType   string
	SentBy       string // member id
	SuccessCount int
	FailCount    int
	CreatedAt    time.Time
}

package domain

import "time"

// UserReport is one end-user reporting another.
type UserReport struct {
	ID             string
	ReporterID     string
	ReportedUserID string
	Reason         string
	Status         string
	CreatedAt      time.Time
}

// BlockedUser records one end-user blocking another.
type BlockedUser struct {
	ID        string
	BlockerID string
	BlockedID string
	CreatedAt time.Time
}

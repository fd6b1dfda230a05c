package domain

import "time"

// Transaction is a consumer payment record, read-only here.
type Transaction struct {
	ID            string
	UserID        string
	Amount        float64
	PaymentStatus string
	PaymentMethod string
	CreatedAt     time.Time
}

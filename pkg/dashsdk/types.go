package dashsdk

import "time"

// ErrorResponse is the uniform error body every endpoint returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ============================================================================
// Auth flow types
// ============================================================================

// OTPRequest starts a signup or reset flow by emailing a code.
type OTPRequest struct {
	Email string `json:"email"`
}

// OTPResponse acknowledges that a code was sent.
type OTPResponse struct {
	Message string `json:"message"`
}

// SignupCompleteRequest finishes a signup.
type SignupCompleteRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	TeamKey  string `json:"team_key"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the member profile.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Member      Member `json:"member"`
}

// ResetCompleteRequest finishes a password reset.
type ResetCompleteRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// Member is a team-member profile as returned by the API.
type Member struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ============================================================================
// Dashboard screen types
// ============================================================================

// EndUser is a consumer-app account row.
type EndUser struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Name          string     `json:"name"`
	Locality      string     `json:"locality"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	AccountMode   string     `json:"account_mode"`
	OnlineStatus  string     `json:"online_status"`
	AccountStatus string     `json:"account_status"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

// StatusUpdateRequest moderates an end-user account.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// Transaction is a consumer payment record.
type Transaction struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserReport is one end-user reporting another.
type UserReport struct {
	ID             string    `json:"id"`
	ReporterID     string    `json:"reporter_id"`
	ReportedUserID string    `json:"reported_user_id"`
	Reason         string    `json:"reason"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// BlockedUser records one end-user blocking another.
type BlockedUser struct {
	ID        string    `json:"id"`
	BlockerID string    `json:"blocker_id"`
	BlockedID string    `json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityEntry is a row in the end-user activity feed.
type ActivityEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReportsResponse is the composite payload of the reports screen.
type ReportsResponse struct {
	Reports  []UserReport    `json:"reports"`
	Blocked  []BlockedUser   `json:"blocked_users"`
	Activity []ActivityEntry `json:"recent_activity"`
}

// SendNotificationRequest describes one push campaign.
type SendNotificationRequest struct {
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	TargetType  string         `json:"target_type"`
	TargetUsers []string       `json:"target_users,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// SendNotificationResponse is the fan-out outcome.
type SendNotificationResponse struct {
	NotificationID  string `json:"notification_id,omitempty"`
	TotalRecipients int    `json:"total_recipients"`
	SuccessfulSends int    `json:"successful_sends"`
	FailedSends     int    `json:"failed_sends"`
}

// Notification is one recorded push campaign.
type Notification struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	TargetType   string    `json:"target_type"`
	SentBy       string    `json:"sent_by"`
	SuccessCount int       `json:"success_count"`
	FailCount    int       `json:"fail_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// HealthResponse is the liveness/readiness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

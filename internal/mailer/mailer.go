package mailer

import (
	"context"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

// Mailer delivers one-time codes to team members. The production
// implementation is the Resend client; tests swap in a recorder.
type Mailer interface {
	// SendOTP delivers a code for the given purpose. Implementations
	// must return an error on any delivery failure so callers can
	// abort the flow before persisting the code.
	SendOTP(ctx context.Context, toEmail, code string, purpose domain.OTPPurpose) error
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/internal/identity"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

var ErrInvalidResetRequest = errors.New("invalid password reset request")

// ResetService handles password reset for existing members: a reset
// code proves mailbox ownership, then the identity backend gets the
// new password.
type ResetService struct {
	Store    store.Store
	OTP      *OTPService
	Identity identity.Gateway
}

// Request emails a reset code. Only existing members qualify; unknown
// emails get store.ErrNotFound and no mail is sent.
func (s *ResetService) Request(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Store.Members().GetMemberByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("password reset requested for unknown email")
		}
		return err
	}

	return s.OTP.Issue(ctx, email, domain.PurposeReset)
}

// Complete verifies the code and updates the password, then sweeps any
// remaining reset codes for the email.
func (s *ResetService) Complete(ctx context.Context, email, code, newPassword string) error {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || code == "" || newPassword == "" {
		return ErrInvalidResetRequest
	}

	// 1. Consume the reset code.
	if err := s.OTP.Verify(ctx, email, code, domain.PurposeReset); err != nil {
		return err
	}

	// 2. Resolve the member's identity account.
	member, err := s.Store.Members().GetMemberByEmail(ctx, email)
	if err != nil {
		log.Error("failed to resolve member for reset", slog.Any("error", err))
		return err
	}

	// 3. Set the new password upstream.
	if err := s.Identity.UpdatePassword(ctx, member.AccountID, newPassword); err != nil {
		log.Error("identity password update failed",
			slog.String("member_id", member.ID),
			slog.Any("error", err),
		)
		return err
	}

	// 4. Sweep leftover reset codes for the email.
	if err := s.Store.OTPCodes().DeleteCodesForEmail(ctx, email, domain.PurposeReset); err != nil {
		log.Error("failed to sweep reset codes", slog.Any("error", err))
		return err
	}

	log.Info("password reset completed", slog.String("member_id", member.ID))
	return nil
}

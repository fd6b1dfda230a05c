package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/internal/mailer"
	"github.com/nextnukkad/team-dashboard/pkg/cryptox"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

var (
	ErrInvalidDomain  = errors.New("email is not on the allowed team domain")
	ErrInvalidPurpose = errors.New("invalid otp purpose")
	ErrOTPExpired     = errors.New("otp has expired")
	ErrDeliveryFailed = errors.New("failed to deliver otp email")
)

const otpDigits = 6

// OTPService owns issuance and single-use verification of one-time
// passcodes. Codes are random 6-digit numbers, stored only as SHA-256
// fingerprints, scoped to (email, purpose).
type OTPService struct {
	Store         store.Store
	Mailer        mailer.Mailer
	AllowedDomain string
	TTL           time.Duration
}

// Issue generates a fresh code, emails it, and persists its
// fingerprint. Delivery happens before persistence so a failed send
// leaves no orphaned code behind. Any prior codes for the same
// (email, purpose) are invalidated.
func (s *OTPService) Issue(ctx context.Context, email string, purpose domain.OTPPurpose) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if !purpose.Valid() {
		return ErrInvalidPurpose
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.HasSuffix(email, "@"+s.AllowedDomain) {
		log.Warn("otp requested for email outside allowed domain",
			slog.String("purpose", string(purpose)),
		)
		return ErrInvalidDomain
	}

	// 2. Generate the code.
	code, err := cryptox.GenerateNumericCode(otpDigits)
	if err != nil {
		log.Error("failed to generate otp code", slog.Any("error", err))
		return err
	}

	// 3. Deliver first. A code nobody received must not exist.
	if err := s.Mailer.SendOTP(ctx, email, code, purpose); err != nil {
		log.Error("failed to send otp email",
			slog.String("purpose", string(purpose)),
			slog.Any("error", err),
		)
		return errors.Join(ErrDeliveryFailed, err)
	}

	now := time.Now().UTC()
	record := domain.OTPCode{
		ID:        idx.New().String(),
		Email:     email,
		CodeHash:  cryptox.FingerprintToken(code),
		Purpose:   purpose,
		ExpiresAt: now.Add(s.TTL),
		CreatedAt: now,
	}

	// 4. Supersede prior codes and store the new one atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.OTPCodes().DeleteCodesForEmail(ctx, email, purpose); err != nil {
			return err
		}
		return tx.OTPCodes().CreateCode(ctx, record)
	})
	if err != nil {
		log.Error("failed to persist otp code", slog.Any("error", err))
		return err
	}

	log.Debug("otp issued",
		slog.String("otp_id", record.ID),
		slog.String("purpose", string(purpose)),
		slog.Time("expires_at", record.ExpiresAt),
	)
	return nil
}

// Verify consumes a code. Success deletes the row so a second attempt
// with the same code fails with store.ErrNotFound. An expired row is
// deleted on sight and reported as ErrOTPExpired.
func (s *OTPService) Verify(ctx context.Context, email, code string, purpose domain.OTPPurpose) error {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	fingerprint := cryptox.FingerprintToken(code)

	// 1. Look up the newest matching row.
	record, err := s.Store.OTPCodes().GetNewestCodeByHash(ctx, email, fingerprint, purpose)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("otp verification attempted with unknown code",
				slog.String("purpose", string(purpose)),
			)
		}
		return err
	}

	// 2. Expired rows are removed so the next attempt reads NotFound,
	// not Expired; the distinction leaks nothing useful after the
	// first response.
	if record.Expired(time.Now().UTC()) {
		if err := s.Store.OTPCodes().DeleteCode(ctx, record.ID); err != nil {
			log.Error("failed to delete expired otp", slog.Any("error", err))
			return err
		}
		return ErrOTPExpired
	}

	// 3. Single use: consume on success.
	if err := s.Store.OTPCodes().DeleteCode(ctx, record.ID); err != nil {
		log.Error("failed to consume otp", slog.Any("error", err))
		return err
	}

	log.Debug("otp verified",
		slog.String("otp_id", record.ID),
		slog.String("purpose", string(purpose)),
	)
	return nil
}

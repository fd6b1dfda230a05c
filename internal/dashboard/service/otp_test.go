package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/pkg/cryptox"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
)

func TestOTPIssueRejectsForeignDomain(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.OTP.Issue(ctx, "intruder@gmail.com", domain.PurposeCreate)
	require.ErrorIs(t, err, ErrInvalidDomain)
	require.Zero(t, env.Mailer.calls, "no email should be attempted")
}

func TestOTPIssueVerifyIsSingleUse(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	email := "sana@nextnukkad.in"

	require.NoError(t, env.OTP.Issue(ctx, email, domain.PurposeCreate))
	code := env.Mailer.lastCode(t)
	require.Len(t, code, 6)

	require.NoError(t, env.OTP.Verify(ctx, email, code, domain.PurposeCreate))

	// The code was consumed; a replay reads as never-issued.
	err := env.OTP.Verify(ctx, email, code, domain.PurposeCreate)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestOTPVerifyNeverIssuedCode(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	err := env.OTP.Verify(context.Background(), "sana@nextnukkad.in", "123456", domain.PurposeCreate)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestOTPVerifyExpiredCode(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	email := "sana@nextnukkad.in"
	code := "654321"

	// Seed an already-expired row directly.
	require.NoError(t, env.Store.OTPCodes().CreateCode(ctx, domain.OTPCode{
		ID:        idx.New().String(),
		Email:     email,
		CodeHash:  cryptox.FingerprintToken(code),
		Purpose:   domain.PurposeCreate,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
		CreatedAt: time.Now().UTC().Add(-11 * time.Minute),
	}))

	err := env.OTP.Verify(ctx, email, code, domain.PurposeCreate)
	require.ErrorIs(t, err, ErrOTPExpired)

	// The expired row was deleted, so a retry is NotFound, not Expired.
	err = env.OTP.Verify(ctx, email, code, domain.PurposeCreate)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestOTPIssueSupersedesPriorCodes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	email := "sana@nextnukkad.in"

	require.NoError(t, env.OTP.Issue(ctx, email, domain.PurposeCreate))
	first := env.Mailer.lastCode(t)

	require.NoError(t, env.OTP.Issue(ctx, email, domain.PurposeCreate))
	second := env.Mailer.lastCode(t)

	count, err := env.Store.OTPCodes().CountCodesForEmail(ctx, email, domain.PurposeCreate)
	require.NoError(t, err)
	require.Equal(t, 1, count, "only the newest code should remain")

	if first != second {
		err := env.OTP.Verify(ctx, email, first, domain.PurposeCreate)
		require.ErrorIs(t, err, store.ErrNotFound, "superseded code must be dead")
	}
	require.NoError(t, env.OTP.Verify(ctx, email, second, domain.PurposeCreate))
}

func TestOTPIssueFailedDeliveryPersistsNothing(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	email := "sana@nextnukkad.in"

	env.Mailer.fail = true
	err := env.OTP.Issue(ctx, email, domain.PurposeCreate)
	require.ErrorIs(t, err, ErrDeliveryFailed)

	count, err := env.Store.OTPCodes().CountCodesForEmail(ctx, email, domain.PurposeCreate)
	require.NoError(t, err)
	require.Zero(t, count, "undelivered code must not be stored")
}

func TestOTPCodesAreScopedByPurpose(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	email := "sana@nextnukkad.in"

	require.NoError(t, env.OTP.Issue(ctx, email, domain.PurposeCreate))
	code := env.Mailer.lastCode(t)

	err := env.OTP.Verify(ctx, email, code, domain.PurposeReset)
	require.ErrorIs(t, err, store.ErrNotFound)
}

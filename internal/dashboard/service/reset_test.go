package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/internal/identity"
)

// registerMember runs a full signup so the reset tests operate on a
// realistic member + account pair.
func registerMember(t *testing.T, env *testEnv, email, password string) domain.Member {
	t.Helper()
	ctx := context.Background()

	seedTeamKey(t, env.Store, "KEY-RESET-"+email, 1)
	require.NoError(t, env.Signup.RequestCode(ctx, email))

	member, err := env.Signup.Complete(ctx, SignupRequest{
		Email:    email,
		Code:     env.Mailer.lastCode(t),
		Password: password,
		Name:     "Member",
		Role:     "Support",
		TeamKey:  "KEY-RESET-" + email,
	})
	require.NoError(t, err)
	return member
}

func TestResetRequestUnknownEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	err := env.Reset.Request(context.Background(), "ghost@nextnukkad.in")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Zero(t, env.Mailer.calls, "no email for unknown addresses")
}

func TestResetCompleteChangesPassword(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	registerMember(t, env, "sana@nextnukkad.in", "OldPass1!")

	require.NoError(t, env.Reset.Request(ctx, "sana@nextnukkad.in"))
	code := env.Mailer.lastCode(t)

	require.NoError(t, env.Reset.Complete(ctx, "sana@nextnukkad.in", code, "NewPass1!"))

	// Old password is dead, new one works.
	_, err := env.Sessions.Login(ctx, "sana@nextnukkad.in", "OldPass1!")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)

	_, err = env.Sessions.Login(ctx, "sana@nextnukkad.in", "NewPass1!")
	require.NoError(t, err)

	// The sweep removed every reset code.
	count, err := env.Store.OTPCodes().CountCodesForEmail(ctx, "sana@nextnukkad.in", domain.PurposeReset)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestResetCompleteWrongCode(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	registerMember(t, env, "sana@nextnukkad.in", "OldPass1!")
	require.NoError(t, env.Reset.Request(ctx, "sana@nextnukkad.in"))

	err := env.Reset.Complete(ctx, "sana@nextnukkad.in", "000000", "NewPass1!")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Password unchanged.
	_, err = env.Sessions.Login(ctx, "sana@nextnukkad.in", "OldPass1!")
	require.NoError(t, err)
}

func TestResetCompleteValidatesInput(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	err := env.Reset.Complete(context.Background(), "sana@nextnukkad.in", "", "NewPass1!")
	require.ErrorIs(t, err, ErrInvalidResetRequest)
}

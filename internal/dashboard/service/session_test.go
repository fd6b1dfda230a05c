package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextnukkad/team-dashboard/internal/identity"
)

func TestLoginRequiresMembership(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	// A valid identity account with no membership row.
	_, err := env.Identity.CreateAccount(ctx, "outsider@nextnukkad.in", "Passw0rd!", "Outsider")
	require.NoError(t, err)

	_, err = env.Sessions.Login(ctx, "outsider@nextnukkad.in", "Passw0rd!")
	require.ErrorIs(t, err, ErrNotTeamMember)
}

func TestLoginBadCredentials(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.Sessions.Login(context.Background(), "nobody@nextnukkad.in", "wrong")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestVerifyMemberRefreshesLastLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	member := registerMember(t, env, "sana@nextnukkad.in", "Passw0rd!")

	result, err := env.Sessions.Login(ctx, "sana@nextnukkad.in", "Passw0rd!")
	require.NoError(t, err)

	got, err := env.Sessions.VerifyMember(ctx, result.Session.AccessToken)
	require.NoError(t, err)
	require.Equal(t, member.ID, got.ID)
	require.NotNil(t, got.LastLogin)
	require.True(t, got.IsActive)

	stored, err := env.Store.Members().GetMemberByEmail(ctx, "sana@nextnukkad.in")
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
}

func TestVerifyMemberRejectsGarbageToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.Sessions.VerifyMember(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, identity.ErrInvalidToken)
}

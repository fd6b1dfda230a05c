package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
)

func TestRequestCodeRefusesRegisteredEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	key := seedTeamKey(t, env.Store, "KEY-1", 5)
	require.NoError(t, env.Store.Members().CreateMember(ctx, domain.Member{
		ID:          idx.New().String(),
		AccountID:   idx.New().String(),
		Email:       "sana@nextnukkad.in",
		Name:        "Sana",
		Role:        "Support",
		TeamKeyUsed: key.ID,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}))

	err := env.Signup.RequestCode(ctx, "sana@nextnukkad.in")
	require.ErrorIs(t, err, ErrAlreadyRegistered)
	require.Zero(t, env.Mailer.calls, "no email should be sent for registered addresses")
}

func TestSignupCompleteHappyPath(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	seedTeamKey(t, env.Store, "KEY-1", 1)

	require.NoError(t, env.Signup.RequestCode(ctx, "a@nextnukkad.in"))
	code := env.Mailer.lastCode(t)

	member, err := env.Signup.Complete(ctx, SignupRequest{
		Email:    "a@nextnukkad.in",
		Code:     code,
		Password: "Passw0rd!",
		Name:     "Asha",
		Role:     "Support",
		TeamKey:  "KEY-1",
	})
	require.NoError(t, err)
	require.Equal(t, "a@nextnukkad.in", member.Email)
	require.Equal(t, "Support", member.Role)
	require.True(t, member.IsActive)

	// The key is spent and attributed to its first consumer.
	key, err := env.Store.TeamKeys().GetKeyByCode(ctx, "KEY-1")
	require.NoError(t, err)
	require.Equal(t, 1, key.CurrentUses)
	require.NotNil(t, key.CreatedBy)
	require.Equal(t, member.AccountID, *key.CreatedBy)

	// The new credentials work and carry membership.
	result, err := env.Sessions.Login(ctx, "a@nextnukkad.in", "Passw0rd!")
	require.NoError(t, err)
	require.Equal(t, member.ID, result.Member.ID)
	require.NotEmpty(t, result.Session.AccessToken)
}

func TestSignupCompleteWrongCodeLeavesKeyUntouched(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	seedTeamKey(t, env.Store, "KEY-1", 1)
	require.NoError(t, env.Signup.RequestCode(ctx, "a@nextnukkad.in"))

	_, err := env.Signup.Complete(ctx, SignupRequest{
		Email:    "a@nextnukkad.in",
		Code:     "000000",
		Password: "Passw0rd!",
		Name:     "Asha",
		Role:     "Support",
		TeamKey:  "KEY-1",
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	key, err := env.Store.TeamKeys().GetKeyByCode(ctx, "KEY-1")
	require.NoError(t, err)
	require.Zero(t, key.CurrentUses)
}

func TestSignupCompleteReleasesKeyOnIdentityFailure(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	seedTeamKey(t, env.Store, "KEY-1", 1)

	// Pre-create the identity account so CreateAccount collides.
	_, err := env.Identity.CreateAccount(ctx, "a@nextnukkad.in", "Existing1!", "Asha")
	require.NoError(t, err)

	require.NoError(t, env.Signup.RequestCode(ctx, "a@nextnukkad.in"))
	code := env.Mailer.lastCode(t)

	_, err = env.Signup.Complete(ctx, SignupRequest{
		Email:    "a@nextnukkad.in",
		Code:     code,
		Password: "Passw0rd!",
		Name:     "Asha",
		Role:     "Support",
		TeamKey:  "KEY-1",
	})
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	// The reservation was compensated.
	key, err := env.Store.TeamKeys().GetKeyByCode(ctx, "KEY-1")
	require.NoError(t, err)
	require.Zero(t, key.CurrentUses)
}

func TestSignupCompleteValidatesInput(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.Signup.Complete(context.Background(), SignupRequest{
		Email: "a@nextnukkad.in",
		Code:  "123456",
	})
	require.ErrorIs(t, err, ErrInvalidSignupRequest)
}

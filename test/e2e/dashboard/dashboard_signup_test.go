package dashboard_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextnukkad/team-dashboard/pkg/dashsdk"
)

func TestSignupFullFlow(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	session := signupMember(t, client, e)

	// The session token works against a protected endpoint.
	member, err := session.Verify(ctx)
	require.NoError(t, err)
	require.Equal(t, memberEmail, member.Email)
	require.Equal(t, memberName, member.Name)
	require.Equal(t, memberRole, member.Role)
	require.True(t, member.IsActive)
	require.NotNil(t, member.LastLogin)
}

func TestSignupRejectsForeignDomain(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	err := client.RequestSignupOTP(ctx, "intruder@gmail.com")
	requireAPIStatus(t, err, http.StatusBadRequest)

	// No email may leave the building for a refused domain.
	require.Empty(t, e.Mailer.sent)
}

func TestSignupOTPIsSingleUse(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	seedTeamKey(t, e, teamKeyCode, 2)
	require.NoError(t, client.RequestSignupOTP(ctx, memberEmail))
	code := e.Mailer.lastCode(t)

	req := dashsdk.SignupCompleteRequest{
		Email:    memberEmail,
		Code:     code,
		Password: memberPassword,
		Name:     memberName,
		Role:     memberRole,
		TeamKey:  teamKeyCode,
	}
	_, err := client.CompleteSignup(ctx, req)
	require.NoError(t, err)

	// Replaying the consumed code must fail even though the key still
	// has quota.
	req.Email = "second@nextnukkad.in"
	_, err = client.CompleteSignup(ctx, req)
	requireAPIStatus(t, err, http.StatusBadRequest)
}

func TestSignupRejectsWrongCode(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	seedTeamKey(t, e, teamKeyCode, 1)
	require.NoError(t, client.RequestSignupOTP(ctx, memberEmail))

	_, err := client.CompleteSignup(ctx, dashsdk.SignupCompleteRequest{
		Email:    memberEmail,
		Code:     "000000",
		Password: memberPassword,
		Name:     memberName,
		Role:     memberRole,
		TeamKey:  teamKeyCode,
	})
	requireAPIStatus(t, err, http.StatusBadRequest)
}

func TestSignupRejectsUnknownTeamKey(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	require.NoError(t, client.RequestSignupOTP(ctx, memberEmail))

	_, err := client.CompleteSignup(ctx, dashsdk.SignupCompleteRequest{
		Email:    memberEmail,
		Code:     e.Mailer.lastCode(t),
		Password: memberPassword,
		Name:     memberName,
		Role:     memberRole,
		TeamKey:  "KEY-NOBODY-MINTED",
	})
	requireAPIStatus(t, err, http.StatusBadRequest)
}

func TestSignupTeamKeyQuota(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	seedTeamKey(t, e, teamKeyCode, 1)

	require.NoError(t, client.RequestSignupOTP(ctx, memberEmail))
	_, err := client.CompleteSignup(ctx, dashsdk.SignupCompleteRequest{
		Email:    memberEmail,
		Code:     e.Mailer.lastCode(t),
		Password: memberPassword,
		Name:     memberName,
		Role:     memberRole,
		TeamKey:  teamKeyCode,
	})
	require.NoError(t, err)

	// The key admitted one member; the next signup is turned away.
	require.NoError(t, client.RequestSignupOTP(ctx, "late@nextnukkad.in"))
	_, err = client.CompleteSignup(ctx, dashsdk.SignupCompleteRequest{
		Email:    "late@nextnukkad.in",
		Code:     e.Mailer.lastCode(t),
		Password: memberPassword,
		Name:     "Late Joiner",
		Role:     memberRole,
		TeamKey:  teamKeyCode,
	})
	requireAPIStatus(t, err, http.StatusBadRequest)
}

func TestSignupRefusesRegisteredEmail(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	signupMember(t, client, e)

	err := client.RequestSignupOTP(ctx, memberEmail)
	requireAPIStatus(t, err, http.StatusConflict)
}

package dashboard_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDashboardRequiresToken(t *testing.T) {
	client, _ := setupDashboard(t)
	ctx := context.Background()

	session := client.NewSessionFromToken("")
	_, err := session.Users(ctx)
	requireAPIStatus(t, err, http.StatusUnauthorized)
}

func TestDashboardRejectsGarbageToken(t *testing.T) {
	client, _ := setupDashboard(t)
	ctx := context.Background()

	session := client.NewSessionFromToken("not-a-real-token")
	_, err := session.Transactions(ctx)
	requireAPIStatus(t, err, http.StatusUnauthorized)
}

func TestDashboardRejectsNonMember(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	// An account that exists upstream but was never admitted to the
	// team must be turned away with 403, not 401.
	_, err := e.Identity.CreateAccount(ctx, "outsider@nextnukkad.in", "Passw0rd!", "Outsider")
	require.NoError(t, err)
	upstream, err := e.Identity.PasswordLogin(ctx, "outsider@nextnukkad.in", "Passw0rd!")
	require.NoError(t, err)

	session := client.NewSessionFromToken(upstream.AccessToken)
	_, err = session.Users(ctx)
	requireAPIStatus(t, err, http.StatusForbidden)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	signupMember(t, client, e)

	_, err := client.Login(ctx, memberEmail, "wrong-password")
	requireAPIStatus(t, err, http.StatusUnauthorized)
}

package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsersScreenAndModeration(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	session := signupMember(t, client, e)

	seedEndUser(t, e, "user-1", "Ravi Kumar", "pending")
	seedEndUser(t, e, "user-2", "Meena Joshi", "approved")

	users, err := session.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.NoError(t, session.SetUserStatus(ctx, "user-1", "approved"))

	users, err = session.Users(ctx)
	require.NoError(t, err)
	for _, u := range users {
		require.Equal(t, "approved", u.AccountStatus)
	}

	// Moderation leaves a trace in the activity feed, attributed to
	// the acting member.
	activity, err := session.Activity(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, activity)
	require.Equal(t, "account_status_change", activity[0].ActivityType)
	require.Contains(t, activity[0].Description, memberName)
}

func TestModerationRejectsInvalidStatus(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	session := signupMember(t, client, e)
	seedEndUser(t, e, "user-1", "Ravi Kumar", "pending")

	err := session.SetUserStatus(ctx, "user-1", "vaporised")
	requireAPIStatus(t, err, 400)

	err = session.SetUserStatus(ctx, "no-such-user", "approved")
	requireAPIStatus(t, err, 404)
}

func TestTransactionsScreen(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	session := signupMember(t, client, e)

	_, err := e.Store.DB().Exec(
		`INSERT INTO transactions (id, user_id, amount, payment_status, payment_method)
		 VALUES ('txn-1', 'user-1', 499.0, 'completed', 'upi')`,
	)
	require.NoError(t, err)

	txns, err := session.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	require.Equal(t, "txn-1", txns[0].ID)
	require.InDelta(t, 499.0, txns[0].Amount, 0.001)
	require.Equal(t, "completed", txns[0].PaymentStatus)
}

func TestReportsScreen(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	session := signupMember(t, client, e)

	db := e.Store.DB()
	_, err := db.Exec(
		`INSERT INTO user_reports (id, reporter_id, reported_user_id, reason)
		 VALUES ('rep-1', 'user-1', 'user-2', 'spam')`,
	)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO blocked_users (id, blocker_id, blocked_id)
		 VALUES ('blk-1', 'user-1', 'user-2')`,
	)
	require.NoError(t, err)

	overview, err := session.Reports(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Reports, 1)
	require.Equal(t, "spam", overview.Reports[0].Reason)
	require.Len(t, overview.Blocked, 1)
	require.Equal(t, "user-2", overview.Blocked[0].BlockedID)
}

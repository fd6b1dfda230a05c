package dashboard_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextnukkad/team-dashboard/pkg/dashsdk"
)

func TestNotificationFanOut(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	session := signupMember(t, client, e)

	seedEndUser(t, e, "user-1", "Ravi Kumar", "approved")
	seedEndUser(t, e, "user-2", "Meena Joshi", "approved")
	seedPushToken(t, e, "user-1", "ExponentPushToken[aaa]")
	seedPushToken(t, e, "user-2", "ExponentPushToken[bbb]")

	resp, err := session.SendNotification(ctx, dashsdk.SendNotificationRequest{
		Title:      "Diwali offer",
		Body:       "Flat 50% off this week",
		TargetType: "all",
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.TotalRecipients)
	require.Equal(t, 2, resp.SuccessfulSends)
	require.Zero(t, resp.FailedSends)

	require.Len(t, e.Push.batches, 1)
	require.Len(t, e.Push.batches[0], 2)

	// The campaign shows up in history with the sender attached.
	history, err := session.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "Diwali offer", history[0].Title)
	require.Equal(t, 2, history[0].SuccessCount)
}

func TestNotificationSelectedUsers(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	session := signupMember(t, client, e)

	seedEndUser(t, e, "user-1", "Ravi Kumar", "approved")
	seedEndUser(t, e, "user-2", "Meena Joshi", "approved")
	seedPushToken(t, e, "user-1", "ExponentPushToken[aaa]")
	seedPushToken(t, e, "user-2", "ExponentPushToken[bbb]")

	resp, err := session.SendNotification(ctx, dashsdk.SendNotificationRequest{
		Title:       "Account notice",
		Body:        "Please update your profile",
		TargetType:  "selected",
		TargetUsers: []string{"user-2"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalRecipients)

	require.Len(t, e.Push.batches, 1)
	require.Len(t, e.Push.batches[0], 1)
	require.Equal(t, "ExponentPushToken[bbb]", e.Push.batches[0][0].To)
}

func TestNotificationValidation(t *testing.T) {
	client, e := setupDashboard(t)
	ctx := context.Background()

	session := signupMember(t, client, e)

	_, err := session.SendNotification(ctx, dashsdk.SendNotificationRequest{
		Title:      "",
		Body:       "Body without a title",
		TargetType: "all",
	})
	requireAPIStatus(t, err, http.StatusBadRequest)

	_, err = session.SendNotification(ctx, dashsdk.SendNotificationRequest{
		Title:      "Title",
		Body:       "Body",
		TargetType: "selected",
	})
	requireAPIStatus(t, err, http.StatusBadRequest)
}

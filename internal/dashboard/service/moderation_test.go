package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store/drivers/sqlite"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
)

// The consumer-app tables have no insert methods on the repo surface,
// so fixtures go in through the raw handle.

func seedEndUser(t *testing.T, st *sqlite.Store, status string) domain.EndUser {
	t.Helper()

	user := domain.EndUser{
		ID:            idx.New().String(),
		Email:         "user@example.com",
		Name:          "Consumer",
		AccountMode:   "freemium",
		OnlineStatus:  "offline",
		AccountStatus: status,
		CreatedAt:     time.Now().UTC(),
	}
	_, err := st.DB().Exec(`
		INSERT INTO end_users (id, email, name, account_mode, online_status, account_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Name, user.AccountMode,
		user.OnlineStatus, user.AccountStatus, user.CreatedAt,
	)
	require.NoError(t, err)
	return user
}

func seedUserReport(t *testing.T, st *sqlite.Store, r domain.UserReport) {
	t.Helper()
	_, err := st.DB().Exec(`
		INSERT INTO user_reports (id, reporter_id, reported_user_id, reason, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.ReporterID, r.ReportedUserID, r.Reason, r.Status, r.CreatedAt,
	)
	require.NoError(t, err)
}

func seedBlockedUser(t *testing.T, st *sqlite.Store, b domain.BlockedUser) {
	t.Helper()
	_, err := st.DB().Exec(`
		INSERT INTO blocked_users (id, blocker_id, blocked_id, created_at)
		VALUES (?, ?, ?, ?)`,
		b.ID, b.BlockerID, b.BlockedID, b.CreatedAt,
	)
	require.NoError(t, err)
}

func TestSetAccountStatusWritesAuditEntry(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	mod := &ModerationService{Store: env.Store}

	user := seedEndUser(t, env.Store, domain.StatusPending)
	actor := domain.Member{ID: idx.New().String(), Name: "Sana"}

	require.NoError(t, mod.SetAccountStatus(ctx, user.ID, domain.StatusApproved, actor))

	got, err := env.Store.EndUsers().GetEndUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, got.AccountStatus)

	feed, err := mod.ActivityFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, domain.ActivityStatusChange, feed[0].ActivityType)
	require.Contains(t, feed[0].Description, "pending")
	require.Contains(t, feed[0].Description, "approved")
	require.Contains(t, feed[0].Description, "Sana")
}

func TestSetAccountStatusRejectsInvalidStatus(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	mod := &ModerationService{Store: env.Store}

	user := seedEndUser(t, env.Store, domain.StatusPending)

	err := mod.SetAccountStatus(context.Background(), user.ID, "pending", domain.Member{Name: "Sana"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	err = mod.SetAccountStatus(context.Background(), user.ID, "deleted", domain.Member{Name: "Sana"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetAccountStatusUnknownUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	mod := &ModerationService{Store: env.Store}

	err := mod.SetAccountStatus(context.Background(), "missing", domain.StatusBanned, domain.Member{Name: "Sana"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestActivityFeedFiltersTypes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	mod := &ModerationService{Store: env.Store}

	now := time.Now().UTC()
	for _, typ := range []string{domain.ActivityLogin, "profile_update", domain.ActivityLogout} {
		require.NoError(t, env.Store.Activity().InsertActivity(ctx, domain.ActivityEntry{
			ID:           idx.New().String(),
			UserID:       "u1",
			ActivityType: typ,
			CreatedAt:    now,
		}))
	}

	feed, err := mod.ActivityFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2, "untracked types stay out of the feed")
	for _, e := range feed {
		require.NotEqual(t, "profile_update", e.ActivityType)
	}
}

func TestReportsOverviewAssemblesAllSections(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	mod := &ModerationService{Store: env.Store}

	seedUserReport(t, env.Store, domain.UserReport{
		ID:             idx.New().String(),
		ReporterID:     "u1",
		ReportedUserID: "u2",
		Reason:         "spam",
		Status:         "open",
		CreatedAt:      time.Now().UTC(),
	})
	seedBlockedUser(t, env.Store, domain.BlockedUser{
		ID:        idx.New().String(),
		BlockerID: "u1",
		BlockedID: "u3",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, env.Store.Activity().InsertActivity(ctx, domain.ActivityEntry{
		ID:           idx.New().String(),
		UserID:       "u2",
		ActivityType: domain.ActivityLogin,
		CreatedAt:    time.Now().UTC(),
	}))

	overview, err := mod.ReportsOverview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Reports, 1)
	require.Len(t, overview.Blocked, 1)
	require.Len(t, overview.Activity, 1)
}

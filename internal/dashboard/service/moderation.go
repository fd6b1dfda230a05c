package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"
)

var ErrInvalidStatus = errors.New("invalid account status")

const (
	reportsActivityLimit = 100
	activityFeedLimit    = 50
)

// ReportsOverview is the composite payload of the reports screen.
type ReportsOverview struct {
	Reports  []domain.UserReport
	Blocked  []domain.BlockedUser
	Activity []domain.ActivityEntry
}

// ModerationService serves the read-mostly dashboard screens over the
// consumer app's tables. The only write is the account status change,
// which also appends to the activity log.
type ModerationService struct {
	Store store.Store
}

// ListEndUsers returns all consumer accounts newest-first.
func (s *ModerationService) ListEndUsers(ctx context.Context) ([]domain.EndUser, error) {
	return s.Store.EndUsers().ListEndUsers(ctx)
}

// SetAccountStatus moderates an end-user account and records who did
// it in the activity log, atomically.
func (s *ModerationService) SetAccountStatus(ctx context.Context, userID, status string, actor domain.Member) error {
	log := slogx.FromContext(ctx)

	// 1. Only moderator-assignable statuses are accepted.
	if !domain.ValidModerationStatus(status) {
		return ErrInvalidStatus
	}

	// 2. Read the current state for the log entry.
	user, err := s.Store.EndUsers().GetEndUserByID(ctx, userID)
	if err != nil {
		return err
	}

	entry := domain.ActivityEntry{
		ID:           idx.New().String(),
		UserID:       userID,
		ActivityType: domain.ActivityStatusChange,
		Description: fmt.Sprintf("Account status changed from %s to %s by %s",
			user.AccountStatus, status, actor.Name),
		CreatedAt: time.Now().UTC(),
	}

	// 3. Status update and audit entry land together or not at all.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.EndUsers().UpdateAccountStatus(ctx, userID, status); err != nil {
			return err
		}
		return tx.Activity().InsertActivity(ctx, entry)
	})
	if err != nil {
		log.Error("failed to update account status",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("account status changed",
		slog.String("user_id", userID),
		slog.String("status", status),
		slog.String("member_id", actor.ID),
	)
	return nil
}

// ListTransactions returns payment records newest-first.
func (s *ModerationService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.Store.Transactions().ListTransactions(ctx)
}

// ReportsOverview assembles the reports screen: open reports, block
// relationships and recent activity in one payload.
func (s *ModerationService) ReportsOverview(ctx context.Context) (ReportsOverview, error) {
	reports, err := s.Store.Reports().ListUserReports(ctx)
	if err != nil {
		return ReportsOverview{}, err
	}
	blocked, err := s.Store.Reports().ListBlockedUsers(ctx)
	if err != nil {
		return ReportsOverview{}, err
	}
	activity, err := s.Store.Activity().ListRecentActivity(ctx, nil, reportsActivityLimit)
	if err != nil {
		return ReportsOverview{}, err
	}

	return ReportsOverview{Reports: reports, Blocked: blocked, Activity: activity}, nil
}

// ActivityFeed returns the recent feed, filtered to the types the
// dashboard renders.
func (s *ModerationService) ActivityFeed(ctx context.Context) ([]domain.ActivityEntry, error) {
	types := []string{
		domain.ActivityStatusChange,
		domain.ActivityLogin,
		domain.ActivityLogout,
	}
	return s.Store.Activity().ListRecentActivity(ctx, types, activityFeedLimit)
}

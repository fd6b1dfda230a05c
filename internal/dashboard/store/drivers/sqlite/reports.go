package sqlite

import (
	"context"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

type reportsRepo struct {
	db dbtx
}

func (r *reportsRepo) ListUserReports(ctx context.Context) ([]domain.UserReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reporter_id, reported_user_id, reason, status, created_at
		FROM user_reports
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.UserReport
	for rows.Next() {
		var rep domain.UserReport
		err := rows.Scan(&rep.ID, &rep.ReporterID, &rep.ReportedUserID,
			&rep.Reason, &rep.Status, &rep.CreatedAt)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *reportsRepo) ListBlockedUsers(ctx context.Context) ([]domain.BlockedUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, blocker_id, blocked_id, created_at
		FROM blocked_users
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []domain.BlockedUser
	for rows.Next() {
		var b domain.BlockedUser
		if err := rows.Scan(&b.ID, &b.BlockerID, &b.BlockedID, &b.CreatedAt); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

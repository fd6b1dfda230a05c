package sqlite

import (
	"context"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

type notificationsRepo struct {
	db dbtx
}

func (r *notificationsRepo) InsertNotification(ctx context.Context, n domain.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, title, body, target_type, sent_by,
			success_count, fail_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Body, n.TargetType, n.SentBy,
		n.SuccessCount, n.FailCount, n.CreatedAt,
	)
	return err
}

func (r *notificationsRepo) ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, body, target_type, sent_by, success_count, fail_count, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.TargetType, &n.SentBy,
			&n.SuccessCount, &n.FailCount, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

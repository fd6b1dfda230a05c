package sqlite

import (
	"context"
	"strings"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

type activityRepo struct {
	db dbtx
}

func (r *activityRepo) InsertActivity(ctx context.Context, e domain.ActivityEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_activity_log (id, user_id, activity_type, description, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.ActivityType, e.Description, e.CreatedAt,
	)
	return err
}

func (r *activityRepo) ListRecentActivity(ctx context.Context, types []string, limit int) ([]domain.ActivityEntry, error) {
	query := `
		SELECT id, user_id, activity_type, description, created_at
		FROM user_activity_log`

	args := make([]any, 0, len(types)+1)
	if len(types) > 0 {
		query += ` WHERE activity_type IN (?` + strings.Repeat(", ?", len(types)-1) + `)`
		for _, t := range types {
			args = append(args, t)
		}
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var e domain.ActivityEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.ActivityType, &e.Description, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

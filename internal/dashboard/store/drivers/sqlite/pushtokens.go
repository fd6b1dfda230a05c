package sqlite

import (
	"context"
	"strings"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

type pushTokensRepo struct {
	db dbtx
}

func (r *pushTokensRepo) ListActiveTokens(ctx context.Context) ([]domain.PushToken, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, token, platform, is_active, created_at
		FROM push_tokens
		WHERE is_active = 1`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTokens(rows)
}

func (r *pushTokensRepo) ListActiveTokensForUsers(ctx context.Context, userIDs []string) ([]domain.PushToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT user_id, token, platform, is_active, created_at
		FROM push_tokens
		WHERE is_active = 1
		  AND user_id IN (?` + strings.Repeat(", ?", len(userIDs)-1) + `)`

	args := make([]any, 0, len(userIDs))
	for _, id := range userIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTokens(rows)
}

func (r *pushTokensRepo) DeactivateToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE push_tokens
		SET is_active = 0
		WHERE token = ?`,
		token,
	)
	return err
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collectTokens(rows rowsScanner) ([]domain.PushToken, error) {
	var tokens []domain.PushToken
	for rows.Next() {
		var t domain.PushToken
		err := rows.Scan(&t.UserID, &t.Token, &t.Platform, &t.IsActive, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

type teamKeysRepo struct {
	db dbtx
}

func (r *teamKeysRepo) CreateKey(ctx context.Context, k domain.TeamKey) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO team_keys (id, key_code, is_active, max_uses, current_uses, created_by, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		k.ID, k.KeyCode, k.IsActive, k.MaxUses, k.CurrentUses,
		mapOptionalString(k.CreatedBy), mapOptionalTime(k.ExpiresAt), k.CreatedAt,
	)
	return err
}

func (r *teamKeysRepo) GetKeyByCode(ctx context.Context, keyCode string) (domain.TeamKey, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, key_code, is_active, max_uses, current_uses, created_by, expires_at, created_at
		FROM team_keys
		WHERE key_code = ?`,
		keyCode,
	)
	return scanTeamKey(row)
}

// ConsumeKey is the single conditional update that serialises quota
// consumption: the WHERE clause re-checks active/quota/expiry at write
// time, so two racing consumers of a key with one use left cannot both
// match.
func (r *teamKeysRepo) ConsumeKey(ctx context.Context, keyCode string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE team_keys
		SET current_uses = current_uses + 1
		WHERE key_code = ?
		  AND is_active = 1
		  AND current_uses < max_uses
		  AND (expires_at IS NULL OR expires_at > ?)`,
		keyCode, now,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *teamKeysRepo) ReleaseKey(ctx context.Context, keyID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE team_keys
		SET current_uses = current_uses - 1
		WHERE id = ? AND current_uses > 0`,
		keyID,
	)
	return err
}

func (r *teamKeysRepo) SetCreatedByIfUnset(ctx context.Context, keyID, accountID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE team_keys
		SET created_by = ?
		WHERE id = ? AND created_by IS NULL`,
		accountID, keyID,
	)
	return err
}

func (r *teamKeysRepo) ListKeys(ctx context.Context) ([]domain.TeamKey, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, key_code, is_active, max_uses, current_uses, created_by, expires_at, created_at
		FROM team_keys
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.TeamKey
	for rows.Next() {
		k, err := scanTeamKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTeamKey(s scanner) (domain.TeamKey, error) {
	var k domain.TeamKey
	var createdBy sql.NullString
	var expiresAt sql.NullTime

	err := s.Scan(&k.ID, &k.KeyCode, &k.IsActive, &k.MaxUses, &k.CurrentUses,
		&createdBy, &expiresAt, &k.CreatedAt)
	if err != nil {
		return domain.TeamKey{}, mapNotFound(err)
	}
	k.CreatedBy = mapNullStringPtr(createdBy)
	k.ExpiresAt = mapNullTimePtr(expiresAt)
	return k, nil
}

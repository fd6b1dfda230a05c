package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
)

type membersRepo struct {
	db dbtx
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO team_members (id, account_id, email, name, role, team_key_used, is_active, last_login, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.AccountID, m.Email, m.Name, m.Role, m.TeamKeyUsed,
		m.IsActive, mapOptionalTime(m.LastLogin), m.CreatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *membersRepo) GetMemberByAccountID(ctx context.Context, accountID string) (domain.Member, error) {
	return r.getMember(ctx, `account_id`, accountID)
}

func (r *membersRepo) GetMemberByEmail(ctx context.Context, email string) (domain.Member, error) {
	return r.getMember(ctx, `email`, email)
}

func (r *membersRepo) getMember(ctx context.Context, column, value string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, account_id, email, name, role, team_key_used, is_active, last_login, created_at
		FROM team_members
		WHERE `+column+` = ?`,
		value,
	)

	var m domain.Member
	var lastLogin sql.NullTime
	err := row.Scan(&m.ID, &m.AccountID, &m.Email, &m.Name, &m.Role,
		&m.TeamKeyUsed, &m.IsActive, &lastLogin, &m.CreatedAt)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	m.LastLogin = mapNullTimePtr(lastLogin)
	return m, nil
}

func (r *membersRepo) TouchLogin(ctx context.Context, memberID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE team_members
		SET last_login = ?, is_active = 1
		WHERE id = ?`,
		at, memberID,
	)
	return err
}

func (r *membersRepo) SetActive(ctx context.Context, memberID string, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE team_members SET is_active = ? WHERE id = ?`,
		active, memberID,
	)
	return err
}

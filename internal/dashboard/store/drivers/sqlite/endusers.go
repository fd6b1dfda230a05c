package sqlite

import (
	"context"
	"database/sql"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

type endUsersRepo struct {
	db dbtx
}

const endUserColumns = `id, email, phone, name, locality, city, state,
	account_mode, online_status, account_status, created_at, last_login`

func (r *endUsersRepo) ListEndUsers(ctx context.Context) ([]domain.EndUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+endUserColumns+`
		FROM end_users
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.EndUser
	for rows.Next() {
		u, err := scanEndUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *endUsersRepo) GetEndUserByID(ctx context.Context, id string) (domain.EndUser, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+endUserColumns+`
		FROM end_users
		WHERE id = ?`,
		id,
	)

	u, err := scanEndUser(row)
	if err != nil {
		return domain.EndUser{}, mapNotFound(err)
	}
	return u, nil
}

func (r *endUsersRepo) UpdateAccountStatus(ctx context.Context, userID, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE end_users
		SET account_status = ?
		WHERE id = ?`,
		status, userID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func scanEndUser(row scanner) (domain.EndUser, error) {
	var (
		u         domain.EndUser
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Email, &u.Phone, &u.Name, &u.Locality, &u.City,
		&u.State, &u.AccountMode, &u.OnlineStatus, &u.AccountStatus,
		&u.CreatedAt, &lastLogin)
	if err != nil {
		return domain.EndUser{}, err
	}
	u.LastLogin = mapNullTimePtr(lastLogin)
	return u, nil
}

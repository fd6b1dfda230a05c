package sqlite

import (
	"context"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

type otpCodesRepo struct {
	db dbtx
}

func (r *otpCodesRepo) CreateCode(ctx context.Context, c domain.OTPCode) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO otp_codes (id, email, code_hash, purpose, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Email, c.CodeHash, string(c.Purpose), c.ExpiresAt, c.CreatedAt,
	)
	return err
}

func (r *otpCodesRepo) GetNewestCodeByHash(
	ctx context.Context,
	email, codeHash string,
	purpose domain.OTPPurpose,
) (domain.OTPCode, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, code_hash, purpose, expires_at, created_at
		FROM otp_codes
		WHERE email = ? AND code_hash = ? AND purpose = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		email, codeHash, string(purpose),
	)

	var c domain.OTPCode
	var purposeStr string
	err := row.Scan(&c.ID, &c.Email, &c.CodeHash, &purposeStr, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		return domain.OTPCode{}, mapNotFound(err)
	}
	c.Purpose = domain.OTPPurpose(purposeStr)
	return c, nil
}

func (r *otpCodesRepo) DeleteCode(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM otp_codes WHERE id = ?`, id)
	return err
}

func (r *otpCodesRepo) DeleteCodesForEmail(
	ctx context.Context,
	email string,
	purpose domain.OTPPurpose,
) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM otp_codes WHERE email = ? AND purpose = ?`,
		email, string(purpose),
	)
	return err
}

func (r *otpCodesRepo) DeleteExpiredCodes(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM otp_codes WHERE expires_at < CURRENT_TIMESTAMP`)
	return err
}

func (r *otpCodesRepo) CountCodesForEmail(
	ctx context.Context,
	email string,
	purpose domain.OTPPurpose,
) (int, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM otp_codes WHERE email = ? AND purpose = ?`,
		email, string(purpose),
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

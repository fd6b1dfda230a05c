package sqlite

import (
	"context"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

type transactionsRepo struct {
	db dbtx
}

func (r *transactionsRepo) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, amount, payment_status, payment_method, created_at
		FROM transactions
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.PaymentStatus,
			&t.PaymentMethod, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

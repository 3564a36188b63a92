package repository

import (
	"context"

	"dealer-portal/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DebtRepository struct {
	db *pgxpool.Pool
}

func NewDebtRepository(db *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{db: db}
}

// The debt amount is the balance the customer still owes after the partial
// payment, derived from the order total and the payment amount at insert
// time so the two can never disagree.
const createDebtFromPaymentSQL = `
INSERT INTO debts (id, payment_id, order_id, remaining_amount, created_at)
SELECT $1, p.id, p.order_id, o.total_amount - p.amount, now()
FROM payments p
JOIN orders o ON o.id = p.order_id
WHERE p.id = $2
RETURNING id`

func (r *DebtRepository) CreateFromPayment(ctx context.Context, paymentID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createDebtFromPaymentSQL, uuid.New(), paymentID).Scan(&id)
	if err != nil {
		if infra.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("payment not found for debt", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create debt from payment", err)
	}
	return id, nil
}

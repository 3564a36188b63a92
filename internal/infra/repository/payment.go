package repository

import (
	"context"

	"dealer-portal/internal/domain/payment"
	"dealer-portal/internal/infra"
	"dealer-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const createPaymentSQL = `
INSERT INTO payments (id, order_id, amount, method, payment_type, percentage, status, txn_ref, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createPaymentSQL,
		p.ID(), p.OrderID(), p.Amount(), p.Method().String(), p.Type().String(),
		p.Percentage().Int(), string(p.Status()), p.TxnRef(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}

const markPaymentSQL = `
UPDATE payments SET status = $2
WHERE id = $1`

func (r *PaymentRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	return r.mark(ctx, id, payment.StatusCompleted)
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.mark(ctx, id, payment.StatusFailed)
}

func (r *PaymentRepository) mark(ctx context.Context, id uuid.UUID, status payment.Status) error {
	tag, err := r.db.Exec(ctx, markPaymentSQL, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

const listPaymentsByOrderSQL = `
SELECT id, order_id, amount, method, payment_type, percentage, status, txn_ref, created_at
FROM payments
WHERE order_id = $1
ORDER BY created_at DESC`

func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.db.Query(ctx, listPaymentsByOrderSQL, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	var items []*queries.PaymentView
	for rows.Next() {
		var item queries.PaymentView
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.Amount, &item.Method, &item.Type,
			&item.Percentage, &item.Status, &item.TxnRef, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return items, nil
}

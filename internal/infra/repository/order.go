package repository

import (
	"context"

	"dealer-portal/internal/domain/order"
	"dealer-portal/internal/infra"
	"dealer-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

const findOrderByIDSQL = `
SELECT id, dealer_id, customer_label, vehicle_label, total_amount, status, created_at, updated_at
FROM orders
WHERE id = $1`

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var view queries.OrderView
	err := r.db.QueryRow(ctx, findOrderByIDSQL, id).Scan(
		&view.ID, &view.DealerID, &view.CustomerLabel, &view.VehicleLabel,
		&view.TotalAmount, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return &view, nil
}

const updateOrderStatusSQL = `
UPDATE orders SET status = $2, updated_at = now()
WHERE id = $1`

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.db.Exec(ctx, updateOrderStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

const listOrdersByDealerSQL = `
SELECT id, customer_label, vehicle_label, total_amount, status, created_at
FROM orders
WHERE dealer_id = $1
ORDER BY created_at DESC`

func (r *OrderRepository) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, listOrdersByDealerSQL, dealerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(
			&item.ID, &item.CustomerLabel, &item.VehicleLabel,
			&item.TotalAmount, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return items, nil
}

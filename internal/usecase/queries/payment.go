package queries

import (
	"context"

	"dealer-portal/internal/infra"
	"dealer-portal/internal/pkg/errs"
	"dealer-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*PaymentView, error)
}

type PaymentQueries interface {
	ListForOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	orders   OrderReadStore
	payments PaymentReadStore
}

func NewPaymentQueries(orders OrderReadStore, payments PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{
		orders:   orders,
		payments: payments,
	}
}

// ListForOrder returns the payment history of one order, newest first. The
// order is loaded first so the dealer access rule applies before any payment
// data leaves the store.
func (q *paymentQueriesImpl) ListForOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) ([]*PaymentView, error) {
	ord, err := q.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Wrap(err, "failed to load order")
	}
	if !actor.CanAccessDealer(ord.DealerID) {
		return nil, ErrOrderAccessDenied
	}

	items, err := q.payments.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list payments")
	}
	return items, nil
}

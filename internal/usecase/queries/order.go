package queries

import (
	"context"

	"dealer-portal/internal/infra"
	"dealer-portal/internal/pkg/errs"
	"dealer-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrOrderAccessDenied = errs.New("order belongs to another dealer")
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error)
	ListForDealer(ctx context.Context, actor shared.Actor, dealerID *uuid.UUID) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Wrap(err, "failed to load order")
	}
	if !actor.CanAccessDealer(view.DealerID) {
		return nil, ErrOrderAccessDenied
	}
	return view, nil
}

func (q *orderQueriesImpl) ListForDealer(ctx context.Context, actor shared.Actor, dealerID *uuid.UUID) ([]*OrderListItem, error) {
	scope, err := resolveDealerScope(actor, dealerID)
	if err != nil {
		return nil, err
	}

	items, err := q.readStore.ListByDealer(ctx, scope)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}
	return items, nil
}

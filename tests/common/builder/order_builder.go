//go:build unit

package builder

import (
	"time"

	"dealer-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID            uuid.UUID
	DealerID      uuid.UUID
	CustomerLabel string
	VehicleLabel  string
	TotalAmount   int64
	Status        string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            uuid.New(),
		DealerID:      uuid.New(),
		CustomerLabel: "Nguyen Van A",
		VehicleLabel:  "VF 8 Plus",
		TotalAmount:   1_000_000,
		Status:        "PENDING",
	}
}

func (o *OrderBuilder) WithDealerID(dealerID uuid.UUID) *OrderBuilder {
	o.DealerID = dealerID
	return o
}

func (o *OrderBuilder) WithTotalAmount(amount int64) *OrderBuilder {
	o.TotalAmount = amount
	return o
}

func (o *OrderBuilder) WithStatus(status string) *OrderBuilder {
	o.Status = status
	return o
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	now := time.Now()
	return &queries.OrderView{
		ID:            o.ID,
		DealerID:      o.DealerID,
		CustomerLabel: o.CustomerLabel,
		VehicleLabel:  o.VehicleLabel,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	DealerID *uuid.UUID `json:"dealer_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

type OrderView struct {
	ID            uuid.UUID `json:"id"`
	DealerID      uuid.UUID `json:"dealer_id"`
	CustomerLabel string    `json:"customer_label"`
	VehicleLabel  string    `json:"vehicle_label"`
	TotalAmount   int64     `json:"total_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type OrderListItem struct {
	ID            uuid.UUID `json:"id"`
	CustomerLabel string    `json:"customer_label"`
	VehicleLabel  string    `json:"vehicle_label"`
	TotalAmount   int64     `json:"total_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentView struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	Amount     int64     `json:"amount"`
	Method     string    `json:"method"`
	Type       string    `json:"type"`
	Percentage int       `json:"percentage,omitempty"`
	Status     string    `json:"status"`
	TxnRef     string    `json:"txn_ref,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

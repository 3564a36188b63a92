package payment

import (
	"time"

	"github.com/google/uuid"
)

// Payment is one recorded payment event against an order.
type Payment struct {
	id         uuid.UUID
	orderID    uuid.UUID
	amount     int64
	method     Method
	kind       Type
	percentage Percentage
	status     Status
	txnRef     string
	createdAt  time.Time
}

// NewPayment records a settled cash payment or a pending gateway payment.
// txnRef is empty for cash; for gateway payments it is the reference sent to
// VNPay and echoed back on return.
func NewPayment(orderID uuid.UUID, req Request, txnRef string) *Payment {
	status := StatusCompleted
	if req.Method() == MethodGateway {
		status = StatusPending
	}
	return &Payment{
		id:         uuid.New(),
		orderID:    orderID,
		amount:     req.ComputedAmount(),
		method:     req.Method(),
		kind:       req.Type(),
		percentage: req.Percentage(),
		status:     status,
		txnRef:     txnRef,
	}
}

func ReconstructPayment(
	id, orderID uuid.UUID,
	amount int64,
	method Method,
	kind Type,
	percentage Percentage,
	status Status,
	txnRef string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:         id,
		orderID:    orderID,
		amount:     amount,
		method:     method,
		kind:       kind,
		percentage: percentage,
		status:     status,
		txnRef:     txnRef,
		createdAt:  createdAt,
	}
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) OrderID() uuid.UUID     { return p.orderID }
func (p *Payment) Amount() int64          { return p.amount }
func (p *Payment) Method() Method         { return p.method }
func (p *Payment) Type() Type             { return p.kind }
func (p *Payment) Percentage() Percentage { return p.percentage }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) TxnRef() string         { return p.txnRef }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }

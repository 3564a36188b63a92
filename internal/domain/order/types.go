package order

import "errors"

var ErrInvalidStatus = errors.New("invalid order status")

// Status values follow the backend wire convention (uppercase).
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusPartial   Status = "PARTIAL"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPartial, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Payable reports whether the order can still accept a payment.
func (s Status) Payable() bool {
	return s == StatusPending || s == StatusPartial
}

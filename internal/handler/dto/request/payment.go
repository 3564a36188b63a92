package request

import (
	"dealer-portal/internal/domain/payment"
	"dealer-portal/internal/usecase/commands"

	"github.com/google/uuid"
)

// PayRequest covers both rails; the rail is picked by the endpoint. The
// percentage is required only for installment payments and must be one of
// the fixed steps, which the domain validates.
type PayRequest struct {
	OrderID     uuid.UUID `json:"order_id" binding:"required"`
	PaymentType string    `json:"payment_type" binding:"required"`
	Percentage  int       `json:"percentage,omitempty"`
}

func (r *PayRequest) ToParams(clientIP string) (commands.PayParams, error) {
	paymentType, err := payment.NewType(r.PaymentType)
	if err != nil {
		return commands.PayParams{}, err
	}

	return commands.PayParams{
		OrderID:     r.OrderID,
		PaymentType: paymentType,
		Percentage:  payment.Percentage(r.Percentage),
		ClientIP:    clientIP,
	}, nil
}

package payment

import (
	"time"

	"dealer-portal/internal/domain/user"

	"github.com/google/uuid"
)

// PendingGatewaySession is the single piece of state that survives the
// full-page redirect to the gateway: written once right before the browser
// leaves, consumed exactly once when it comes back. It lives in Redis, keyed
// by the initiating user, one slot per user.
type PendingGatewaySession struct {
	OrderID        uuid.UUID  `json:"order_id"`
	PaymentID      uuid.UUID  `json:"payment_id"`
	TxnRef         string     `json:"txn_ref"`
	PaymentType    Type       `json:"payment_type"`
	Percentage     Percentage `json:"percentage,omitempty"`
	InitiatingRole user.Role  `json:"initiating_role"`
	CreatedAt      time.Time  `json:"created_at"`
}

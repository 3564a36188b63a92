package shared

import (
	"dealer-portal/internal/domain/user"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a usecase: who they are,
// which dealer they belong to (nil for manufacturer-side roles), and their
// role.
type Actor struct {
	UserID   uuid.UUID
	DealerID *uuid.UUID
	Role     user.Role
}

// CanAccessDealer reports whether the actor may operate on data scoped to
// dealerID. Manufacturer-side roles see every dealer; dealer-side roles only
// their own.
func (a Actor) CanAccessDealer(dealerID uuid.UUID) bool {
	if !a.Role.IsDealerSide() {
		return true
	}
	return a.DealerID != nil && *a.DealerID == dealerID
}

// DefaultOrdersPath is where the browser lands after a payment flow
// finishes, depending on which side of the house initiated it.
func DefaultOrdersPath(role user.Role) string {
	if role.IsDealerSide() {
		return "/dealer/orders"
	}
	return "/evm/orders"
}

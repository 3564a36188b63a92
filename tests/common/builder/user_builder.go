//go:build unit

package builder

import (
	"dealer-portal/internal/domain/user"
	"dealer-portal/internal/usecase/queries"
	"dealer-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Role     string
	DealerID *uuid.UUID
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	dealerID := uuid.New()
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "staff@dealer.example.com",
		Role:     "dealer_staff",
		DealerID: &dealerID,
		IsActive: true,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithDealerID(dealerID *uuid.UUID) *UserBuilder {
	u.DealerID = dealerID
	return u
}

func (u *UserBuilder) Inactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		DealerID: u.DealerID,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildActor() shared.Actor {
	return shared.Actor{
		UserID:   u.ID,
		DealerID: u.DealerID,
		Role:     user.Role(u.Role),
	}
}

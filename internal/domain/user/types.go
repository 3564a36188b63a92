package user

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleEVMStaff      Role = "evm_staff"
	RoleDealerManager Role = "dealer_manager"
	RoleDealerStaff   Role = "dealer_staff"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEVMStaff, RoleDealerManager, RoleDealerStaff:
		return true
	default:
		return false
	}
}

// IsDealerSide reports whether the role belongs to a dealer organization as
// opposed to the manufacturer (EVM) side.
func (r Role) IsDealerSide() bool {
	return r == RoleDealerManager || r == RoleDealerStaff
}

// IsCustomerFacing reports whether the role sells directly to customers.
// Debt records are created only for installment payments taken by this role.
func (r Role) IsCustomerFacing() bool {
	return r == RoleDealerStaff
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

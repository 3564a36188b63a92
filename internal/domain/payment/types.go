package payment

import "errors"

var (
	ErrInvalidMethod      = errors.New("invalid payment method")
	ErrInvalidType        = errors.New("invalid payment type")
	ErrInvalidPercentage  = errors.New("invalid installment percentage")
	ErrPercentageRequired = errors.New("installment percentage required")
	ErrAmountBelowMinimum = errors.New("amount below gateway minimum")
	ErrInvalidAmount      = errors.New("order amount must be positive")
)

// Method is the payment rail: an in-app cash settlement or a redirect to the
// VNPay gateway.
type Method string

const (
	MethodCash    Method = "cash"
	MethodGateway Method = "gateway"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodGateway:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	method := Method(s)
	if !method.IsValid() {
		return "", ErrInvalidMethod
	}
	return method, nil
}

// Type distinguishes full settlement from an installment payment of a fixed
// percentage of the order total.
type Type string

const (
	TypeFull        Type = "full"
	TypeInstallment Type = "installment"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeFull, TypeInstallment:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	typ := Type(s)
	if !typ.IsValid() {
		return "", ErrInvalidType
	}
	return typ, nil
}

// Percentage is the caller-selected installment fraction. Only the fixed set
// 20..90 in steps of 10 is accepted.
type Percentage int

var allowedPercentages = map[Percentage]struct{}{
	20: {}, 30: {}, 40: {}, 50: {}, 60: {}, 70: {}, 80: {}, 90: {},
}

func (p Percentage) IsValid() bool {
	_, ok := allowedPercentages[p]
	return ok
}

func (p Percentage) Int() int {
	return int(p)
}

func NewPercentage(v int) (Percentage, error) {
	p := Percentage(v)
	if !p.IsValid() {
		return 0, ErrInvalidPercentage
	}
	return p, nil
}

// Status of a recorded payment.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

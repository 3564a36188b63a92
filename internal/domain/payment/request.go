package payment

// Request describes one payment submission against an order. Amount is never
// stored on the request: it is derived from the order total, type, and
// percentage on every read, so a changed selection can never leave a stale
// figure behind.
type Request struct {
	totalOrderAmount int64
	method           Method
	paymentType      Type
	percentage       Percentage
}

func NewRequest(totalOrderAmount int64, method Method, paymentType Type, percentage Percentage) (Request, error) {
	if totalOrderAmount <= 0 {
		return Request{}, ErrInvalidAmount
	}
	if !method.IsValid() {
		return Request{}, ErrInvalidMethod
	}
	if !paymentType.IsValid() {
		return Request{}, ErrInvalidType
	}
	if paymentType == TypeInstallment {
		if percentage == 0 {
			return Request{}, ErrPercentageRequired
		}
		if !percentage.IsValid() {
			return Request{}, ErrInvalidPercentage
		}
	}

	return Request{
		totalOrderAmount: totalOrderAmount,
		method:           method,
		paymentType:      paymentType,
		percentage:       percentage,
	}, nil
}

func (r Request) Method() Method          { return r.method }
func (r Request) Type() Type              { return r.paymentType }
func (r Request) Percentage() Percentage  { return r.percentage }
func (r Request) TotalOrderAmount() int64 { return r.totalOrderAmount }

// ComputedAmount is the payable amount: the full order total, or the
// installment fraction of it. Pure; recomputing with unchanged inputs always
// yields the same value.
func (r Request) ComputedAmount() int64 {
	if r.paymentType == TypeFull {
		return r.totalOrderAmount
	}
	return r.totalOrderAmount * int64(r.percentage) / 100
}

// ValidateGatewayMinimum rejects sub-minimum gateway submissions before any
// network round-trip happens.
func (r Request) ValidateGatewayMinimum(minimum int64) error {
	if r.method != MethodGateway {
		return nil
	}
	if r.ComputedAmount() < minimum {
		return ErrAmountBelowMinimum
	}
	return nil
}

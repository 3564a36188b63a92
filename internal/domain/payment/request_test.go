//go:build unit

package payment_test

import (
	"testing"

	"dealer-portal/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestComputedAmount(t *testing.T) {
	t.Run("full payment is the order total regardless of percentage", func(t *testing.T) {
		req, err := payment.NewRequest(1_000_000, payment.MethodCash, payment.TypeFull, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1_000_000), req.ComputedAmount())
	})

	t.Run("installment is the selected fraction", func(t *testing.T) {
		req, err := payment.NewRequest(1_000_000, payment.MethodCash, payment.TypeInstallment, 30)
		require.NoError(t, err)
		assert.Equal(t, int64(300_000), req.ComputedAmount())
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		req, err := payment.NewRequest(1_000_000, payment.MethodCash, payment.TypeInstallment, 30)
		require.NoError(t, err)
		original := req.ComputedAmount()

		// 30 -> 50 -> back to 30: the derived amount must not drift
		req50, err := payment.NewRequest(1_000_000, payment.MethodCash, payment.TypeInstallment, 50)
		require.NoError(t, err)
		assert.Equal(t, int64(500_000), req50.ComputedAmount())

		back, err := payment.NewRequest(1_000_000, payment.MethodCash, payment.TypeInstallment, 30)
		require.NoError(t, err)
		assert.Equal(t, original, back.ComputedAmount())
		assert.Equal(t, original, req.ComputedAmount())
	})
}

func TestNewRequestValidation(t *testing.T) {
	testCases := []struct {
		name       string
		total      int64
		method     payment.Method
		typ        payment.Type
		percentage payment.Percentage
		errIs      error
	}{
		{name: "valid full cash", total: 2_000_000, method: payment.MethodCash, typ: payment.TypeFull},
		{name: "valid installment gateway", total: 1_000_000, method: payment.MethodGateway, typ: payment.TypeInstallment, percentage: 40},
		{name: "zero total", total: 0, method: payment.MethodCash, typ: payment.TypeFull, errIs: payment.ErrInvalidAmount},
		{name: "negative total", total: -5, method: payment.MethodCash, typ: payment.TypeFull, errIs: payment.ErrInvalidAmount},
		{name: "unknown method", total: 100, method: payment.Method("crypto"), typ: payment.TypeFull, errIs: payment.ErrInvalidMethod},
		{name: "unknown type", total: 100, method: payment.MethodCash, typ: payment.Type("deferred"), errIs: payment.ErrInvalidType},
		{name: "installment without percentage", total: 100, method: payment.MethodCash, typ: payment.TypeInstallment, errIs: payment.ErrPercentageRequired},
		{name: "percentage off the fixed set", total: 100, method: payment.MethodCash, typ: payment.TypeInstallment, percentage: 25, errIs: payment.ErrInvalidPercentage},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := payment.NewRequest(tc.total, tc.method, tc.typ, tc.percentage)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateGatewayMinimum(t *testing.T) {
	t.Run("sub-minimum gateway amount is rejected", func(t *testing.T) {
		// total 25,000 at 20% -> 5,000, below the 10,000 floor
		req, err := payment.NewRequest(25_000, payment.MethodGateway, payment.TypeInstallment, 20)
		require.NoError(t, err)
		assert.ErrorIs(t, req.ValidateGatewayMinimum(10_000), payment.ErrAmountBelowMinimum)
	})

	t.Run("cash payments are exempt", func(t *testing.T) {
		req, err := payment.NewRequest(25_000, payment.MethodCash, payment.TypeInstallment, 20)
		require.NoError(t, err)
		assert.NoError(t, req.ValidateGatewayMinimum(10_000))
	})

	t.Run("amount at the floor passes", func(t *testing.T) {
		req, err := payment.NewRequest(50_000, payment.MethodGateway, payment.TypeInstallment, 20)
		require.NoError(t, err)
		assert.NoError(t, req.ValidateGatewayMinimum(10_000))
	})
}

func TestPercentageSet(t *testing.T) {
	for _, valid := range []int{20, 30, 40, 50, 60, 70, 80, 90} {
		_, err := payment.NewPercentage(valid)
		assert.NoError(t, err, "percentage %d", valid)
	}
	for _, invalid := range []int{0, 10, 15, 25, 95, 100, -20} {
		_, err := payment.NewPercentage(invalid)
		assert.ErrorIs(t, err, payment.ErrInvalidPercentage, "percentage %d", invalid)
	}
}

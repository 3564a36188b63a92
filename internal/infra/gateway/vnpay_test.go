//go:build unit

package gateway_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"dealer-portal/internal/infra/gateway"
	"dealer-portal/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *gateway.VNPayClient {
	return gateway.NewVNPayClient(config.VNPayConfig{
		TmnCode:    "TESTCODE",
		HashSecret: "test-secret",
		PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "https://dealer.example.com/payments/vnpay/return",
	})
}

func TestBuildPayURL(t *testing.T) {
	client := testClient()
	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

	t.Run("encodes the transaction into a signed URL", func(t *testing.T) {
		rawURL, err := client.BuildPayURL(gateway.PayURLParams{
			TxnRef:    "abc123",
			Amount:    300_000,
			OrderInfo: "Thanh toan don hang 42",
			ClientIP:  "203.0.113.7",
			Now:       now,
		})
		require.NoError(t, err)

		parsed, err := url.Parse(rawURL)
		require.NoError(t, err)
		q := parsed.Query()

		assert.Equal(t, "abc123", q.Get("vnp_TxnRef"))
		assert.Equal(t, "30000000", q.Get("vnp_Amount"), "amount must be sent x100")
		assert.Equal(t, "VND", q.Get("vnp_CurrCode"))
		assert.Equal(t, "TESTCODE", q.Get("vnp_TmnCode"))
		assert.Equal(t, "20260302103000", q.Get("vnp_CreateDate"))
		assert.NotEmpty(t, q.Get("vnp_SecureHash"))
		assert.True(t, strings.HasPrefix(rawURL, "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?"))
	})

	t.Run("signed parameters verify as a return", func(t *testing.T) {
		// The return carries the same signing scheme, so a URL we
		// signed ourselves must round-trip through VerifyReturn.
		rawURL, err := client.BuildPayURL(gateway.PayURLParams{
			TxnRef:    "roundtrip1",
			Amount:    1_000_000,
			OrderInfo: "Thanh toan don hang 7",
			ClientIP:  "203.0.113.7",
			Now:       now,
		})
		require.NoError(t, err)

		parsed, err := url.Parse(rawURL)
		require.NoError(t, err)

		result, err := client.VerifyReturn(parsed.Query())
		require.NoError(t, err)
		assert.Equal(t, "roundtrip1", result.TxnRef)
		assert.Equal(t, int64(1_000_000), result.Amount)
	})

	t.Run("rejects an empty transaction reference", func(t *testing.T) {
		_, err := client.BuildPayURL(gateway.PayURLParams{Amount: 100_000, Now: now})
		assert.Error(t, err)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		_, err := client.BuildPayURL(gateway.PayURLParams{TxnRef: "abc", Amount: 0, Now: now})
		assert.Error(t, err)
	})
}

func TestVerifyReturn(t *testing.T) {
	client := testClient()
	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

	signedReturn := func(t *testing.T, mutate func(url.Values)) url.Values {
		t.Helper()
		rawURL, err := client.BuildPayURL(gateway.PayURLParams{
			TxnRef:    "verify1",
			Amount:    500_000,
			OrderInfo: "Thanh toan don hang 9",
			ClientIP:  "203.0.113.7",
			Now:       now,
		})
		require.NoError(t, err)
		parsed, err := url.Parse(rawURL)
		require.NoError(t, err)
		values := parsed.Query()
		if mutate != nil {
			mutate(values)
		}
		return values
	}

	t.Run("missing signature is rejected", func(t *testing.T) {
		values := signedReturn(t, func(v url.Values) { v.Del("vnp_SecureHash") })

		_, err := client.VerifyReturn(values)
		assert.ErrorIs(t, err, gateway.ErrMissingSignature)
	})

	t.Run("tampered amount is rejected", func(t *testing.T) {
		values := signedReturn(t, func(v url.Values) { v.Set("vnp_Amount", "1") })

		_, err := client.VerifyReturn(values)
		assert.ErrorIs(t, err, gateway.ErrBadSignature)
	})

	t.Run("tampered signature is rejected", func(t *testing.T) {
		values := signedReturn(t, func(v url.Values) {
			v.Set("vnp_SecureHash", strings.Repeat("ab", 64))
		})

		_, err := client.VerifyReturn(values)
		assert.ErrorIs(t, err, gateway.ErrBadSignature)
	})

	t.Run("a different secret cannot forge returns", func(t *testing.T) {
		other := gateway.NewVNPayClient(config.VNPayConfig{
			TmnCode:    "TESTCODE",
			HashSecret: "other-secret",
			PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
			ReturnURL:  "https://dealer.example.com/payments/vnpay/return",
		})
		rawURL, err := other.BuildPayURL(gateway.PayURLParams{
			TxnRef:    "forged",
			Amount:    500_000,
			OrderInfo: "Thanh toan don hang 9",
			ClientIP:  "203.0.113.7",
			Now:       now,
		})
		require.NoError(t, err)
		parsed, err := url.Parse(rawURL)
		require.NoError(t, err)

		_, err = client.VerifyReturn(parsed.Query())
		assert.ErrorIs(t, err, gateway.ErrBadSignature)
	})
}

func TestReturnResultSucceeded(t *testing.T) {
	tests := []struct {
		name              string
		responseCode      string
		transactionStatus string
		want              bool
	}{
		{"both success codes", "00", "00", true},
		{"user cancelled", "24", "02", false},
		{"response ok but status failed", "00", "02", false},
		{"status ok but response failed", "24", "00", false},
		{"empty codes", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &gateway.ReturnResult{
				ResponseCode:      tt.responseCode,
				TransactionStatus: tt.transactionStatus,
			}
			assert.Equal(t, tt.want, r.Succeeded())
		})
	}
}

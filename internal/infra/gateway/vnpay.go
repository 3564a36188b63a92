package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"dealer-portal/internal/pkg/config"
	"dealer-portal/internal/pkg/errs"
)

var (
	ErrMissingSignature = errs.New("missing gateway signature")
	ErrBadSignature     = errs.New("gateway signature mismatch")
	ErrMalformedReturn  = errs.New("malformed gateway return parameters")
)

const (
	vnpVersion = "2.1.0"
	vnpCommand = "pay"

	// VNPay signals success only when both codes are "00".
	successCode = "00"

	createDateFormat = "20060102150405"
	sessionLifetime  = 15 * time.Minute
)

// VNPayClient builds signed redirect URLs for the VNPay payment gateway and
// verifies the parameters it sends back. VNPay has no server-to-server
// creation call: the "payment" is the signed URL itself, and the result
// arrives as query parameters on the return redirect.
type VNPayClient struct {
	cfg config.VNPayConfig
}

func NewVNPayClient(cfg config.VNPayConfig) *VNPayClient {
	return &VNPayClient{cfg: cfg}
}

type PayURLParams struct {
	TxnRef    string
	Amount    int64 // VND
	OrderInfo string
	ClientIP  string
	Now       time.Time
}

// BuildPayURL assembles the redirect URL for one transaction. The secure
// hash is HMAC-SHA512 over the URL-encoded parameters in byte-sorted key
// order, per the VNPay integration contract.
func (c *VNPayClient) BuildPayURL(p PayURLParams) (string, error) {
	if p.TxnRef == "" || p.Amount <= 0 {
		return "", ErrMalformedReturn
	}

	loc := p.Now.Location()
	params := map[string]string{
		"vnp_Version":    vnpVersion,
		"vnp_Command":    vnpCommand,
		"vnp_TmnCode":    c.cfg.TmnCode,
		"vnp_Amount":     strconv.FormatInt(p.Amount*100, 10), // VNPay wants amount x100
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     p.TxnRef,
		"vnp_OrderInfo":  p.OrderInfo,
		"vnp_OrderType":  "other",
		"vnp_Locale":     "vn",
		"vnp_ReturnUrl":  c.cfg.ReturnURL,
		"vnp_IpAddr":     p.ClientIP,
		"vnp_CreateDate": p.Now.Format(createDateFormat),
		"vnp_ExpireDate": p.Now.Add(sessionLifetime).In(loc).Format(createDateFormat),
	}

	encoded := encodeSorted(params)
	signature := c.sign(encoded)

	return c.cfg.PayURL + "?" + encoded + "&vnp_SecureHash=" + signature, nil
}

// ReturnResult is the verified outcome of a gateway return redirect.
type ReturnResult struct {
	TxnRef            string
	Amount            int64 // VND
	ResponseCode      string
	TransactionStatus string
	TransactionNo     string
	BankCode          string
}

// Succeeded reports whether the gateway confirmed the payment: both the
// response code and the transaction status must be the success code; any
// other combination is a failure or a user cancellation.
func (r *ReturnResult) Succeeded() bool {
	return r.ResponseCode == successCode && r.TransactionStatus == successCode
}

// VerifyReturn checks the signature on the return query parameters and
// extracts the transaction outcome. Tampered or unsigned returns are
// rejected before any business decision is made from them.
func (c *VNPayClient) VerifyReturn(values url.Values) (*ReturnResult, error) {
	received := values.Get("vnp_SecureHash")
	if received == "" {
		return nil, ErrMissingSignature
	}

	params := make(map[string]string, len(values))
	for key := range values {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		params[key] = values.Get(key)
	}

	expected := c.sign(encodeSorted(params))
	if !hmac.Equal([]byte(strings.ToLower(received)), []byte(expected)) {
		return nil, ErrBadSignature
	}

	rawAmount := values.Get("vnp_Amount")
	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedReturn)
	}

	return &ReturnResult{
		TxnRef:            values.Get("vnp_TxnRef"),
		Amount:            amount / 100,
		ResponseCode:      values.Get("vnp_ResponseCode"),
		TransactionStatus: values.Get("vnp_TransactionStatus"),
		TransactionNo:     values.Get("vnp_TransactionNo"),
		BankCode:          values.Get("vnp_BankCode"),
	}, nil
}

func (c *VNPayClient) sign(data string) string {
	mac := hmac.New(sha512.New, []byte(c.cfg.HashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// encodeSorted produces the canonical hash payload: keys in byte order,
// values query-escaped, joined with '&'. This is also a valid query string,
// so the same encoding serves both signing and the redirect URL.
func encodeSorted(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}

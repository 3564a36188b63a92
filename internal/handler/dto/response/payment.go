package response

import (
	"dealer-portal/internal/usecase/commands"
)

type CashPaymentResponse struct {
	PaymentID           string   `json:"payment_id"`
	DebtID              *string  `json:"debt_id,omitempty"`
	Amount              int64    `json:"amount"`
	OrderStatus         string   `json:"order_status"`
	NeedsReconciliation bool     `json:"needs_reconciliation,omitempty"`
	Warnings            []string `json:"warnings,omitempty"`
}

func FromCashPaymentResult(r *commands.CashPaymentResult) *CashPaymentResponse {
	resp := &CashPaymentResponse{
		PaymentID:           r.PaymentID.String(),
		Amount:              r.Amount,
		OrderStatus:         r.OrderStatus.String(),
		NeedsReconciliation: r.NeedsReconciliation,
		Warnings:            r.Warnings,
	}
	if r.DebtID != nil {
		id := r.DebtID.String()
		resp.DebtID = &id
	}
	return resp
}

type GatewayRedirectResponse struct {
	PaymentID string `json:"payment_id"`
	PayURL    string `json:"pay_url"`
	Amount    int64  `json:"amount"`
}

func FromGatewayRedirect(r *commands.GatewayRedirect) *GatewayRedirectResponse {
	return &GatewayRedirectResponse{
		PaymentID: r.PaymentID.String(),
		PayURL:    r.PayURL,
		Amount:    r.Amount,
	}
}

type GatewayReturnResponse struct {
	Handled             bool     `json:"handled"`
	Succeeded           bool     `json:"succeeded"`
	OrderID             string   `json:"order_id,omitempty"`
	PaymentID           string   `json:"payment_id,omitempty"`
	Amount              int64    `json:"amount,omitempty"`
	ResponseCode        string   `json:"response_code,omitempty"`
	RedirectPath        string   `json:"redirect_path"`
	NeedsReconciliation bool     `json:"needs_reconciliation,omitempty"`
	Warnings            []string `json:"warnings,omitempty"`
}

func FromGatewayReturnResult(r *commands.GatewayReturnResult) *GatewayReturnResponse {
	resp := &GatewayReturnResponse{
		Handled:             r.Handled,
		Succeeded:           r.Succeeded,
		Amount:              r.Amount,
		ResponseCode:        r.ResponseCode,
		RedirectPath:        r.RedirectPath,
		NeedsReconciliation: r.NeedsReconciliation,
		Warnings:            r.Warnings,
	}
	if r.Handled {
		resp.OrderID = r.OrderID.String()
		resp.PaymentID = r.PaymentID.String()
	}
	return resp
}

package gateway

import (
	"net/url"

	"dealer-portal/internal/pkg/clock"
	"dealer-portal/internal/usecase/commands"
)

// CommandAdapter exposes the VNPay client through the command-side gateway
// port, stamping the request with the injected clock.
type CommandAdapter struct {
	client *VNPayClient
	clk    clock.Clock
}

func NewCommandAdapter(client *VNPayClient, clk clock.Clock) *CommandAdapter {
	return &CommandAdapter{client: client, clk: clk}
}

func (a *CommandAdapter) BuildPayURL(p commands.GatewayRedirectOrder) (string, error) {
	return a.client.BuildPayURL(PayURLParams{
		TxnRef:    p.TxnRef,
		Amount:    p.Amount,
		OrderInfo: p.OrderInfo,
		ClientIP:  p.ClientIP,
		Now:       a.clk.Now(),
	})
}

func (a *CommandAdapter) VerifyReturn(values url.Values) (*commands.GatewayReturnOutcome, error) {
	result, err := a.client.VerifyReturn(values)
	if err != nil {
		return nil, err
	}
	return &commands.GatewayReturnOutcome{
		TxnRef:       result.TxnRef,
		Amount:       result.Amount,
		Succeeded:    result.Succeeded(),
		ResponseCode: result.ResponseCode,
	}, nil
}

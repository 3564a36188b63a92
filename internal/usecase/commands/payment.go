package commands

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"dealer-portal/internal/domain/order"
	"dealer-portal/internal/domain/payment"
	"dealer-portal/internal/infra"
	"dealer-portal/internal/pkg/clock"
	"dealer-portal/internal/pkg/config"
	"dealer-portal/internal/pkg/errs"
	"dealer-portal/internal/usecase/queries"
	"dealer-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound         = errs.New("order not found")
	ErrOrderNotPayable       = errs.New("order does not accept payments")
	ErrOrderAccessDenied     = errs.New("order belongs to another dealer")
	ErrInvalidPaymentRequest = errs.New("invalid payment request")
	ErrPaymentCreationFailed = errs.New("failed to record payment")
	ErrGatewayRedirectFailed = errs.New("failed to build gateway redirect")
	ErrSessionPersistFailed  = errs.New("failed to persist gateway session")
	ErrSessionLookupFailed   = errs.New("failed to read gateway session")
	ErrAmountBelowMinimum    = errs.New("payment amount below gateway minimum")
)

type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (uuid.UUID, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

type DebtRepository interface {
	CreateFromPayment(ctx context.Context, paymentID uuid.UUID) (uuid.UUID, error)
}

// GatewayRedirectOrder carries everything the gateway needs to build one
// signed redirect URL.
type GatewayRedirectOrder struct {
	TxnRef    string
	Amount    int64
	OrderInfo string
	ClientIP  string
}

// GatewayReturnOutcome is the verified result extracted from the return
// redirect's query parameters.
type GatewayReturnOutcome struct {
	TxnRef       string
	Amount       int64
	Succeeded    bool
	ResponseCode string
}

type PaymentGateway interface {
	BuildPayURL(p GatewayRedirectOrder) (string, error)
	VerifyReturn(values url.Values) (*GatewayReturnOutcome, error)
}

// GatewaySessionStore holds at most one pending gateway session per user.
// Consume returns the stored session and deletes it in the same operation;
// a second Consume for the same user sees nothing.
type GatewaySessionStore interface {
	Put(ctx context.Context, userID uuid.UUID, s *payment.PendingGatewaySession) error
	Consume(ctx context.Context, userID uuid.UUID) (*payment.PendingGatewaySession, error)
}

type PayParams struct {
	OrderID     uuid.UUID
	PaymentType payment.Type
	Percentage  payment.Percentage
	ClientIP    string
}

// CashPaymentResult reports a completed cash payment. Warnings carry
// post-payment step failures: the payment itself committed, but a follow-up
// write (order status, debt) did not and needs manual reconciliation.
type CashPaymentResult struct {
	PaymentID           uuid.UUID
	DebtID              *uuid.UUID
	Amount              int64
	OrderStatus         order.Status
	NeedsReconciliation bool
	Warnings            []string
}

// GatewayRedirect is the outcome of initiating a gateway payment: the
// browser should navigate to PayURL.
type GatewayRedirect struct {
	PaymentID uuid.UUID
	PayURL    string
	Amount    int64
}

// GatewayReturnResult is what the return handler renders. Handled is false
// when no pending session existed for the user, in which case nothing was
// processed and the browser is simply sent back to the orders page.
type GatewayReturnResult struct {
	Handled             bool
	Succeeded           bool
	OrderID             uuid.UUID
	PaymentID           uuid.UUID
	Amount              int64
	ResponseCode        string
	RedirectPath        string
	NeedsReconciliation bool
	Warnings            []string
}

type PaymentCommands interface {
	PayCash(ctx context.Context, actor shared.Actor, p PayParams) (*CashPaymentResult, error)
	InitiateGatewayPayment(ctx context.Context, actor shared.Actor, p PayParams) (*GatewayRedirect, error)
	HandleGatewayReturn(ctx context.Context, actor shared.Actor, values url.Values) (*GatewayReturnResult, error)
}

type paymentInteractor struct {
	orders   OrderRepository
	payments PaymentRepository
	debts    DebtRepository
	gateway  PaymentGateway
	sessions GatewaySessionStore
	clk      clock.Clock
	cfg      config.PaymentConfig
}

func NewPaymentCommands(
	orders OrderRepository,
	payments PaymentRepository,
	debts DebtRepository,
	gateway PaymentGateway,
	sessions GatewaySessionStore,
	clk clock.Clock,
	cfg config.PaymentConfig,
) PaymentCommands {
	return &paymentInteractor{
		orders:   orders,
		payments: payments,
		debts:    debts,
		gateway:  gateway,
		sessions: sessions,
		clk:      clk,
		cfg:      cfg,
	}
}

// PayCash records a cash payment against the order, moves the order to PAID
// or PARTIAL, and for installment payments taken by customer-facing staff
// creates a debt for the remaining balance. Each step runs only if the
// previous one succeeded; once the payment row exists, later failures are
// reported as warnings instead of rolling it back.
func (i *paymentInteractor) PayCash(ctx context.Context, actor shared.Actor, p PayParams) (*CashPaymentResult, error) {
	ord, req, err := i.loadPayableOrder(ctx, actor, p, payment.MethodCash)
	if err != nil {
		return nil, err
	}

	pay := payment.NewPayment(ord.ID, req, "")
	paymentID, err := i.payments.Create(ctx, pay)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentCreationFailed)
	}

	result := &CashPaymentResult{
		PaymentID:   paymentID,
		Amount:      pay.Amount(),
		OrderStatus: settledStatus(req.Type()),
	}

	if err := i.orders.UpdateStatus(ctx, ord.ID, result.OrderStatus); err != nil {
		result.NeedsReconciliation = true
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("payment %s recorded but order status update failed: %v", paymentID, err))
		return result, nil
	}

	if debtDue(req.Type(), actor) {
		debtID, err := i.debts.CreateFromPayment(ctx, paymentID)
		if err != nil {
			result.NeedsReconciliation = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("payment %s recorded but debt creation failed: %v", paymentID, err))
			return result, nil
		}
		result.DebtID = &debtID
	}

	return result, nil
}

// InitiateGatewayPayment validates the amount locally, records a pending
// payment, builds the signed redirect URL, and writes the session the return
// handler will consume. The session write is the last step: if anything
// before it fails, no session exists and a stray return is a no-op.
func (i *paymentInteractor) InitiateGatewayPayment(ctx context.Context, actor shared.Actor, p PayParams) (*GatewayRedirect, error) {
	ord, req, err := i.loadPayableOrder(ctx, actor, p, payment.MethodGateway)
	if err != nil {
		return nil, err
	}

	if err := req.ValidateGatewayMinimum(i.cfg.MinGatewayAmount); err != nil {
		return nil, errs.Mark(err, ErrAmountBelowMinimum)
	}

	txnRef := newTxnRef()
	pay := payment.NewPayment(ord.ID, req, txnRef)
	paymentID, err := i.payments.Create(ctx, pay)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentCreationFailed)
	}

	payURL, err := i.gateway.BuildPayURL(GatewayRedirectOrder{
		TxnRef:    txnRef,
		Amount:    pay.Amount(),
		OrderInfo: fmt.Sprintf("Thanh toan don hang %s", ord.ID),
		ClientIP:  p.ClientIP,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayRedirectFailed)
	}

	session := &payment.PendingGatewaySession{
		OrderID:        ord.ID,
		PaymentID:      paymentID,
		TxnRef:         txnRef,
		PaymentType:    req.Type(),
		Percentage:     req.Percentage(),
		InitiatingRole: actor.Role,
		CreatedAt:      i.clk.Now(),
	}
	if err := i.sessions.Put(ctx, actor.UserID, session); err != nil {
		return nil, errs.Mark(err, ErrSessionPersistFailed)
	}

	return &GatewayRedirect{
		PaymentID: paymentID,
		PayURL:    payURL,
		Amount:    pay.Amount(),
	}, nil
}

// HandleGatewayReturn consumes the pending session before doing anything
// else, so the same return can never be processed twice. Without a session
// the return is not ours to handle and the browser goes straight back to the
// orders page.
func (i *paymentInteractor) HandleGatewayReturn(ctx context.Context, actor shared.Actor, values url.Values) (*GatewayReturnResult, error) {
	session, err := i.sessions.Consume(ctx, actor.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionLookupFailed)
	}
	if session == nil {
		return &GatewayReturnResult{
			Handled:      false,
			RedirectPath: shared.DefaultOrdersPath(actor.Role),
		}, nil
	}

	result := &GatewayReturnResult{
		Handled:      true,
		OrderID:      session.OrderID,
		PaymentID:    session.PaymentID,
		RedirectPath: shared.DefaultOrdersPath(session.InitiatingRole),
	}

	outcome, err := i.gateway.VerifyReturn(values)
	if err != nil || outcome.TxnRef != session.TxnRef || !outcome.Succeeded {
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("gateway return rejected: %v", err))
		} else {
			result.ResponseCode = outcome.ResponseCode
		}
		if markErr := i.payments.MarkFailed(ctx, session.PaymentID); markErr != nil && !infra.IsKind(markErr, infra.KindNotFound) {
			result.NeedsReconciliation = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("failed to mark payment %s as failed: %v", session.PaymentID, markErr))
		}
		return result, nil
	}

	result.Succeeded = true
	result.Amount = outcome.Amount
	result.ResponseCode = outcome.ResponseCode

	if err := i.payments.MarkCompleted(ctx, session.PaymentID); err != nil {
		result.NeedsReconciliation = true
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("gateway confirmed payment %s but completion update failed: %v", session.PaymentID, err))
		return result, nil
	}

	if err := i.orders.UpdateStatus(ctx, session.OrderID, settledStatus(session.PaymentType)); err != nil {
		result.NeedsReconciliation = true
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("payment %s completed but order status update failed: %v", session.PaymentID, err))
		return result, nil
	}

	if session.PaymentType == payment.TypeInstallment && session.InitiatingRole.IsCustomerFacing() {
		if _, err := i.debts.CreateFromPayment(ctx, session.PaymentID); err != nil {
			result.NeedsReconciliation = true
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("payment %s completed but debt creation failed: %v", session.PaymentID, err))
		}
	}

	return result, nil
}

func (i *paymentInteractor) loadPayableOrder(
	ctx context.Context,
	actor shared.Actor,
	p PayParams,
	method payment.Method,
) (*queries.OrderView, payment.Request, error) {
	ord, err := i.orders.FindByID(ctx, p.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, payment.Request{}, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, payment.Request{}, errs.Wrap(err, "failed to load order")
	}
	if !actor.CanAccessDealer(ord.DealerID) {
		return nil, payment.Request{}, ErrOrderAccessDenied
	}
	if !order.Status(ord.Status).Payable() {
		return nil, payment.Request{}, ErrOrderNotPayable
	}

	req, err := payment.NewRequest(ord.TotalAmount, method, p.PaymentType, p.Percentage)
	if err != nil {
		return nil, payment.Request{}, errs.Mark(err, ErrInvalidPaymentRequest)
	}
	return ord, req, nil
}

func settledStatus(t payment.Type) order.Status {
	if t == payment.TypeFull {
		return order.StatusPaid
	}
	return order.StatusPartial
}

func debtDue(t payment.Type, actor shared.Actor) bool {
	return t == payment.TypeInstallment && actor.Role.IsCustomerFacing()
}

// VNPay caps vnp_TxnRef at 34 characters, so the bare UUID string (36) does
// not fit. The dashless form does.
func newTxnRef() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

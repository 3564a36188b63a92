//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"dealer-portal/internal/handler/api"
	"dealer-portal/internal/pkg/errs"
	"dealer-portal/internal/usecase/commands"
	"dealer-portal/internal/usecase/shared"
	"dealer-portal/tests/common/builder"
	"dealer-portal/tests/common/httptest"
	"dealer-portal/tests/common/testutil"
	commandsmock "dealer-portal/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler
	actor        shared.Actor
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)

	dealerID := uuid.New()
	s.actor = builder.NewUserBuilder().WithDealerID(&dealerID).BuildActor()

	// simulate the auth middleware having resolved the actor
	withActor := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("actor", s.actor)
			next(c)
		}
	}
	s.router.POST("/payments/cash", withActor(s.handler.PayCash))
	s.router.POST("/payments/vnpay", withActor(s.handler.InitiateGatewayPayment))
	s.router.GET("/payments/vnpay/return", withActor(s.handler.HandleGatewayReturn))
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func payBody(orderID uuid.UUID) map[string]any {
	return map[string]any{
		"order_id":     orderID.String(),
		"payment_type": "full",
	}
}

func (s *PaymentHandlerTestSuite) TestPayCash() {
	url := "/payments/cash"
	orderID := uuid.New()

	s.Run("created on success", func() {
		s.mockCommands.EXPECT().
			PayCash(gomock.Any(), s.actor, gomock.Any()).
			Return(&commands.CashPaymentResult{PaymentID: uuid.New(), Amount: 1_000_000}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payBody(orderID), "")
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("installment body carries the percentage through", func() {
		body := map[string]any{
			"order_id":     orderID.String(),
			"payment_type": "installment",
			"percentage":   30,
		}
		s.mockCommands.EXPECT().
			PayCash(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Actor, p commands.PayParams) (*commands.CashPaymentResult, error) {
				s.Equal(30, int(p.Percentage))
				return &commands.CashPaymentResult{PaymentID: uuid.New()}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, w.Code)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"unknown order", errs.Mark(errs.New("no rows in result set"), commands.ErrOrderNotFound), http.StatusNotFound},
		{"foreign dealer", commands.ErrOrderAccessDenied, http.StatusForbidden},
		{"already settled", commands.ErrOrderNotPayable, http.StatusConflict},
		{"bad percentage", errs.Mark(errs.New("percentage 35 not allowed"), commands.ErrInvalidPaymentRequest), http.StatusUnprocessableEntity},
	}
	for _, tc := range errorCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().
				PayCash(gomock.Any(), s.actor, gomock.Any()).
				Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payBody(orderID), "")
			s.Equal(tc.expectCode, w.Code)
		})
	}

	s.Run("malformed body is rejected before the usecase", func() {
		body := payBody(orderID)
		testutil.Field("order_id", "not-a-uuid")(body)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown payment type is rejected before the usecase", func() {
		body := payBody(orderID)
		testutil.Field("payment_type", "barter")(body)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *PaymentHandlerTestSuite) TestInitiateGatewayPayment() {
	url := "/payments/vnpay"
	orderID := uuid.New()

	s.Run("returns the redirect URL", func() {
		s.mockCommands.EXPECT().
			InitiateGatewayPayment(gomock.Any(), s.actor, gomock.Any()).
			Return(&commands.GatewayRedirect{
				PaymentID: uuid.New(),
				PayURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_TxnRef=abc",
				Amount:    500_000,
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payBody(orderID), "")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "vnp_TxnRef=abc")
	})

	s.Run("sub-minimum amount maps to 422", func() {
		s.mockCommands.EXPECT().
			InitiateGatewayPayment(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, errs.Mark(errs.New("amount 5000 below gateway minimum"), commands.ErrAmountBelowMinimum))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payBody(orderID), "")
		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("gateway failure maps to 502", func() {
		s.mockCommands.EXPECT().
			InitiateGatewayPayment(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, commands.ErrGatewayRedirectFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payBody(orderID), "")
		s.Equal(http.StatusBadGateway, w.Code)
	})
}

func (s *PaymentHandlerTestSuite) TestHandleGatewayReturn() {
	url := "/payments/vnpay/return?vnp_TxnRef=abc&vnp_ResponseCode=00"

	s.Run("renders the processed outcome", func() {
		s.mockCommands.EXPECT().
			HandleGatewayReturn(gomock.Any(), s.actor, gomock.Any()).
			Return(&commands.GatewayReturnResult{
				Handled:      true,
				Succeeded:    true,
				OrderID:      uuid.New(),
				PaymentID:    uuid.New(),
				RedirectPath: "/dealer/orders",
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"handled":true`)
		s.Contains(w.Body.String(), "/dealer/orders")
	})

	s.Run("no pending session still redirects cleanly", func() {
		s.mockCommands.EXPECT().
			HandleGatewayReturn(gomock.Any(), s.actor, gomock.Any()).
			Return(&commands.GatewayReturnResult{
				Handled:      false,
				RedirectPath: "/dealer/orders",
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"handled":false`)
	})
}

package api

import (
	"errors"
	"net/http"

	reqdto "dealer-portal/internal/handler/dto/request"
	resdto "dealer-portal/internal/handler/dto/response"
	"dealer-portal/internal/handler/middleware"
	"dealer-portal/internal/usecase/commands"
	"dealer-portal/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{paymentCommands: paymentCommands}
}

// @Summary Pay cash
// @Description Record a cash payment against an order
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PayRequest true "Payment request"
// @Success 201 {object} resdto.CashPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/cash [post]
func (h *PaymentHandler) PayCash(c *gin.Context) {
	actor, params, ok := h.bindPayRequest(c)
	if !ok {
		return
	}

	result, err := h.paymentCommands.PayCash(c.Request.Context(), actor, params)
	if err != nil {
		h.renderPaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCashPaymentResult(result))
}

// @Summary Initiate gateway payment
// @Description Build a signed VNPay redirect URL and persist the pending session
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PayRequest true "Payment request"
// @Success 200 {object} resdto.GatewayRedirectResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments/vnpay [post]
func (h *PaymentHandler) InitiateGatewayPayment(c *gin.Context) {
	actor, params, ok := h.bindPayRequest(c)
	if !ok {
		return
	}

	result, err := h.paymentCommands.InitiateGatewayPayment(c.Request.Context(), actor, params)
	if err != nil {
		h.renderPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGatewayRedirect(result))
}

// @Summary Handle gateway return
// @Description Process the VNPay return redirect; consumes the pending session exactly once
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.GatewayReturnResponse
// @Failure 401 {object} map[string]string
// @Router /payments/vnpay/return [get]
func (h *PaymentHandler) HandleGatewayReturn(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.paymentCommands.HandleGatewayReturn(c.Request.Context(), actor, c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGatewayReturnResult(result))
}

func (h *PaymentHandler) bindPayRequest(c *gin.Context) (actor shared.Actor, params commands.PayParams, ok bool) {
	actorValue, exists := middleware.GetActor(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return actorValue, params, false
	}

	var req reqdto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return actorValue, params, false
	}

	params, err := req.ToParams(c.ClientIP())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment type",
		})
		return actorValue, params, false
	}

	return actorValue, params, true
}

func (h *PaymentHandler) renderPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, commands.ErrOrderAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Order belongs to another dealer",
		})
	case errors.Is(err, commands.ErrOrderNotPayable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order does not accept payments",
		})
	case errors.Is(err, commands.ErrInvalidPaymentRequest):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid payment request",
		})
	case errors.Is(err, commands.ErrAmountBelowMinimum):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Payment amount below gateway minimum",
		})
	case errors.Is(err, commands.ErrGatewayRedirectFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment gateway unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

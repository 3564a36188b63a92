package api

import (
	"errors"
	"net/http"

	resdto "dealer-portal/internal/handler/dto/response"
	"dealer-portal/internal/handler/middleware"
	"dealer-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderQueries   queries.OrderQueries
	paymentQueries queries.PaymentQueries
}

func NewOrderHandler(orderQueries queries.OrderQueries, paymentQueries queries.PaymentQueries) *OrderHandler {
	return &OrderHandler{
		orderQueries:   orderQueries,
		paymentQueries: paymentQueries,
	}
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, queries.ErrOrderAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Order belongs to another dealer",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromOrderView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List orders
// @Description List orders for a dealer
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param dealer_id query string false "Dealer scope; required for manufacturer-side roles"
// @Success 200 {array} resdto.OrderListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	dealerID, err := optionalUUIDQuery(c, "dealer_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid dealer ID format",
		})
		return
	}

	items, err := h.orderQueries.ListForDealer(c.Request.Context(), actor, dealerID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDealerScopeRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Dealer ID required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromOrderList(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List order payments
// @Description Payment history of an order, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {array} queries.PaymentView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/payments [get]
func (h *OrderHandler) ListPayments(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	items, err := h.paymentQueries.ListForOrder(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, queries.ErrOrderAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Order belongs to another dealer",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if items == nil {
		items = []*queries.PaymentView{}
	}
	c.JSON(http.StatusOK, items)
}

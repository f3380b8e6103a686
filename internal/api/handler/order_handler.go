package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

const orderProcessedMessage = "Order processed successfully"

// OrderHandler handles order submission.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /orders. It answers 200 whether or not stock changed.
// Quantities must be JSON numbers; "3" is a 400.
//
// @Summary      Submit an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Payment method and cart"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	receipt, err := h.service.Apply(c.Request().Context(), toOrder(req))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, orderResponse{
		Message:      orderProcessedMessage,
		StockUpdated: receipt.StockUpdated,
	})
}

func toOrder(req orderRequest) domain.Order {
	order := domain.Order{
		PaymentMethod: req.PaymentMethod,
		Cart:          make([]domain.CartLine, 0, len(req.Cart)),
	}
	for _, line := range req.Cart {
		order.Cart = append(order.Cart, domain.CartLine{ProductID: line.ID, Quantity: line.Quantity})
	}
	return order
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spudhouse/internal/middleware"
	"spudhouse/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	svc service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Place godoc
// @Summary Place an order from the current cart
// @Tags orders
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	order, err := h.svc.Place(c.Request().Context(), sess.UserID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Order placed successfully",
		"orderId":   order.ID,
		"reference": order.Reference,
		"total":     order.TotalAmount,
	})
}

// List godoc
// @Summary List the current user's orders, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	orders, err := h.svc.List(c.Request().Context(), sess.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Last godoc
// @Summary Get the current user's most recent order, or null
// @Tags orders
// @Produce json
// @Success 200 {object} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders/last [get]
func (h *OrderHandler) Last(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	order, err := h.svc.Last(c.Request().Context(), sess.UserID)
	if err != nil {
		return fail(c, err)
	}
	// JSON null when the user has never ordered
	return c.JSON(http.StatusOK, order)
}

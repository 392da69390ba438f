package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spudhouse/internal/middleware"
	"spudhouse/internal/service"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	svc service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// AddToCartRequest represents an add-to-cart request. The client may send a
// price; it is ignored since the server-side menu is the only price source.
type AddToCartRequest struct {
	ItemName string `json:"item_name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required"`
}

// UpdateQuantityRequest represents a quantity change for a cart row.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// Add godoc
// @Summary Add an item to the cart (quantities accumulate)
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AddToCartRequest true "Item and quantity"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFrom(c)
	if err := h.svc.Add(c.Request().Context(), sess.UserID, req.ItemName, req.Quantity); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Item added to cart",
	})
}

// List godoc
// @Summary List the current user's cart
// @Tags cart
// @Produce json
// @Success 200 {array} model.CartItem
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) List(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	items, err := h.svc.Get(c.Request().Context(), sess.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateQuantity godoc
// @Summary Set the quantity of a cart row
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/{id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFrom(c)
	if err := h.svc.UpdateQuantity(c.Request().Context(), sess.UserID, id, req.Quantity); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Quantity updated",
	})
}

// Remove godoc
// @Summary Remove a row from the cart
// @Tags cart
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	sess := middleware.SessionFrom(c)
	if err := h.svc.Remove(c.Request().Context(), sess.UserID, id); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Item removed from cart",
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spudhouse/internal/menu"
)

// MenuHandler serves the fixed menu.
type MenuHandler struct{}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// List godoc
// @Summary List the menu with server-side prices
// @Tags menu
// @Produce json
// @Success 200 {array} menu.Item
// @Router /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, menu.Items())
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spudhouse/internal/middleware"
	"spudhouse/internal/service"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	svc service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// CreateReviewRequest represents a new product review.
type CreateReviewRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	Rating      int    `json:"rating" validate:"required"`
	Comment     string `json:"comment" validate:"max=1000"`
}

// Create godoc
// @Summary Post a review for a menu item
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body CreateReviewRequest true "Review"
// @Success 201 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFrom(c)
	review, err := h.svc.Create(c.Request().Context(), sess.UserID, sess.Username, req.ProductName, req.Rating, req.Comment)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

// ListByProduct godoc
// @Summary List reviews for a menu item, newest first
// @Tags reviews
// @Produce json
// @Param productName path string true "Menu item name"
// @Success 200 {array} model.Review
// @Router /reviews/{productName} [get]
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	reviews, err := h.svc.ListByProduct(c.Request().Context(), c.Param("productName"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// Average godoc
// @Summary Get the average rating and review count for a menu item
// @Tags reviews
// @Produce json
// @Param productName path string true "Menu item name"
// @Success 200 {object} map[string]interface{}
// @Router /reviews/{productName}/average [get]
func (h *ReviewHandler) Average(c echo.Context) error {
	avg, count, err := h.svc.AverageByProduct(c.Request().Context(), c.Param("productName"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"product_name": c.Param("productName"),
		"average":      avg,
		"count":        count,
	})
}

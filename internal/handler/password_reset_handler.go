package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spudhouse/internal/service"
)

// PasswordResetHandler handles the forgot/verify/reset flow. All three
// endpoints are pre-authentication and rate-limited.
type PasswordResetHandler struct {
	svc service.PasswordResetService
}

// NewPasswordResetHandler creates a new password reset handler.
func NewPasswordResetHandler(svc service.PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{svc: svc}
}

// ForgotPasswordRequest represents a reset-code request.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyResetCodeRequest represents an explicit code check.
type VerifyResetCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// ResetPasswordRequest represents the final password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required"`
}

// forgotMessage is returned whether or not the email exists.
const forgotMessage = "If that email exists, a reset code has been sent"

// Forgot godoc
// @Summary Request a password reset code
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /forgot-password [post]
func (h *PasswordResetHandler) Forgot(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	devCode, err := h.svc.Forgot(c.Request().Context(), req.Email)
	if err != nil {
		return fail(c, err)
	}

	resp := map[string]string{"message": forgotMessage}
	if devCode != "" {
		resp["devCode"] = devCode
	}
	return c.JSON(http.StatusOK, resp)
}

// Verify godoc
// @Summary Check a reset code without consuming it
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body VerifyResetCodeRequest true "Email and code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /verify-reset-code [post]
func (h *PasswordResetHandler) Verify(c echo.Context) error {
	var req VerifyResetCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.VerifyCode(c.Request().Context(), req.Email, req.Code); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Code verified",
	})
}

// Reset godoc
// @Summary Reset the password with a valid code (single-use)
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email, code, and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /reset-password [post]
func (h *PasswordResetHandler) Reset(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Reset(c.Request().Context(), req.Email, req.Code, req.NewPassword); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Password reset successfully",
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spudhouse/internal/middleware"
	"spudhouse/internal/service"
	"spudhouse/internal/session"
)

// AuthHandler handles registration, login, logout, and the CSRF token
// endpoint.
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Store
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents a password change for a logged-in user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	sess, err := h.sessions.Create(c.Request().Context(), user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return fail(c, err)
	}
	c.SetCookie(session.Cookie(sess.ID, int(session.TTL.Seconds())))

	return c.JSON(http.StatusOK, map[string]string{
		"message":  "Login successful",
		"username": user.Username,
	})
}

// Logout godoc
// @Summary Destroy the current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			c.Logger().Errorf("destroy session: %v", err)
		}
	}
	c.SetCookie(session.Cookie("", -1))

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logout successful",
	})
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFrom(c)
	if err := h.authService.ChangePassword(c.Request().Context(), sess.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Password changed successfully",
	})
}

// CSRFToken godoc
// @Summary Get the session's CSRF token, issuing one if absent
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /csrf-token [get]
func (h *AuthHandler) CSRFToken(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	token, err := h.sessions.EnsureCSRFToken(c.Request().Context(), sess)
	if err != nil {
		return fail(c, err)
	}
	// camelCase key: the browser scripts read data.csrfToken.
	return c.JSON(http.StatusOK, map[string]string{
		"csrfToken": token,
	})
}

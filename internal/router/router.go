package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"spudhouse/internal/config"
	"spudhouse/internal/handler"
	"spudhouse/internal/middleware"
	"spudhouse/internal/ratelimit"
	"spudhouse/internal/session"
)

// Limiters holds the per-route rate limiters. Registration, login, and the
// reset flow each get their own budget.
type Limiters struct {
	Register ratelimit.Limiter
	Login    ratelimit.Limiter
	Reset    ratelimit.Limiter
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions *session.Store,
	limiters Limiters,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	reviewHandler *handler.ReviewHandler,
	resetHandler *handler.PasswordResetHandler,
	menuHandler *handler.MenuHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Debug = cfg.Dev()

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	loadSession := middleware.LoadSession(sessions)
	pageHandler.Register(e, loadSession)

	api := e.Group("/api", loadSession)

	api.GET("/menu", menuHandler.List)
	api.GET("/reviews/:productName", reviewHandler.ListByProduct)
	api.GET("/reviews/:productName/average", reviewHandler.Average)

	// Pre-authentication routes. No session exists yet, so no CSRF check;
	// each is rate-limited instead.
	api.POST("/register", authHandler.Register, middleware.RateLimit(limiters.Register))
	api.POST("/login", authHandler.Login, middleware.RateLimit(limiters.Login))
	api.POST("/forgot-password", resetHandler.Forgot, middleware.RateLimit(limiters.Reset))
	api.POST("/verify-reset-code", resetHandler.Verify, middleware.RateLimit(limiters.Reset))
	api.POST("/reset-password", resetHandler.Reset, middleware.RateLimit(limiters.Reset))

	// Logout is idempotent: it destroys whatever session the cookie names and
	// returns 200 either way, so it sits outside the auth and CSRF gates.
	api.POST("/logout", authHandler.Logout)

	// Everything below requires a session; mutating requests must also echo
	// the session's CSRF token.
	authed := api.Group("", middleware.RequireUser(), middleware.CSRF())

	authed.GET("/user", userHandler.Me)
	authed.GET("/csrf-token", authHandler.CSRFToken)
	authed.POST("/change-password", authHandler.ChangePassword)

	authed.POST("/cart", cartHandler.Add)
	authed.GET("/cart", cartHandler.List)
	authed.PUT("/cart/:id", cartHandler.UpdateQuantity)
	authed.DELETE("/cart/:id", cartHandler.Remove)

	authed.POST("/orders", orderHandler.Place)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/last", orderHandler.Last)

	authed.POST("/reviews", reviewHandler.Create)

	admin := authed.Group("/users", middleware.RequireAdmin())
	admin.GET("", userHandler.List)
	admin.GET("/:id", userHandler.Get)
	admin.PUT("/:id", userHandler.Update)
	admin.DELETE("/:id", userHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

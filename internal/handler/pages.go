package handler

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"spudhouse/internal/middleware"
)

// PageHandler serves the static HTML pages. Dashboard, admin, and cart pages
// redirect to the login page when no session is present; the API behind them
// enforces the real auth checks.
type PageHandler struct {
	publicDir string
}

// NewPageHandler creates a new page handler serving files from publicDir.
func NewPageHandler(publicDir string) *PageHandler {
	return &PageHandler{publicDir: publicDir}
}

func (h *PageHandler) page(name string) echo.HandlerFunc {
	path := filepath.Join(h.publicDir, name)
	return func(c echo.Context) error {
		return c.File(path)
	}
}

func (h *PageHandler) gatedPage(name string) echo.HandlerFunc {
	path := filepath.Join(h.publicDir, name)
	return func(c echo.Context) error {
		if middleware.SessionFrom(c) == nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		return c.File(path)
	}
}

// Register wires the page routes.
func (h *PageHandler) Register(e *echo.Echo, loadSession echo.MiddlewareFunc) {
	e.GET("/", h.page("index.html"))
	e.GET("/menu", h.page("menu.html"))
	e.GET("/fun-facts", h.page("fun-facts.html"))
	e.GET("/register", h.page("register.html"))
	e.GET("/login", h.page("login.html"))
	e.GET("/admin", h.page("admin.html"))

	e.GET("/dashboard", h.gatedPage("dashboard.html"), loadSession)
	e.GET("/cart", h.gatedPage("cart.html"), loadSession)

	e.Static("/static", h.publicDir)
}

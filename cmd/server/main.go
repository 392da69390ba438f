package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "spudhouse/docs" // swagger docs

	"spudhouse/internal/cache"
	"spudhouse/internal/config"
	"spudhouse/internal/db"
	"spudhouse/internal/handler"
	"spudhouse/internal/mailer"
	"spudhouse/internal/model"
	"spudhouse/internal/ratelimit"
	"spudhouse/internal/repository"
	"spudhouse/internal/router"
	"spudhouse/internal/service"
	"spudhouse/internal/session"
)

// @title Spud House API
// @version 1.0
// @description Potato restaurant ordering API with session authentication, cart, orders, and reviews.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.PasswordReset{},
			&model.Review{},
			&model.Order{},
			&model.CartItem{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CartItem{},
		&model.Order{},
		&model.Review{},
		&model.PasswordReset{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := session.NewStore(cacheClient)

	limiters := router.Limiters{
		Register: ratelimit.NewWindowLimiter(ratelimit.Policy{Max: cfg.RegisterRateMax, Window: cfg.RateWindow}),
		Login:    ratelimit.NewWindowLimiter(ratelimit.Policy{Max: cfg.LoginRateMax, Window: cfg.RateWindow}),
		Reset:    ratelimit.NewWindowLimiter(ratelimit.Policy{Max: cfg.ResetRateMax, Window: cfg.RateWindow}),
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	resetRepo := repository.NewPasswordResetRepository(gormDB)

	mail := mailer.New(cfg)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, cacheClient)
	cartService := service.NewCartService(cartRepo)
	orderService := service.NewOrderService(orderRepo)
	reviewService := service.NewReviewService(reviewRepo)
	resetService := service.NewPasswordResetService(resetRepo, userRepo, mail, cfg.Dev())

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions)
	userHandler := handler.NewUserHandler(userService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	resetHandler := handler.NewPasswordResetHandler(resetService)
	menuHandler := handler.NewMenuHandler()
	pageHandler := handler.NewPageHandler(cfg.PublicDir)

	// Register routes
	router.Register(
		e,
		cfg,
		sessions,
		limiters,
		authHandler,
		userHandler,
		cartHandler,
		orderHandler,
		reviewHandler,
		resetHandler,
		menuHandler,
		pageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pagopa-proxy/app/port"
	"pagopa-proxy/app/rest/handlers"
	custommw "pagopa-proxy/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	UserUsecase    port.PagoPaUserUsecase
	SessionRepo    port.SessionRepository
	HealthCheckers map[string]handlers.HealthChecker
	Version        string
	EnableDebug    bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	// Create Echo instance
	e := echo.New()

	// Configure Echo
	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	userHandler := handlers.NewPagoPaUserHandler(config.UserUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthCheckers, config.Version)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.SessionRepo, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// Request logging
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Health endpoints (no auth required)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/ready", healthHandler.ReadinessCheck)

	// API versioning
	v1 := e.Group("/api/v1")

	v1.GET("/ping", healthHandler.Ping)
	v1.GET("/user", userHandler.GetUser, authMiddleware.RequireWalletToken())

	return e
}

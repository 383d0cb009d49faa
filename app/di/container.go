package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"pagopa-proxy/app/config"
	"pagopa-proxy/app/driver/postgres"
	"pagopa-proxy/app/driver/redisstore"
	"pagopa-proxy/app/port"
	"pagopa-proxy/app/rest"
	"pagopa-proxy/app/rest/handlers"
	"pagopa-proxy/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	Redis redis.UniversalClient
	DB    *postgres.DB

	// Repositories
	SessionStore *redisstore.SessionStore
	ProfileRepo  port.ProfileRepository

	// Usecases
	UserUsecase port.PagoPaUserUsecase
}

// NewContainer creates and initializes a new dependency injection container.
// The store clients are constructed exactly once here and injected; nothing
// holds them as package state.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	container.Redis, err = redisstore.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis client: %w", err)
	}

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	container.SessionStore = redisstore.NewSessionStore(container.Redis, logger)
	container.ProfileRepo = postgres.NewProfileRepository(container.DB.Pool(), logger)

	// Initialize usecases
	container.UserUsecase = usecase.NewPagoPaUserUseCase(
		container.SessionStore,
		container.ProfileRepo,
		logger,
		cfg.EnableNoticeEmailCache,
	)

	logger.Info("Container initialized with full dependency stack",
		"notice_email_cache", cfg.EnableNoticeEmailCache)

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:      c.Logger,
		UserUsecase: c.UserUsecase,
		SessionRepo: c.SessionStore,
		HealthCheckers: map[string]handlers.HealthChecker{
			"redis": func(ctx context.Context) error {
				return c.Redis.Ping(ctx).Err()
			},
			"database": func(ctx context.Context) error {
				return c.DB.Pool().Ping(ctx)
			},
		},
		Version:     c.Config.Version,
		EnableDebug: c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close tears down the store clients
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("closing redis client", "error", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthChecker reports whether one dependency is reachable
type HealthChecker func(ctx context.Context) error

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	logger   *slog.Logger
	checkers map[string]HealthChecker
	version  string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger, checkers map[string]HealthChecker, version string) *HealthHandler {
	if version == "" {
		version = "dev"
	}
	return &HealthHandler{
		logger:   logger,
		checkers: checkers,
		version:  version,
	}
}

// Ping acknowledges that the service is up. Returns 202 Accepted with no
// body, as the proxy clients expect.
func (h *HealthHandler) Ping(c echo.Context) error {
	return c.NoContent(http.StatusAccepted)
}

// HealthCheck performs a basic liveness check
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "pagopa-proxy",
		Version:   h.version,
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessCheck pings every dependency and reports per-check status.
// Any failing dependency makes the whole response 503.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthStatus, len(h.checkers))
	ready := true

	for name, check := range h.checkers {
		start := time.Now()
		if err := check(ctx); err != nil {
			ready = false
			checks[name] = HealthStatus{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			h.logger.Warn("readiness check failed", "dependency", name, "error", err)
			continue
		}
		checks[name] = HealthStatus{
			Status:  "healthy",
			Latency: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
		}
	}

	response := ReadinessResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Checks:    checks,
	}

	if !ready {
		response.Status = "not ready"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

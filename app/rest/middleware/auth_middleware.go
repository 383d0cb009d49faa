package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pagopa-proxy/app/domain"
	"pagopa-proxy/app/port"
)

// userContextKey is where the resolved user record is stored on the echo
// context by RequireWalletToken.
const userContextKey = "authenticated_user"

// AuthMiddleware authenticates proxy clients by their bearer wallet token.
type AuthMiddleware struct {
	sessions port.SessionRepository
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(sessions port.SessionRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireWalletToken resolves the bearer token in the Authorization header
// through the session store and stores the user record on the context. An
// unknown token is unauthorized; a store failure is not, and surfaces as an
// internal error so the caller can retry the whole request.
func (m *AuthMiddleware) RequireWalletToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := extractBearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			user, err := m.sessions.GetByWalletToken(ctx, domain.WalletToken(token))
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				m.logger.Error("wallet token resolution failed", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "session resolution failed")
			}

			c.Set(userContextKey, user)

			return next(c)
		}
	}
}

// UserFromContext returns the user record stored by RequireWalletToken.
func UserFromContext(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok
}

// extractBearerToken extracts the token from the Authorization header
func extractBearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

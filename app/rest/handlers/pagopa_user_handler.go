package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"pagopa-proxy/app/domain"
	"pagopa-proxy/app/port"
	"pagopa-proxy/app/rest/middleware"
	apperrors "pagopa-proxy/app/utils/errors"
)

// PagoPaUserHandler handles the user resolution HTTP requests
type PagoPaUserHandler struct {
	userUsecase port.PagoPaUserUsecase
	logger      *slog.Logger
}

// NewPagoPaUserHandler creates a new pagopa user handler
func NewPagoPaUserHandler(userUsecase port.PagoPaUserUsecase, logger *slog.Logger) *PagoPaUserHandler {
	return &PagoPaUserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// GetUser returns the output record for the authenticated user. The four
// terminal outcomes of the resolution map to distinct response categories:
// success, profile not found, validation failure and profile query failure.
func (h *PagoPaUserHandler) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "user not authenticated",
			Code:  string(apperrors.ErrCodeUnauthorized),
		})
	}

	pagoPAUser, err := h.userUsecase.GetUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "profile not found",
				Code:    string(apperrors.ErrCodeProfileNotFound),
				Details: "The profile you requested was not found in the system.",
			})
		case errors.Is(err, domain.ErrOutputValidation):
			h.logger.Error("user record validation failed", "error", err)
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid user data",
				Code:  string(apperrors.ErrCodeValidationFailed),
			})
		case errors.Is(err, domain.ErrProfileQuery):
			h.logger.Error("profile query failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "error while retrieving the profile",
				Code:  string(apperrors.ErrCodeQueryFailed),
			})
		default:
			h.logger.Error("user resolution failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "internal server error",
				Code:  string(apperrors.ErrCodeInternalError),
			})
		}
	}

	return c.JSON(http.StatusOK, pagoPAUser)
}

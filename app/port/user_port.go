package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go -package=mock_port

import (
	"context"

	"pagopa-proxy/app/domain"
)

// PagoPaUserUsecase answers "what notice email should be returned for this
// user". The returned record is validated; terminal failures are
// domain.ErrProfileNotFound, domain.ErrProfileQuery and
// domain.ErrOutputValidation.
type PagoPaUserUsecase interface {
	GetUser(ctx context.Context, user *domain.User) (*domain.PagoPAUser, error)
}

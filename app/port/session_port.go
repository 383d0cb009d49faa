package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go -package=mock_port

import (
	"context"
	"time"

	"pagopa-proxy/app/domain"
)

// SessionRepository defines session token resolution and TTL introspection.
// Absence of a session or alias mapping is reported as
// domain.ErrSessionNotFound, distinct from store failures.
type SessionRepository interface {
	GetBySessionToken(ctx context.Context, token domain.SessionToken) (*domain.User, error)
	GetByWalletToken(ctx context.Context, token domain.WalletToken) (*domain.User, error)
	GetByMyPortalToken(ctx context.Context, token domain.MyPortalToken) (*domain.User, error)
	GetByBPDToken(ctx context.Context, token domain.BPDToken) (*domain.User, error)
	SessionTTL(ctx context.Context, token domain.SessionToken) (time.Duration, error)
}

// NoticeEmailCache defines the cache-aside store for the notice email derived
// per session. Set borrows the remaining session TTL so a cached value never
// outlives its session.
type NoticeEmailCache interface {
	GetNoticeEmail(ctx context.Context, user *domain.User) (string, error)
	SetNoticeEmail(ctx context.Context, user *domain.User, email string) error
	DeleteNoticeEmail(ctx context.Context, user *domain.User) error
}

package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"pagopa-proxy/app/domain"
	"pagopa-proxy/app/utils/validator"
)

// Key namespaces. Session keys hold the serialized user record, alias keys
// hold the session token they resolve to, notice email keys hold the plain
// email string.
const (
	sessionKeyPrefix  = "SESSION-"
	walletKeyPrefix   = "WALLET-"
	myPortalKeyPrefix = "MYPORTAL-"
	bpdKeyPrefix      = "BPD-"
	noticeEmailPrefix = "NOTICEEMAIL-"
)

// SessionStore resolves bearer tokens into user records and manages the
// notice email cache. It implements port.SessionRepository and
// port.NoticeEmailCache over a shared Redis client.
type SessionStore struct {
	client   redis.UniversalClient
	validate *validator.Validator
	logger   *slog.Logger
}

// NewSessionStore creates a new Redis-backed session store
func NewSessionStore(client redis.UniversalClient, logger *slog.Logger) *SessionStore {
	return &SessionStore{
		client:   client,
		validate: validator.New(),
		logger:   logger.With("component", "session_store"),
	}
}

// GetBySessionToken returns the user record stored under a session token.
func (s *SessionStore) GetBySessionToken(ctx context.Context, token domain.SessionToken) (*domain.User, error) {
	return s.loadSessionByToken(ctx, token)
}

// GetByWalletToken resolves a wallet alias token into its session's user record.
func (s *SessionStore) GetByWalletToken(ctx context.Context, token domain.WalletToken) (*domain.User, error) {
	return s.loadSessionByAlias(ctx, walletKeyPrefix, string(token))
}

// GetByMyPortalToken resolves a myportal alias token into its session's user record.
func (s *SessionStore) GetByMyPortalToken(ctx context.Context, token domain.MyPortalToken) (*domain.User, error) {
	return s.loadSessionByAlias(ctx, myPortalKeyPrefix, string(token))
}

// GetByBPDToken resolves a bpd alias token into its session's user record.
func (s *SessionStore) GetByBPDToken(ctx context.Context, token domain.BPDToken) (*domain.User, error) {
	return s.loadSessionByAlias(ctx, bpdKeyPrefix, string(token))
}

// loadSessionByAlias is the two-hop lookup: the alias key holds the session
// token, which in turn holds the record. Aliases never hold a record of
// their own so every alias kind shares the session's lifecycle and TTL.
func (s *SessionStore) loadSessionByAlias(ctx context.Context, prefix, token string) (*domain.User, error) {
	sessionToken, err := s.client.Get(ctx, prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: alias not mapped", domain.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return s.loadSessionByToken(ctx, domain.SessionToken(sessionToken))
}

func (s *SessionStore) loadSessionByToken(ctx context.Context, token domain.SessionToken) (*domain.User, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+string(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	user, err := domain.DecodeUser(payload)
	if err != nil {
		// Terminal: the payload will not change without external intervention.
		return nil, err
	}

	return user, nil
}

// SessionTTL returns the remaining time to live of a session. The store's
// sentinel replies are surfaced as distinct errors: -2 (key missing) as
// domain.ErrSessionTTLMissing and -1 (no expiry) as domain.ErrSessionNoExpiry.
func (s *SessionStore) SessionTTL(ctx context.Context, token domain.SessionToken) (time.Duration, error) {
	ttl, err := s.client.TTL(ctx, sessionKeyPrefix+string(token)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	// go-redis passes the -2/-1 sentinel replies through unscaled.
	switch ttl {
	case -2:
		return 0, domain.ErrSessionTTLMissing
	case -1:
		return 0, domain.ErrSessionNoExpiry
	}

	return ttl, nil
}

// GetNoticeEmail reads the cached notice email for a user's session. A
// missing key is domain.ErrNoticeEmailNotCached, a stored value that is not a
// valid email is domain.ErrNoticeEmailInvalid; callers on the read path treat
// both, and store failures, as a cache miss.
func (s *SessionStore) GetNoticeEmail(ctx context.Context, user *domain.User) (string, error) {
	value, err := s.client.Get(ctx, noticeEmailPrefix+string(user.SessionToken)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNoticeEmailNotCached
		}
		return "", fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if err := s.validate.ValidateVar(value, "required,email"); err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrNoticeEmailInvalid, value)
	}

	return value, nil
}

// SetNoticeEmail caches the notice email with the session's remaining TTL so
// the entry expires no later than the session it belongs to. The write is
// refused when the TTL cannot be read, the session has no expiry bound, or
// the session is so close to expiry that its TTL reads back as zero.
func (s *SessionStore) SetNoticeEmail(ctx context.Context, user *domain.User, email string) error {
	ttl, err := s.SessionTTL(ctx, user.SessionToken)
	if err != nil {
		return fmt.Errorf("reading session ttl: %w", err)
	}

	// A session within a second of expiry reads back a zero TTL, and a zero
	// expiration would store the entry with no expiry at all.
	if ttl <= 0 {
		return fmt.Errorf("%w: session expires in under a second", domain.ErrNoticeEmailWriteRejected)
	}

	status, err := s.client.Set(ctx, noticeEmailPrefix+string(user.SessionToken), email, ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if status != "OK" {
		return fmt.Errorf("%w: reply %q", domain.ErrNoticeEmailWriteRejected, status)
	}

	return nil
}

// DeleteNoticeEmail removes the cached notice email. Used by session
// teardown, not by the read path; deleting an absent key is not an error.
func (s *SessionStore) DeleteNoticeEmail(ctx context.Context, user *domain.User) error {
	if err := s.client.Del(ctx, noticeEmailPrefix+string(user.SessionToken)).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

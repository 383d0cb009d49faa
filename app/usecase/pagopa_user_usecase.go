package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pagopa-proxy/app/domain"
	"pagopa-proxy/app/port"
	"pagopa-proxy/app/utils/validator"
)

// PagoPaUserUseCase resolves a user's notice email with a cache-aside read
// path: cached value when enabled and present, otherwise the latest profile
// with the identity-provider email as fallback, repopulating the cache best
// effort.
type PagoPaUserUseCase struct {
	cache        port.NoticeEmailCache
	profiles     port.ProfileRepository
	validate     *validator.Validator
	logger       *slog.Logger
	cacheEnabled bool
}

// NewPagoPaUserUseCase creates a new PagoPaUserUseCase instance
func NewPagoPaUserUseCase(
	cache port.NoticeEmailCache,
	profiles port.ProfileRepository,
	logger *slog.Logger,
	cacheEnabled bool,
) *PagoPaUserUseCase {
	return &PagoPaUserUseCase{
		cache:        cache,
		profiles:     profiles,
		validate:     validator.New(),
		logger:       logger.With("component", "pagopa_user_usecase"),
		cacheEnabled: cacheEnabled,
	}
}

// GetUser returns the validated output record for a resolved session user.
// A cache hit is authoritative and skips the profile store entirely. Cache
// read and write failures of any kind never fail the request; profile store
// failures and output validation failures always do.
func (uc *PagoPaUserUseCase) GetUser(ctx context.Context, user *domain.User) (*domain.PagoPAUser, error) {
	noticeEmail, cached := uc.cachedNoticeEmail(ctx, user)

	if !cached {
		profile, err := uc.profiles.FindLatestByFiscalCode(ctx, user.FiscalCode)
		if err != nil {
			// ErrProfileNotFound and ErrProfileQuery are both terminal.
			return nil, err
		}

		noticeEmail = profile.NoticeEmail(user)
		if noticeEmail != "" {
			uc.saveNoticeEmail(ctx, user, noticeEmail)
		}
	}

	pagoPAUser := &domain.PagoPAUser{
		Name:        user.Name,
		FamilyName:  user.FamilyName,
		FiscalCode:  user.FiscalCode,
		MobilePhone: user.SpidMobilePhone,
		NoticeEmail: noticeEmail,
		SpidEmail:   user.SpidEmail,
	}

	if err := uc.validate.Validate(pagoPAUser); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOutputValidation, err)
	}

	return pagoPAUser, nil
}

// cachedNoticeEmail reads the cache when enabled. Missing key, malformed
// value and store failure all collapse to a miss: the caller recomputes.
func (uc *PagoPaUserUseCase) cachedNoticeEmail(ctx context.Context, user *domain.User) (string, bool) {
	if !uc.cacheEnabled {
		return "", false
	}

	email, err := uc.cache.GetNoticeEmail(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrNoticeEmailNotCached) {
			uc.logger.Warn("notice email cache read failed, falling back to profile", "error", err)
		}
		return "", false
	}

	return email, true
}

// saveNoticeEmail repopulates the cache. The write is best effort: its
// outcome never changes the result of the read path. A refused write caused
// by an unbounded session TTL is logged at error level, since it signals an
// invariant violation in the session data rather than a transient fault.
func (uc *PagoPaUserUseCase) saveNoticeEmail(ctx context.Context, user *domain.User, email string) {
	err := uc.cache.SetNoticeEmail(ctx, user, email)
	if err == nil {
		return
	}

	if errors.Is(err, domain.ErrSessionNoExpiry) || errors.Is(err, domain.ErrSessionTTLMissing) {
		uc.logger.Error("notice email cache write refused", "error", err)
		return
	}
	uc.logger.Warn("notice email cache write failed", "error", err)
}

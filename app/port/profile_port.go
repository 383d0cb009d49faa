package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go -package=mock_port

import (
	"context"

	"pagopa-proxy/app/domain"
)

// ProfileRepository defines read access to the external profile store.
// Profiles are versioned per fiscal code; only the highest version is
// returned. Absence is domain.ErrProfileNotFound, store faults wrap
// domain.ErrProfileQuery.
type ProfileRepository interface {
	FindLatestByFiscalCode(ctx context.Context, fiscalCode domain.FiscalCode) (*domain.Profile, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"pagopa-proxy/app/domain"
	"pagopa-proxy/app/port"
)

// ProfileRepository implements port.ProfileRepository for PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// FindLatestByFiscalCode returns the highest version of the profile stored
// for a fiscal code. Lower versions exist but are never authoritative.
func (r *ProfileRepository) FindLatestByFiscalCode(ctx context.Context, fiscalCode domain.FiscalCode) (*domain.Profile, error) {
	query := `
		SELECT fiscal_code, version, email, is_email_validated
		FROM profiles
		WHERE fiscal_code = $1
		ORDER BY version DESC
		LIMIT 1`

	var (
		profile domain.Profile
		email   *string
	)

	err := r.db.QueryRow(ctx, query, string(fiscalCode)).Scan(
		&profile.FiscalCode,
		&profile.Version,
		&email,
		&profile.IsEmailValidated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("profile lookup failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileQuery, err)
	}

	if email != nil {
		profile.Email = *email
	}

	return &profile, nil
}

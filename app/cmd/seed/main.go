// Command seed loads a development fixture into the session store and the
// profile database: one V3 user with every alias token mapped, plus the
// matching validated profile row. Safe to re-run; keys and rows are upserted.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"pagopa-proxy/app/config"
	"pagopa-proxy/app/domain"
	"pagopa-proxy/app/driver/redisstore"
	"pagopa-proxy/app/utils/logger"
)

const (
	fixtureFiscalCode   = "AAAAAA00A00A000A"
	fixtureEmail        = "email@example.com"
	fixtureSessionToken = "dev-session-token"
)

const createProfilesTable = `
CREATE TABLE IF NOT EXISTS profiles (
	fiscal_code        TEXT   NOT NULL,
	version            BIGINT NOT NULL,
	email              TEXT,
	is_email_validated BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (fiscal_code, version)
)`

const upsertProfile = `
INSERT INTO profiles (fiscal_code, version, email, is_email_validated)
VALUES ($1, $2, $3, $4)
ON CONFLICT (fiscal_code, version) DO UPDATE
SET email = EXCLUDED.email, is_email_validated = EXCLUDED.is_email_validated`

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	appLogger = logger.WithComponent(appLogger, "seed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedProfile(ctx, cfg, appLogger); err != nil {
		appLogger.Error("Profile seeding failed", "error", err)
		os.Exit(1)
	}

	if err := seedSession(ctx, cfg, appLogger); err != nil {
		appLogger.Error("Session seeding failed", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Fixture loaded",
		"fiscal_code", fixtureFiscalCode,
		"session_token", fixtureSessionToken,
		"session_ttl", cfg.SessionTTL)
}

// seedProfile creates the profiles table if needed and upserts the fixture row.
func seedProfile(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, createProfilesTable); err != nil {
		return err
	}

	if _, err := conn.Exec(ctx, upsertProfile, fixtureFiscalCode, int64(1), fixtureEmail, true); err != nil {
		return err
	}

	log.Info("Profile row upserted", "fiscal_code", fixtureFiscalCode)
	return nil
}

// seedSession writes the user record under its session key and points every
// alias token at the session, all with the same lifetime so the aliases can
// never outlive the record they resolve to.
func seedSession(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	client, err := redisstore.NewClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	user := domain.User{
		CreatedAt:         time.Now().Unix(),
		Name:              "Luca",
		FamilyName:        "Rossi",
		FiscalCode:        domain.FiscalCode(fixtureFiscalCode),
		SpidLevel:         "https://www.spid.gov.it/SpidL2",
		SpidEmail:         "luca.rossi@example.com",
		SessionTrackingID: uuid.NewString(),
		SessionToken:      domain.SessionToken(fixtureSessionToken),
		WalletToken:       domain.WalletToken("dev-wallet-token"),
		MyPortalToken:     domain.MyPortalToken("dev-myportal-token"),
		BPDToken:          domain.BPDToken("dev-bpd-token"),
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	ttl := cfg.SessionTTL

	if err := client.Set(ctx, "SESSION-"+string(user.SessionToken), payload, ttl).Err(); err != nil {
		return err
	}

	aliases := map[string]string{
		"WALLET-" + string(user.WalletToken):     string(user.SessionToken),
		"MYPORTAL-" + string(user.MyPortalToken): string(user.SessionToken),
		"BPD-" + string(user.BPDToken):           string(user.SessionToken),
	}
	for key, target := range aliases {
		if err := client.Set(ctx, key, target, ttl).Err(); err != nil {
			return err
		}
	}

	log.Info("Session keys written", "schema_version", user.Version())
	return nil
}

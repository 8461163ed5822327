// Command seed creates an owner profile, a turf with hourly slots and prints
// tokens that can be used against a local server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"turf-booking/internal/domain/profile"
	"turf-booking/internal/domain/turf"
	"turf-booking/internal/infra/db"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/infra/repository"
	"turf-booking/internal/infra/uow"
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/pkg/jwt"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type seedConfig struct {
	DB  config.DBConfig
	JWT config.JWTConfig

	OwnerExternalID  string        `envconfig:"SEED_OWNER_ID" default:"seed-owner"`
	OwnerName        string        `envconfig:"SEED_OWNER_NAME" default:"Seed Owner"`
	OwnerEmail       string        `envconfig:"SEED_OWNER_EMAIL" default:"owner@example.com"`
	PlayerExternalID string        `envconfig:"SEED_PLAYER_ID" default:"seed-player"`
	TurfName         string        `envconfig:"SEED_TURF_NAME" default:"Green Field Arena"`
	TurfAddress      string        `envconfig:"SEED_TURF_ADDRESS" default:"12 Stadium Road"`
	PricePerHour     int64         `envconfig:"SEED_PRICE_PER_HOUR" default:"1200"`
	OpenHour         int           `envconfig:"SEED_OPEN_HOUR" default:"6"`
	CloseHour        int           `envconfig:"SEED_CLOSE_HOUR" default:"23"`
	TokenTTL         time.Duration `envconfig:"SEED_TOKEN_TTL" default:"24h"`
}

func main() {
	_ = godotenv.Load()

	var cfg seedConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg seedConfig) error {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	q := pgsql.New()
	profiles := repository.NewProfileRepository(q, pool)
	now := time.Now()

	ownerIdentity := profile.Identity{
		ExternalID: cfg.OwnerExternalID,
		Email:      cfg.OwnerEmail,
		Name:       cfg.OwnerName,
		Role:       profile.RoleOwner.String(),
	}
	candidate, err := profile.NewProfile(ownerIdentity, profile.RoleOwner, "", now)
	if err != nil {
		return err
	}
	owner, _, err := profiles.Upsert(ctx, candidate)
	if err != nil {
		return err
	}
	if !owner.IsOwner() {
		return errs.Newf("profile %s already exists with role %s", owner.ExternalID(), owner.Role())
	}

	t, err := turf.NewTurf(owner.ID(), cfg.TurfName, cfg.TurfAddress, cfg.PricePerHour, now)
	if err != nil {
		return err
	}
	slots, err := turf.HourlySlots(t.ID(), cfg.OpenHour, cfg.CloseHour, cfg.PricePerHour, uuid.NewString)
	if err != nil {
		return err
	}

	work := uow.NewPostgresUoW(pool, q)
	err = work.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Turfs().Create(ctx, t, slots)
	})
	if err != nil {
		return err
	}

	slog.Info("seeded turf", "turf_id", t.ID(), "owner_id", owner.ID(), "slots", len(slots))
	for _, s := range slots {
		fmt.Printf("slot %s %s-%s\n", s.SlotID(), s.Window().Start(), s.Window().End())
	}

	ownerToken, err := jwt.Sign(cfg.JWT.Secret, ownerIdentity.ExternalID, ownerIdentity.Email, ownerIdentity.Name, ownerIdentity.Role, cfg.TokenTTL)
	if err != nil {
		return err
	}
	playerToken, err := jwt.Sign(cfg.JWT.Secret, cfg.PlayerExternalID, "", "Seed Player", profile.RolePlayer.String(), cfg.TokenTTL)
	if err != nil {
		return err
	}

	fmt.Printf("turf_id=%s\nowner_token=%s\nplayer_token=%s\n", t.ID(), ownerToken, playerToken)
	return nil
}

package bootstrap

import (
	"context"
	"errors"

	"github.com/noyo-commerce/storefront-service/config"
	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/internal/repository"
	"github.com/noyo-commerce/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser seeds the configured admin account on startup when it
// does not exist yet. Idempotent across restarts.
func EnsureAdminUser(ctx context.Context, repo repository.UserRepository, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		log.Ctx(ctx).Info().Str("component", "EnsureAdminUser").Msg("admin credentials not configured, skipping bootstrap")
		return nil
	}

	_, err := repo.GetUserByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := repo.AddUser(ctx, domain.User{
		Name:     cfg.Name,
		Email:    cfg.Email,
		Password: string(hashedPassword),
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().Str("component", "EnsureAdminUser").Str("userId", id.Hex()).Msg("admin account created")
	return nil
}

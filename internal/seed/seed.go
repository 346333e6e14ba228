package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/repositories"
	"github.com/arda/gradlink/internal/config"
	"github.com/arda/gradlink/internal/pkg/apperrors"
	"github.com/arda/gradlink/internal/pkg/auth"
)

// CreateDefaultData creates the portal administrator account if it doesn't
// exist. Admins have no self-service registration route, so the seed is the
// only way one comes into being.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	if _, err := userRepo.GetUserByEmail(ctx, cfg.Admin.Email); err == nil {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already present")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		// A concurrent boot may have won the race; treat that as created.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}

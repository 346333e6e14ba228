package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arda/gradlink/internal/app/repositories"
)

// UserService defines administrative user operations
type UserService interface {
	Delete(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Delete removes a user and, through the schema cascade, its role extension.
// Deleting an id that no longer exists succeeds.
func (s *userServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}

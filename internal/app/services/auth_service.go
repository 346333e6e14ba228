package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/models/dto"
	"github.com/arda/gradlink/internal/app/repositories"
	"github.com/arda/gradlink/internal/pkg/apperrors"
	"github.com/arda/gradlink/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.User, error)
	RegisterAlumni(ctx context.Context, req *dto.RegisterAlumniRequest) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.IUserRepository, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login verifies credentials and returns the authenticated user. An unknown
// email and a wrong password both return apperrors.ErrInvalidCredentials —
// the caller must not be able to tell the two apart — and a dummy hash is
// compared for unknown emails so the cost is paid either way.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			auth.CheckDummyPassword(password)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup failed: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return user, nil
}

// RegisterStudent creates a student account: the base user row first, then
// the extension row. Each write is its own round trip.
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.User, error) {
	user, err := s.createBaseUser(ctx, req.Username, req.Email, req.Password, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		UserID:         user.ID,
		Institute:      defaultString(req.Institute, models.DefaultInstitute),
		CurrentYear:    req.CurrentYear,
		Course:         req.Course,
		ProfilePicture: defaultString(req.ProfilePicture, models.DefaultProfilePicture),
		Skills:         req.Skills,
		Projects:       dto.ToProjects(req.Projects),
	}
	if err := s.userRepo.CreateStudent(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Student registered")
	return user, nil
}

// RegisterAlumni creates an alumni account. Alumni are mentors unless they
// opt out.
func (s *authServiceImpl) RegisterAlumni(ctx context.Context, req *dto.RegisterAlumniRequest) (*models.User, error) {
	user, err := s.createBaseUser(ctx, req.Username, req.Email, req.Password, models.RoleAlumni)
	if err != nil {
		return nil, err
	}

	isMentor := true
	if req.IsMentor != nil {
		isMentor = *req.IsMentor
	}

	alumni := &models.Alumni{
		UserID:    user.ID,
		AlmaMater: defaultString(req.AlmaMater, models.DefaultInstitute),
		CurrentJob: models.Job{
			Title:   req.JobTitle,
			Company: req.JobCompany,
		},
		Skills:         req.Skills,
		Projects:       dto.ToProjects(req.Projects),
		IsMentor:       isMentor,
		ProfilePicture: defaultString(req.ProfilePicture, models.DefaultProfilePicture),
	}
	if err := s.userRepo.CreateAlumni(ctx, alumni); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Alumni registered")
	return user, nil
}

func (s *authServiceImpl) createBaseUser(ctx context.Context, username, email, password string, role models.RoleType) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// DashboardPath returns the dashboard a user lands on after login, keyed
// purely by role. An unrecognized role surfaces as ErrUnroutableRole rather
// than failing silently.
func DashboardPath(user *models.User) (string, error) {
	switch user.Role {
	case models.RoleStudent:
		return fmt.Sprintf("/student/dashboard/%d", user.ID), nil
	case models.RoleAlumni:
		return fmt.Sprintf("/alumni/dashboard/%d", user.ID), nil
	case models.RoleAdmin:
		return fmt.Sprintf("/admin/dashboard/%d", user.ID), nil
	default:
		return "", apperrors.ErrUnroutableRole
	}
}

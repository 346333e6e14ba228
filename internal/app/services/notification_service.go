package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/repositories"
	"github.com/arda/gradlink/internal/pkg/apperrors"
)

// NotificationService posts to and reads from the role-addressed notification
// feed. The feed is append-only; there is no mark-read operation.
type NotificationService interface {
	Post(ctx context.Context, message string, recipientRole models.RoleType) (*models.Notification, error)
	UnreadForRole(ctx context.Context, role models.RoleType) ([]*models.Notification, error)
	NotifyEventRegistration(ctx context.Context, eventID, studentID int64) error
}

// notificationServiceImpl implements the NotificationService interface
type notificationServiceImpl struct {
	notificationRepo repositories.INotificationRepository
	userRepo         repositories.IUserRepository
	eventRepo        repositories.IEventRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repositories.INotificationRepository,
	userRepo repositories.IUserRepository,
	eventRepo repositories.IEventRepository,
	logger zerolog.Logger,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		logger:           logger,
	}
}

// Post appends a notification addressed to an entire role
func (s *notificationServiceImpl) Post(ctx context.Context, message string, recipientRole models.RoleType) (*models.Notification, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", apperrors.ErrValidationFailed)
	}
	if !recipientRole.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, recipientRole)
	}

	notification := &models.Notification{
		Message:       message,
		RecipientRole: recipientRole,
	}
	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	s.logger.Info().Str("recipientRole", string(recipientRole)).Msg("Notification posted")
	return notification, nil
}

// UnreadForRole returns unread notifications for a role, newest first
func (s *notificationServiceImpl) UnreadForRole(ctx context.Context, role models.RoleType) ([]*models.Notification, error) {
	return s.notificationRepo.ListUnreadForRole(ctx, role)
}

// NotifyEventRegistration tells the alumni feed that a student registered for
// an event.
func (s *notificationServiceImpl) NotifyEventRegistration(ctx context.Context, eventID, studentID int64) error {
	student, err := s.userRepo.GetStudentByUserID(ctx, studentID)
	if err != nil {
		return err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("%s has registered for the event: %q.", student.User.Username, event.Name)
	_, err = s.Post(ctx, message, models.RoleAlumni)
	return err
}

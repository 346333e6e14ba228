package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/pkg/logger"
)

// INotificationRepository defines the interface for notification database operations
type INotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) (int64, error)
	ListUnreadForRole(ctx context.Context, role models.RoleType) ([]*models.Notification, error)
}

// NotificationRepository handles notification database operations. The feed is
// append-only; nothing updates is_read.
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create appends a notification addressed to a role
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) (int64, error) {
	sql, args, err := r.sb.Insert("notifications").
		Columns("message", "recipient_role").
		Values(notification.Message, notification.RecipientRole).
		Suffix("RETURNING id, is_read, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create notification query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&notification.ID, &notification.IsRead, &notification.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("recipientRole", string(notification.RecipientRole)).
			Msg("Error executing create notification query")
		return 0, fmt.Errorf("error creating notification: %w", err)
	}

	return notification.ID, nil
}

// ListUnreadForRole retrieves unread notifications for a role, newest first
func (r *NotificationRepository) ListUnreadForRole(ctx context.Context, role models.RoleType) ([]*models.Notification, error) {
	sql, args, err := r.sb.Select("id", "message", "recipient_role", "is_read", "created_at").
		From("notifications").
		Where(squirrel.Eq{"recipient_role": role, "is_read": false}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("role", string(role)).Msg("Error executing list notifications query")
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.Message, &n.RecipientRole, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	EventRepository        *EventRepository
	MentorshipRepository   *MentorshipRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		EventRepository:        NewEventRepository(db),
		MentorshipRepository:   NewMentorshipRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

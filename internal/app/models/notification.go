package models

import (
	"time"
)

// Notification defines the notification model based on the 'notifications'
// table. Notifications address an entire role, not an individual user, and
// the feed is append-only: nothing currently marks them read.
type Notification struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	Message       string    `json:"message" db:"message"`
	RecipientRole RoleType  `json:"recipientRole" db:"recipient_role" example:"alumni"`
	IsRead        bool      `json:"isRead" db:"is_read" example:"false"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

package models

import (
	"time"
)

// Event defines the event model based on the 'events' table. Events carry no
// owner link; any admin can create or delete any event.
type Event struct {
	ID       int64     `json:"id" db:"id" example:"1"`
	Name     string    `json:"name" db:"name" example:"Annual Meetup"`
	HostedBy string    `json:"hostedBy" db:"hosted_by" example:"Alumni Club"`
	Venue    string    `json:"venue" db:"venue" example:"Hall A"`
	Date     time.Time `json:"date" db:"date" example:"2025-01-01T00:00:00Z"`
}

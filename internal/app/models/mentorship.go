package models

import (
	"time"
)

// Mentorship defines a directed mentorship request from a student (mentee) to
// an alumni (mentor), based on the 'mentorships' table. Requests start out
// pending and can only move to accepted; there is no rejected state and
// requests are never deleted in the normal flow.
type Mentorship struct {
	ID        int64            `json:"id" db:"id" example:"1"`
	MenteeID  int64            `json:"menteeId" db:"mentee_id" example:"3"`
	MentorID  int64            `json:"mentorId" db:"mentor_id" example:"7"`
	Status    MentorshipStatus `json:"status" db:"status" example:"pending"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	Mentee    *Student         `json:"mentee,omitempty"` // Relation, no db tag
}

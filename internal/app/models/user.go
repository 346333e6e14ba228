package models

import (
	"time"
)

// User defines the shared user model based on the 'users' table. The role
// column decides which extension record (Student, Alumni, none for admins)
// belongs to the user.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"jdoe"`
	Email     string    `json:"email" db:"email" example:"jdoe@gradlink.local"`
	Password  string    `json:"-" db:"password"`
	Role      RoleType  `json:"role" db:"role" example:"student"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// Project is one portfolio entry embedded in a student or alumni profile.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Image       string `json:"image"`
}

// Job describes an alumni's current position.
type Job struct {
	Title   string `json:"title" db:"job_title"`
	Company string `json:"company" db:"job_company"`
}

// Student defines the student extension based on the 'students' table
type Student struct {
	UserID         int64     `json:"userId" db:"user_id"`
	Institute      string    `json:"institute" db:"institute"`
	CurrentYear    *int      `json:"currentYear,omitempty" db:"current_year"` // Pointer for potential NULL
	Course         string    `json:"course" db:"course"`
	ProfilePicture string    `json:"profilePicture" db:"profile_picture"`
	Skills         []string  `json:"skills" db:"skills"`
	Projects       []Project `json:"projects" db:"projects"`
	User           *User     `json:"user,omitempty"` // Relation, no db tag
}

// Alumni defines the alumni extension based on the 'alumni' table
type Alumni struct {
	UserID         int64     `json:"userId" db:"user_id"`
	AlmaMater      string    `json:"almaMater" db:"alma_mater"`
	CurrentJob     Job       `json:"currentJob"`
	Skills         []string  `json:"skills" db:"skills"`
	Projects       []Project `json:"projects" db:"projects"`
	IsMentor       bool      `json:"isMentor" db:"is_mentor"`
	ProfilePicture string    `json:"profilePicture" db:"profile_picture"`
	User           *User     `json:"user,omitempty"` // Relation, no db tag
}

const (
	// DefaultInstitute mirrors the "Not specified" placeholder used for
	// empty institute/alma mater fields.
	DefaultInstitute = "Not specified"

	// DefaultProfilePicture is served from the static assets directory.
	DefaultProfilePicture = "/Assets/default-avatar.png"
)

package dto

import (
	"github.com/arda/gradlink/internal/app/models"
)

// StudentDashboard is the view model behind the student dashboard page.
type StudentDashboard struct {
	User             *models.Student  `json:"user"`
	Events           []*models.Event  `json:"events"`
	Mentors          []*models.Alumni `json:"mentors"`
	PendingMentorIDs []int64          `json:"pendingMentorIds"`
}

// AlumniDashboard is the view model behind the alumni dashboard page.
type AlumniDashboard struct {
	User          *models.Alumni         `json:"user"`
	Events        []*models.Event        `json:"events"`
	Students      []*models.Student      `json:"students"`
	Requests      []*models.Mentorship   `json:"requests"`
	Notifications []*models.Notification `json:"notifications"`
}

// AdminStats holds the headline counters on the admin dashboard.
type AdminStats struct {
	Students int64 `json:"students" example:"42"`
	Alumni   int64 `json:"alumni" example:"17"`
	Total    int64 `json:"total" example:"59"`
	Events   int64 `json:"events" example:"5"`
}

// AdminDashboard is the view model behind the admin dashboard page.
type AdminDashboard struct {
	User   *models.User    `json:"user"`
	Stats  AdminStats      `json:"stats"`
	Users  []*models.User  `json:"users"`
	Events []*models.Event `json:"events"`
}

package dto

import (
	"github.com/arda/gradlink/internal/app/models"
)

// LoginRequest is the login form payload. The login page posts a classic
// urlencoded form, so form tags are bound alongside JSON.
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required" example:"jdoe@gradlink.local"`
	Password string `form:"password" json:"password" binding:"required" example:"secret123"`
}

// ProjectPayload is one portfolio entry in a registration request.
type ProjectPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Image       string `json:"image"`
}

// RegisterStudentRequest creates a student account with its profile extension.
type RegisterStudentRequest struct {
	Username       string           `json:"username" binding:"required" example:"jdoe"`
	Email          string           `json:"email" binding:"required,email" example:"jdoe@gradlink.local"`
	Password       string           `json:"password" binding:"required,min=6"`
	Institute      string           `json:"institute" example:"City University"`
	CurrentYear    *int             `json:"currentYear" example:"3"`
	Course         string           `json:"course" example:"Computer Science"`
	ProfilePicture string           `json:"profilePicture"`
	Skills         []string         `json:"skills"`
	Projects       []ProjectPayload `json:"projects"`
}

// RegisterAlumniRequest creates an alumni account with its profile extension.
type RegisterAlumniRequest struct {
	Username       string           `json:"username" binding:"required" example:"asmith"`
	Email          string           `json:"email" binding:"required,email" example:"asmith@gradlink.local"`
	Password       string           `json:"password" binding:"required,min=6"`
	AlmaMater      string           `json:"almaMater" example:"City University"`
	JobTitle       string           `json:"jobTitle" example:"Software Engineer"`
	JobCompany     string           `json:"jobCompany" example:"Initech"`
	ProfilePicture string           `json:"profilePicture"`
	Skills         []string         `json:"skills"`
	Projects       []ProjectPayload `json:"projects"`
	IsMentor       *bool            `json:"isMentor" example:"true"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	ID       int64           `json:"id" example:"1"`
	Username string          `json:"username" example:"jdoe"`
	Email    string          `json:"email" example:"jdoe@gradlink.local"`
	Role     models.RoleType `json:"role" example:"student"`
}

// ToProjects converts registration payload entries to model projects.
func ToProjects(payload []ProjectPayload) []models.Project {
	if len(payload) == 0 {
		return nil
	}
	projects := make([]models.Project, 0, len(payload))
	for _, p := range payload {
		projects = append(projects, models.Project{
			Title:       p.Title,
			Description: p.Description,
			Link:        p.Link,
			Image:       p.Image,
		})
	}
	return projects
}

package dto

// CreateEventRequest is the admin event form. Field names match the original
// dashboard form inputs.
type CreateEventRequest struct {
	EventName  string `form:"eventName" json:"eventName" binding:"required" example:"Annual Meetup"`
	EventHost  string `form:"eventHost" json:"eventHost" binding:"required" example:"Alumni Club"`
	EventVenue string `form:"eventVenue" json:"eventVenue" binding:"required" example:"Hall A"`
	EventDate  string `form:"eventDate" json:"eventDate" binding:"required" example:"2025-01-01"`
}

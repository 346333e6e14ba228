package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arda/gradlink/internal/app/models/dto"
	"github.com/arda/gradlink/internal/app/services"
	"github.com/arda/gradlink/internal/middleware"
)

// StudentController handles the student dashboard and student-initiated actions
type StudentController struct {
	dashboardService    services.DashboardService
	mentorshipService   services.MentorshipService
	notificationService services.NotificationService
	logger              zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	dashboardService services.DashboardService,
	mentorshipService services.MentorshipService,
	notificationService services.NotificationService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		dashboardService:    dashboardService,
		mentorshipService:   mentorshipService,
		notificationService: notificationService,
		logger:              logger,
	}
}

// Dashboard renders the student dashboard view model
// @Summary Student dashboard
// @Description Own profile, all events sorted by date, available mentors, and the mentors already requested
// @Tags student
// @Produce json
// @Param id path int true "Student user id"
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboard}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/dashboard/{id} [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.StudentDashboard(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// RequestMentorship creates a pending mentorship request
// @Summary Request mentorship
// @Description Creates a new pending request from the student to the mentor and redirects back to the student dashboard
// @Tags student
// @Produce json
// @Param mentorId path int true "Mentor user id"
// @Param studentId path int true "Student user id"
// @Success 302 "Redirect to the student dashboard"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/mentor-request/{mentorId}/{studentId} [post]
func (c *StudentController) RequestMentorship(ctx *gin.Context) {
	mentorID, ok := pathID(ctx, "mentorId")
	if !ok {
		return
	}
	studentID, ok := pathID(ctx, "studentId")
	if !ok {
		return
	}

	if _, err := c.mentorshipService.Request(ctx.Request.Context(), studentID, mentorID); err != nil {
		c.logger.Error().Err(err).Msg("Failed to create mentorship request")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/student/dashboard/%d", studentID))
}

// RegisterEvent posts an event-registration notification to the alumni feed
// @Summary Register for an event
// @Description Posts a notification to the alumni role naming the student and the event, then redirects back
// @Tags student
// @Produce json
// @Param eventId path int true "Event id"
// @Param studentId path int true "Student user id"
// @Success 302 "Redirect to the student dashboard"
// @Failure 404 {object} dto.ErrorResponse "Student or event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/register-event/{eventId}/{studentId} [post]
func (c *StudentController) RegisterEvent(ctx *gin.Context) {
	eventID, ok := pathID(ctx, "eventId")
	if !ok {
		return
	}
	studentID, ok := pathID(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.notificationService.NotifyEventRegistration(ctx.Request.Context(), eventID, studentID); err != nil {
		c.logger.Error().Err(err).Int64("eventID", eventID).Msg("Failed to post event registration notification")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/student/dashboard/%d", studentID))
}

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

// AlumniController handles the alumni dashboard and mentorship acceptance
type AlumniController struct {
	dashboardService  services.DashboardService
	mentorshipService services.MentorshipService
	logger            zerolog.Logger
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(
	dashboardService services.DashboardService,
	mentorshipService services.MentorshipService,
	logger zerolog.Logger,
) *AlumniController {
	return &AlumniController{
		dashboardService:  dashboardService,
		mentorshipService: mentorshipService,
		logger:            logger,
	}
}

// Dashboard renders the alumni dashboard view model
// @Summary Alumni dashboard
// @Description Own profile, all events, all students, pending mentorship requests with mentee detail, and unread alumni notifications
// @Tags alumni
// @Produce json
// @Param id path int true "Alumni user id"
// @Success 200 {object} dto.APIResponse{data=dto.AlumniDashboard}
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/dashboard/{id} [get]
func (c *AlumniController) Dashboard(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.AlumniDashboard(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// AcceptRequest transitions a mentorship request to accepted
// @Summary Accept a mentorship request
// @Description Marks the request accepted (re-accepting is a no-op) and redirects back to the alumni dashboard
// @Tags alumni
// @Produce json
// @Param requestId path int true "Mentorship request id"
// @Param alumniId path int true "Alumni user id"
// @Success 302 "Redirect to the alumni dashboard"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/request-accept/{requestId}/{alumniId} [post]
func (c *AlumniController) AcceptRequest(ctx *gin.Context) {
	requestID, ok := pathID(ctx, "requestId")
	if !ok {
		return
	}
	alumniID, ok := pathID(ctx, "alumniId")
	if !ok {
		return
	}

	if err := c.mentorshipService.Accept(ctx.Request.Context(), requestID); err != nil {
		c.logger.Error().Err(err).Int64("requestID", requestID).Msg("Failed to accept mentorship request")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/alumni/dashboard/%d", alumniID))
}

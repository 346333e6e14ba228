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

// AdminController handles the admin dashboard and record administration
type AdminController struct {
	dashboardService services.DashboardService
	eventService     services.EventService
	userService      services.UserService
	logger           zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	dashboardService services.DashboardService,
	eventService services.EventService,
	userService services.UserService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		dashboardService: dashboardService,
		eventService:     eventService,
		userService:      userService,
		logger:           logger,
	}
}

// Dashboard renders the admin dashboard view model
// @Summary Admin dashboard
// @Description Own profile, headline counters, all non-admin users, and all events
// @Tags admin
// @Produce json
// @Param id path int true "Admin user id"
// @Success 200 {object} dto.APIResponse{data=dto.AdminDashboard}
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dashboard/{id} [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.AdminDashboard(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// CreateEvent creates a new event from the dashboard form
// @Summary Create an event
// @Description Creates an event from the dashboard form and redirects back to the admin dashboard
// @Tags admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param adminId path int true "Admin user id"
// @Param eventName formData string true "Event name"
// @Param eventHost formData string true "Hosting organisation"
// @Param eventVenue formData string true "Venue"
// @Param eventDate formData string true "Date (YYYY-MM-DD)"
// @Success 302 "Redirect to the admin dashboard"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid event fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/events/create/{adminId} [post]
func (c *AdminController) CreateEvent(ctx *gin.Context) {
	adminID, ok := pathID(ctx, "adminId")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "All event fields are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	if _, err := c.eventService.Create(ctx.Request.Context(), &req); err != nil {
		c.logger.Error().Err(err).Str("name", req.EventName).Msg("Failed to create event")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/admin/dashboard/%d", adminID))
}

// DeleteEvent deletes an event
// @Summary Delete an event
// @Description Deletes the event (deleting an absent id succeeds) and redirects back to the admin dashboard
// @Tags admin
// @Produce json
// @Param eventId path int true "Event id"
// @Param adminId path int true "Admin user id"
// @Success 302 "Redirect to the admin dashboard"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/events/delete/{eventId}/{adminId} [post]
func (c *AdminController) DeleteEvent(ctx *gin.Context) {
	eventID, ok := pathID(ctx, "eventId")
	if !ok {
		return
	}
	adminID, ok := pathID(ctx, "adminId")
	if !ok {
		return
	}

	if err := c.eventService.Delete(ctx.Request.Context(), eventID); err != nil {
		c.logger.Error().Err(err).Int64("eventID", eventID).Msg("Failed to delete event")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/admin/dashboard/%d", adminID))
}

// DeleteUser deletes a user and its role extension
// @Summary Delete a user
// @Description Deletes the user (deleting an absent id succeeds) and redirects back to the admin dashboard
// @Tags admin
// @Produce json
// @Param userId path int true "User id"
// @Param adminId path int true "Admin user id"
// @Success 302 "Redirect to the admin dashboard"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users/delete/{userId}/{adminId} [post]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	adminID, ok := pathID(ctx, "adminId")
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), userID); err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to delete user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/admin/dashboard/%d", adminID))
}

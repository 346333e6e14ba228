package services

import (
	"context"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/models/dto"
	"github.com/arda/gradlink/internal/app/repositories"
	"github.com/arda/gradlink/internal/pkg/apperrors"
)

// DashboardService assembles the per-role dashboard view models. Each
// dashboard is a sequence of independent reads with no transaction across
// them; concurrent writes may or may not be visible within one composition.
type DashboardService interface {
	StudentDashboard(ctx context.Context, studentID int64) (*dto.StudentDashboard, error)
	AlumniDashboard(ctx context.Context, alumniID int64) (*dto.AlumniDashboard, error)
	AdminDashboard(ctx context.Context, adminID int64) (*dto.AdminDashboard, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	userRepo          repositories.IUserRepository
	eventRepo         repositories.IEventRepository
	mentorshipService MentorshipService
	notificationRepo  repositories.INotificationRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	userRepo repositories.IUserRepository,
	eventRepo repositories.IEventRepository,
	mentorshipService MentorshipService,
	notificationRepo repositories.INotificationRepository,
) DashboardService {
	return &dashboardServiceImpl{
		userRepo:          userRepo,
		eventRepo:         eventRepo,
		mentorshipService: mentorshipService,
		notificationRepo:  notificationRepo,
	}
}

// StudentDashboard composes the student view: own profile, all events sorted
// by date, mentors, and the set of mentors already asked. The profile lookup
// runs first and short-circuits before any secondary read.
func (s *dashboardServiceImpl) StudentDashboard(ctx context.Context, studentID int64) (*dto.StudentDashboard, error) {
	student, err := s.userRepo.GetStudentByUserID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	mentors, err := s.userRepo.ListMentors(ctx)
	if err != nil {
		return nil, err
	}

	pendingMentorIDs, err := s.mentorshipService.RequestedMentorIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboard{
		User:             student,
		Events:           events,
		Mentors:          mentors,
		PendingMentorIDs: pendingMentorIDs,
	}, nil
}

// AlumniDashboard composes the alumni view: own profile, events, students,
// pending requests with mentee detail, and unread alumni notifications.
func (s *dashboardServiceImpl) AlumniDashboard(ctx context.Context, alumniID int64) (*dto.AlumniDashboard, error) {
	alumni, err := s.userRepo.GetAlumniByUserID(ctx, alumniID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.mentorshipService.PendingForMentor(ctx, alumniID)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.ListUnreadForRole(ctx, models.RoleAlumni)
	if err != nil {
		return nil, err
	}

	return &dto.AlumniDashboard{
		User:          alumni,
		Events:        events,
		Students:      students,
		Requests:      requests,
		Notifications: notifications,
	}, nil
}

// AdminDashboard composes the admin view: own profile, headline counts, the
// full user list excluding admins, and events.
func (s *dashboardServiceImpl) AdminDashboard(ctx context.Context, adminID int64) (*dto.AdminDashboard, error) {
	admin, err := s.userRepo.GetUserByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.RoleAdmin {
		// A non-admin id in the admin path is treated the same as no record.
		return nil, apperrors.ErrAdminNotFound
	}

	studentCount, err := s.userRepo.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	alumniCount, err := s.userRepo.CountByRole(ctx, models.RoleAlumni)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListUsersExcludingRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboard{
		User: admin,
		Stats: dto.AdminStats{
			Students: studentCount,
			Alumni:   alumniCount,
			Total:    studentCount + alumniCount,
			Events:   int64(len(events)),
		},
		Users:  users,
		Events: events,
	}, nil
}

package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arda/gradlink/internal/app/controllers"
	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/models/dto"
	"github.com/arda/gradlink/internal/app/routes"
)

// Service fakes with canned results; each records the arguments it saw so
// tests can assert the handler passed path segments through correctly.

type fakeAuthService struct {
	user *models.User
	err  error

	gotEmail, gotPassword string
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (*models.User, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.user, f.err
}

func (f *fakeAuthService) RegisterStudent(_ context.Context, _ *dto.RegisterStudentRequest) (*models.User, error) {
	return f.user, f.err
}

func (f *fakeAuthService) RegisterAlumni(_ context.Context, _ *dto.RegisterAlumniRequest) (*models.User, error) {
	return f.user, f.err
}

type fakeDashboardService struct {
	student *dto.StudentDashboard
	alumni  *dto.AlumniDashboard
	admin   *dto.AdminDashboard
	err     error

	gotID int64
}

func (f *fakeDashboardService) StudentDashboard(_ context.Context, id int64) (*dto.StudentDashboard, error) {
	f.gotID = id
	return f.student, f.err
}

func (f *fakeDashboardService) AlumniDashboard(_ context.Context, id int64) (*dto.AlumniDashboard, error) {
	f.gotID = id
	return f.alumni, f.err
}

func (f *fakeDashboardService) AdminDashboard(_ context.Context, id int64) (*dto.AdminDashboard, error) {
	f.gotID = id
	return f.admin, f.err
}

type fakeMentorshipService struct {
	err error

	gotMenteeID, gotMentorID, gotRequestID int64
}

func (f *fakeMentorshipService) Request(_ context.Context, menteeID, mentorID int64) (*models.Mentorship, error) {
	f.gotMenteeID, f.gotMentorID = menteeID, mentorID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Mentorship{ID: 1, MenteeID: menteeID, MentorID: mentorID, Status: models.MentorshipPending}, nil
}

func (f *fakeMentorshipService) Accept(_ context.Context, requestID int64) error {
	f.gotRequestID = requestID
	return f.err
}

func (f *fakeMentorshipService) RequestedMentorIDs(_ context.Context, _ int64) ([]int64, error) {
	return nil, f.err
}

func (f *fakeMentorshipService) PendingForMentor(_ context.Context, _ int64) ([]*models.Mentorship, error) {
	return nil, f.err
}

type fakeNotificationService struct {
	err error

	gotEventID, gotStudentID int64
}

func (f *fakeNotificationService) Post(_ context.Context, message string, role models.RoleType) (*models.Notification, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Notification{Message: message, RecipientRole: role}, nil
}

func (f *fakeNotificationService) UnreadForRole(_ context.Context, _ models.RoleType) ([]*models.Notification, error) {
	return nil, f.err
}

func (f *fakeNotificationService) NotifyEventRegistration(_ context.Context, eventID, studentID int64) error {
	f.gotEventID, f.gotStudentID = eventID, studentID
	return f.err
}

type fakeEventService struct {
	err error

	gotReq *dto.CreateEventRequest
	gotID  int64
}

func (f *fakeEventService) Create(_ context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.Event{ID: 1, Name: req.EventName}, nil
}

func (f *fakeEventService) List(_ context.Context) ([]*models.Event, error) {
	return nil, f.err
}

func (f *fakeEventService) Delete(_ context.Context, id int64) error {
	f.gotID = id
	return f.err
}

type fakeUserService struct {
	err   error
	gotID int64
}

func (f *fakeUserService) Delete(_ context.Context, id int64) error {
	f.gotID = id
	return f.err
}

type testHarness struct {
	router        *gin.Engine
	auth          *fakeAuthService
	dashboards    *fakeDashboardService
	mentorships   *fakeMentorshipService
	notifications *fakeNotificationService
	events        *fakeEventService
	users         *fakeUserService
}

func newHarness() *testHarness {
	gin.SetMode(gin.TestMode)

	h := &testHarness{
		auth:          &fakeAuthService{},
		dashboards:    &fakeDashboardService{},
		mentorships:   &fakeMentorshipService{},
		notifications: &fakeNotificationService{},
		events:        &fakeEventService{},
		users:         &fakeUserService{},
	}

	lgr := zerolog.Nop()
	h.router = gin.New()
	routes.SetupRouter(h.router,
		controllers.NewAuthController(h.auth, lgr),
		controllers.NewStudentController(h.dashboards, h.mentorships, h.notifications, lgr),
		controllers.NewAlumniController(h.dashboards, h.mentorships, lgr),
		controllers.NewAdminController(h.dashboards, h.events, h.users, lgr),
	)
	return h
}

func (h *testHarness) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *testHarness) postJSON(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *testHarness) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

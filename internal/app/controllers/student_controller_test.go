package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/models/dto"
	"github.com/arda/gradlink/internal/pkg/apperrors"
)

func TestStudentDashboardOK(t *testing.T) {
	h := newHarness()
	h.dashboards.student = &dto.StudentDashboard{
		User: &models.Student{UserID: 7, User: &models.User{ID: 7, Username: "jdoe"}},
	}

	w := h.get(t, "/student/dashboard/7")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), h.dashboards.gotID)
	assert.Contains(t, w.Body.String(), `"jdoe"`)
}

func TestStudentDashboardNotFound(t *testing.T) {
	h := newHarness()
	h.dashboards.err = apperrors.ErrStudentNotFound

	w := h.get(t, "/student/dashboard/99")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentDashboardBadID(t *testing.T) {
	h := newHarness()

	w := h.get(t, "/student/dashboard/abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestMentorshipRedirects(t *testing.T) {
	h := newHarness()

	w := h.postForm(t, "/student/mentor-request/4/7", nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/student/dashboard/7", w.Header().Get("Location"))
	// First segment is the mentor, second the requesting student.
	assert.Equal(t, int64(7), h.mentorships.gotMenteeID)
	assert.Equal(t, int64(4), h.mentorships.gotMentorID)
}

func TestRegisterEventRedirects(t *testing.T) {
	h := newHarness()

	w := h.postForm(t, "/student/register-event/5/7", nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/student/dashboard/7", w.Header().Get("Location"))
	assert.Equal(t, int64(5), h.notifications.gotEventID)
	assert.Equal(t, int64(7), h.notifications.gotStudentID)
}

func TestRegisterEventMissingEvent(t *testing.T) {
	h := newHarness()
	h.notifications.err = apperrors.ErrEventNotFound

	w := h.postForm(t, "/student/register-event/99/7", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

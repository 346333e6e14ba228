package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/pkg/apperrors"
)

func loginForm(email, password string) url.Values {
	return url.Values{"email": {email}, "password": {password}}
}

func TestLoginRedirectsByRole(t *testing.T) {
	cases := []struct {
		role models.RoleType
		want string
	}{
		{models.RoleStudent, "/student/dashboard/7"},
		{models.RoleAlumni, "/alumni/dashboard/7"},
		{models.RoleAdmin, "/admin/dashboard/7"},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			h := newHarness()
			h.auth.user = &models.User{ID: 7, Username: "jdoe", Role: tc.role}

			w := h.postForm(t, "/login", loginForm("jdoe@gradlink.local", "secret123"))

			require.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tc.want, w.Header().Get("Location"))
			assert.Equal(t, "jdoe@gradlink.local", h.auth.gotEmail)
		})
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	h := newHarness()
	h.auth.err = apperrors.ErrInvalidCredentials

	w := h.postForm(t, "/login", loginForm("jdoe@gradlink.local", "wrong"))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Wrong credentials. Please try again.")
}

func TestLoginMissingFields(t *testing.T) {
	h := newHarness()

	w := h.postForm(t, "/login", url.Values{"email": {"jdoe@gradlink.local"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUnroutableRole(t *testing.T) {
	h := newHarness()
	h.auth.user = &models.User{ID: 7, Role: models.RoleType("ghost")}

	w := h.postForm(t, "/login", loginForm("ghost@gradlink.local", "secret123"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "No dashboard assigned for this role")
}

func TestRegisterStudentCreated(t *testing.T) {
	h := newHarness()
	h.auth.user = &models.User{ID: 3, Username: "jdoe", Email: "jdoe@gradlink.local", Role: models.RoleStudent}

	w := h.postJSON(t, "/register/student",
		`{"username":"jdoe","email":"jdoe@gradlink.local","password":"secret123"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"student"`)
}

func TestRegisterStudentMalformedBody(t *testing.T) {
	h := newHarness()

	w := h.postJSON(t, "/register/student", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterAlumniDuplicateEmail(t *testing.T) {
	h := newHarness()
	h.auth.err = apperrors.ErrEmailAlreadyExists

	w := h.postJSON(t, "/register/alumni",
		`{"username":"asmith","email":"asmith@gradlink.local","password":"secret123"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

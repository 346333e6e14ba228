package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/models/dto"
	"github.com/arda/gradlink/internal/pkg/apperrors"
)

func newAuthService(repo *fakeUserRepo) AuthService {
	return NewAuthService(repo, zerolog.Nop())
}

func TestRegisterStudent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	year := 3
	user, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Username:    "jdoe",
		Email:       "jdoe@gradlink.local",
		Password:    "secret123",
		Institute:   "City University",
		CurrentYear: &year,
		Course:      "Computer Science",
		Skills:      []string{"go", "sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	student, err := repo.GetStudentByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "City University", student.Institute)
	assert.Equal(t, []string{"go", "sql"}, student.Skills)
}

func TestRegisterStudentDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Username: "jdoe",
		Email:    "jdoe@gradlink.local",
		Password: "secret123",
	})
	require.NoError(t, err)

	student, err := repo.GetStudentByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultInstitute, student.Institute)
	assert.Equal(t, models.DefaultProfilePicture, student.ProfilePicture)
}

func TestRegisterStudentValidation(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	cases := []struct {
		name string
		req  dto.RegisterStudentRequest
	}{
		{"missing username", dto.RegisterStudentRequest{Email: "a@b.c", Password: "x"}},
		{"missing email", dto.RegisterStudentRequest{Username: "a", Password: "x"}},
		{"missing password", dto.RegisterStudentRequest{Username: "a", Email: "a@b.c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterStudent(context.Background(), &tc.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestRegisterAlumniMentorDefault(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, err := svc.RegisterAlumni(context.Background(), &dto.RegisterAlumniRequest{
		Username:   "asmith",
		Email:      "asmith@gradlink.local",
		Password:   "secret123",
		AlmaMater:  "City University",
		JobTitle:   "Engineer",
		JobCompany: "Initech",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAlumni, user.Role)

	alumni, err := repo.GetAlumniByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, alumni.IsMentor, "alumni are mentors unless they opt out")
	assert.Equal(t, "Engineer", alumni.CurrentJob.Title)

	optOut := false
	user2, err := svc.RegisterAlumni(context.Background(), &dto.RegisterAlumniRequest{
		Username: "bjones",
		Email:    "bjones@gradlink.local",
		Password: "secret123",
		IsMentor: &optOut,
	})
	require.NoError(t, err)

	alumni2, err := repo.GetAlumniByUserID(context.Background(), user2.ID)
	require.NoError(t, err)
	assert.False(t, alumni2.IsMentor)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	req := dto.RegisterStudentRequest{Username: "jdoe", Email: "jdoe@gradlink.local", Password: "secret123"}
	_, err := svc.RegisterStudent(context.Background(), &req)
	require.NoError(t, err)

	_, err = svc.RegisterStudent(context.Background(), &req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Username: "jdoe",
		Email:    "jdoe@gradlink.local",
		Password: "secret123",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "jdoe@gradlink.local", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Username: "jdoe",
		Email:    "jdoe@gradlink.local",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), "nobody@gradlink.local", "secret123")
	_, wrongErr := svc.Login(context.Background(), "jdoe@gradlink.local", "wrong")

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error(),
		"unknown email and wrong password must produce identical errors")
}

func TestDashboardPath(t *testing.T) {
	cases := []struct {
		role models.RoleType
		want string
	}{
		{models.RoleStudent, "/student/dashboard/7"},
		{models.RoleAlumni, "/alumni/dashboard/7"},
		{models.RoleAdmin, "/admin/dashboard/7"},
	}
	for _, tc := range cases {
		path, err := DashboardPath(&models.User{ID: 7, Role: tc.role})
		require.NoError(t, err)
		assert.Equal(t, tc.want, path)
	}

	_, err := DashboardPath(&models.User{ID: 7, Role: models.RoleType("ghost")})
	assert.ErrorIs(t, err, apperrors.ErrUnroutableRole)
}

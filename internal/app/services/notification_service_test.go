package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/pkg/apperrors"
)

func newNotificationFixture() (*fakeNotificationRepo, *fakeUserRepo, *fakeEventRepo, NotificationService) {
	notifRepo := &fakeNotificationRepo{}
	userRepo := newFakeUserRepo()
	eventRepo := &fakeEventRepo{}
	svc := NewNotificationService(notifRepo, userRepo, eventRepo, zerolog.Nop())
	return notifRepo, userRepo, eventRepo, svc
}

func TestNotificationPost(t *testing.T) {
	_, _, _, svc := newNotificationFixture()

	n, err := svc.Post(context.Background(), "hello alumni", models.RoleAlumni)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAlumni, n.RecipientRole)
	assert.False(t, n.IsRead)

	feed, err := svc.UnreadForRole(context.Background(), models.RoleAlumni)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "hello alumni", feed[0].Message)
}

func TestNotificationPostValidation(t *testing.T) {
	_, _, _, svc := newNotificationFixture()

	_, err := svc.Post(context.Background(), "   ", models.RoleAlumni)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Post(context.Background(), "hello", models.RoleType("ghost"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestNotificationFeedScopedToRole(t *testing.T) {
	_, _, _, svc := newNotificationFixture()

	ctx := context.Background()
	_, err := svc.Post(ctx, "for alumni", models.RoleAlumni)
	require.NoError(t, err)
	_, err = svc.Post(ctx, "for students", models.RoleStudent)
	require.NoError(t, err)

	feed, err := svc.UnreadForRole(ctx, models.RoleStudent)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "for students", feed[0].Message)
}

func TestNotifyEventRegistration(t *testing.T) {
	_, userRepo, eventRepo, svc := newNotificationFixture()

	ctx := context.Background()
	user := &models.User{Username: "jdoe", Email: "jdoe@gradlink.local", Role: models.RoleStudent}
	_, err := userRepo.CreateUser(ctx, user)
	require.NoError(t, err)
	require.NoError(t, userRepo.CreateStudent(ctx, &models.Student{UserID: user.ID}))

	event := &models.Event{Name: "Annual Meetup", HostedBy: "Alumni Club", Venue: "Hall A", Date: time.Now()}
	_, err = eventRepo.Create(ctx, event)
	require.NoError(t, err)

	require.NoError(t, svc.NotifyEventRegistration(ctx, event.ID, user.ID))

	feed, err := svc.UnreadForRole(ctx, models.RoleAlumni)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, `jdoe has registered for the event: "Annual Meetup".`, feed[0].Message)
}

func TestNotifyEventRegistrationMissingRecords(t *testing.T) {
	_, userRepo, _, svc := newNotificationFixture()

	ctx := context.Background()
	err := svc.NotifyEventRegistration(ctx, 1, 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	user := &models.User{Username: "jdoe", Email: "jdoe@gradlink.local", Role: models.RoleStudent}
	_, err = userRepo.CreateUser(ctx, user)
	require.NoError(t, err)
	require.NoError(t, userRepo.CreateStudent(ctx, &models.Student{UserID: user.ID}))

	err = svc.NotifyEventRegistration(ctx, 99, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	feed, err := svc.UnreadForRole(ctx, models.RoleAlumni)
	require.NoError(t, err)
	assert.Empty(t, feed, "failed registrations post nothing")
}

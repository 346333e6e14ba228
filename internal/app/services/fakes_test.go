package services

import (
	"context"
	"sort"
	"time"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. They mirror the SQL
// repositories' behavior: sentinel errors for missing rows, idempotent
// deletes, and the same ordering the queries produce.

type fakeUserRepo struct {
	users    map[int64]*models.User
	students map[int64]*models.Student
	alumni   map[int64]*models.Alumni
	nextID   int64

	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[int64]*models.User),
		students: make(map[int64]*models.Student),
		alumni:   make(map[int64]*models.Alumni),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *models.User) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.users, id)
	delete(f.students, id)
	delete(f.alumni, id)
	return nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role models.RoleType) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) ListUsersExcludingRole(_ context.Context, role models.RoleType) ([]*models.User, error) {
	var users []*models.User
	for _, u := range f.users {
		if u.Role != role {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserRepo) CreateStudent(_ context.Context, student *models.Student) error {
	if f.failWith != nil {
		return f.failWith
	}
	student.User = f.users[student.UserID]
	f.students[student.UserID] = student
	return nil
}

func (f *fakeUserRepo) GetStudentByUserID(_ context.Context, userID int64) (*models.Student, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	s, ok := f.students[userID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeUserRepo) ListStudents(_ context.Context) ([]*models.Student, error) {
	var students []*models.Student
	for _, s := range f.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].UserID < students[j].UserID })
	return students, nil
}

func (f *fakeUserRepo) CreateAlumni(_ context.Context, alumni *models.Alumni) error {
	if f.failWith != nil {
		return f.failWith
	}
	alumni.User = f.users[alumni.UserID]
	f.alumni[alumni.UserID] = alumni
	return nil
}

func (f *fakeUserRepo) GetAlumniByUserID(_ context.Context, userID int64) (*models.Alumni, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	a, ok := f.alumni[userID]
	if !ok {
		return nil, apperrors.ErrAlumniNotFound
	}
	return a, nil
}

func (f *fakeUserRepo) ListMentors(_ context.Context) ([]*models.Alumni, error) {
	var mentors []*models.Alumni
	for _, a := range f.alumni {
		if a.IsMentor {
			mentors = append(mentors, a)
		}
	}
	sort.Slice(mentors, func(i, j int) bool { return mentors[i].UserID < mentors[j].UserID })
	return mentors, nil
}

type fakeEventRepo struct {
	events []*models.Event
	nextID int64
}

func (f *fakeEventRepo) Create(_ context.Context, event *models.Event) (int64, error) {
	f.nextID++
	event.ID = f.nextID
	f.events = append(f.events, event)
	return event.ID, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (f *fakeEventRepo) List(_ context.Context) ([]*models.Event, error) {
	events := make([]*models.Event, len(f.events))
	copy(events, f.events)
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeEventRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.events)), nil
}

type fakeMentorshipRepo struct {
	requests []*models.Mentorship
	nextID   int64
}

func (f *fakeMentorshipRepo) Create(_ context.Context, menteeID, mentorID int64) (*models.Mentorship, error) {
	f.nextID++
	m := &models.Mentorship{
		ID:        f.nextID,
		MenteeID:  menteeID,
		MentorID:  mentorID,
		Status:    models.MentorshipPending,
		CreatedAt: time.Now(),
	}
	f.requests = append(f.requests, m)
	return m, nil
}

func (f *fakeMentorshipRepo) Accept(_ context.Context, requestID int64) error {
	for _, m := range f.requests {
		if m.ID == requestID {
			m.Status = models.MentorshipAccepted
			return nil
		}
	}
	return apperrors.ErrMentorshipNotFound
}

func (f *fakeMentorshipRepo) ListForMentee(_ context.Context, menteeID int64) ([]*models.Mentorship, error) {
	var out []*models.Mentorship
	for _, m := range f.requests {
		if m.MenteeID == menteeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMentorshipRepo) ListPendingForMentor(_ context.Context, mentorID int64) ([]*models.Mentorship, error) {
	var out []*models.Mentorship
	for _, m := range f.requests {
		if m.MentorID == mentorID && m.Status == models.MentorshipPending {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	nextID        int64
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) (int64, error) {
	f.nextID++
	notification.ID = f.nextID
	notification.CreatedAt = time.Now()
	f.notifications = append(f.notifications, notification)
	return notification.ID, nil
}

func (f *fakeNotificationRepo) ListUnreadForRole(_ context.Context, role models.RoleType) ([]*models.Notification, error) {
	var out []*models.Notification
	for i := len(f.notifications) - 1; i >= 0; i-- {
		n := f.notifications[i]
		if n.RecipientRole == role && !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

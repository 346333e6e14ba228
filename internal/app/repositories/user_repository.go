package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/repositories/user"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	// Base users
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	CountByRole(ctx context.Context, role models.RoleType) (int64, error)
	ListUsersExcludingRole(ctx context.Context, role models.RoleType) ([]*models.User, error)

	// Student extension
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)

	// Alumni extension
	CreateAlumni(ctx context.Context, alumni *models.Alumni) error
	GetAlumniByUserID(ctx context.Context, userID int64) (*models.Alumni, error)
	ListMentors(ctx context.Context) ([]*models.Alumni, error)
}

// UserRepository combines the per-role user repositories
type UserRepository struct {
	common  *user.Repository
	student *user.StudentRepository
	alumni  *user.AlumniRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		common:  user.NewRepository(db),
		student: user.NewStudentRepository(db),
		alumni:  user.NewAlumniRepository(db),
	}
}

// CreateUser creates the base user row
func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	return r.common.CreateUser(ctx, u)
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.GetUserByID(ctx, id)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.common.GetUserByEmail(ctx, email)
}

// DeleteUser deletes a user and its extension row
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.common.DeleteUser(ctx, id)
}

// CountByRole counts users carrying a role
func (r *UserRepository) CountByRole(ctx context.Context, role models.RoleType) (int64, error) {
	return r.common.CountByRole(ctx, role)
}

// ListUsersExcludingRole lists all users except those carrying a role
func (r *UserRepository) ListUsersExcludingRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	return r.common.ListUsersExcludingRole(ctx, role)
}

// CreateStudent creates a student extension row
func (r *UserRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	return r.student.CreateStudent(ctx, student)
}

// GetStudentByUserID retrieves a student by user ID
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.student.GetStudentByUserID(ctx, userID)
}

// ListStudents lists all students
func (r *UserRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return r.student.ListStudents(ctx)
}

// CreateAlumni creates an alumni extension row
func (r *UserRepository) CreateAlumni(ctx context.Context, alumni *models.Alumni) error {
	return r.alumni.CreateAlumni(ctx, alumni)
}

// GetAlumniByUserID retrieves an alumni by user ID
func (r *UserRepository) GetAlumniByUserID(ctx context.Context, userID int64) (*models.Alumni, error) {
	return r.alumni.GetAlumniByUserID(ctx, userID)
}

// ListMentors lists alumni flagged as mentors
func (r *UserRepository) ListMentors(ctx context.Context) ([]*models.Alumni, error) {
	return r.alumni.ListMentors(ctx)
}

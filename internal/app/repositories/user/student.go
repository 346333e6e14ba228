package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/pkg/apperrors"
	"github.com/arda/gradlink/internal/pkg/logger"
)

// StudentRepository handles the student extension table.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = "s.user_id, s.institute, s.current_year, s.course, s.profile_picture, s.skills, s.projects, " +
	"u.id, u.username, u.email, u.password, u.role, u.created_at"

// CreateStudent creates the student extension row for an existing user
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	projects, err := marshalProjects(student.Projects)
	if err != nil {
		return err
	}

	skills := student.Skills
	if skills == nil {
		skills = []string{}
	}

	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "institute", "current_year", "course", "profile_picture", "skills", "projects").
		Values(student.UserID, student.Institute, student.CurrentYear, student.Course,
			student.ProfilePicture, skills, projects).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", student.UserID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetStudentByUserID retrieves a student profile with its base user attached
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// ListStudents retrieves every student profile
func (r *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students s").
		Join("users u ON u.id = s.user_id").
		OrderBy("u.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// scanStudent scans one student row with its joined user columns.
func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{User: &models.User{}}
	var projects []byte

	err := row.Scan(
		&student.UserID, &student.Institute, &student.CurrentYear, &student.Course,
		&student.ProfilePicture, &student.Skills, &projects,
		&student.User.ID, &student.User.Username, &student.User.Email,
		&student.User.Password, &student.User.Role, &student.User.CreatedAt)
	if err != nil {
		return nil, err
	}

	student.Projects, err = unmarshalProjects(projects)
	if err != nil {
		return nil, err
	}

	return student, nil
}

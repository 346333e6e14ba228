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

// AlumniRepository handles the alumni extension table.
type AlumniRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const alumniColumns = "a.user_id, a.alma_mater, a.job_title, a.job_company, a.skills, a.projects, " +
	"a.is_mentor, a.profile_picture, u.id, u.username, u.email, u.password, u.role, u.created_at"

// CreateAlumni creates the alumni extension row for an existing user
func (r *AlumniRepository) CreateAlumni(ctx context.Context, alumni *models.Alumni) error {
	projects, err := marshalProjects(alumni.Projects)
	if err != nil {
		return err
	}

	skills := alumni.Skills
	if skills == nil {
		skills = []string{}
	}

	sql, args, err := r.sb.Insert("alumni").
		Columns("user_id", "alma_mater", "job_title", "job_company", "skills", "projects", "is_mentor", "profile_picture").
		Values(alumni.UserID, alumni.AlmaMater, alumni.CurrentJob.Title, alumni.CurrentJob.Company,
			skills, projects, alumni.IsMentor, alumni.ProfilePicture).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create alumni query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", alumni.UserID).Msg("Error executing create alumni query")
		return fmt.Errorf("error creating alumni: %w", err)
	}

	return nil
}

// GetAlumniByUserID retrieves an alumni profile with its base user attached
func (r *AlumniRepository) GetAlumniByUserID(ctx context.Context, userID int64) (*models.Alumni, error) {
	sql, args, err := r.sb.Select(alumniColumns).
		From("alumni a").
		Join("users u ON u.id = a.user_id").
		Where(squirrel.Eq{"a.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get alumni query: %w", err)
	}

	alumni, err := scanAlumni(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumniNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning alumni row")
		return nil, fmt.Errorf("error getting alumni: %w", err)
	}

	return alumni, nil
}

// ListMentors retrieves every alumni profile flagged as a mentor
func (r *AlumniRepository) ListMentors(ctx context.Context) ([]*models.Alumni, error) {
	return r.list(ctx, squirrel.Eq{"a.is_mentor": true})
}

func (r *AlumniRepository) list(ctx context.Context, pred interface{}) ([]*models.Alumni, error) {
	builder := r.sb.Select(alumniColumns).
		From("alumni a").
		Join("users u ON u.id = a.user_id").
		OrderBy("u.id ASC")
	if pred != nil {
		builder = builder.Where(pred)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list alumni query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list alumni query")
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}
	defer rows.Close()

	var result []*models.Alumni
	for rows.Next() {
		alumni, err := scanAlumni(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning alumni row: %w", err)
		}
		result = append(result, alumni)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alumni rows: %w", err)
	}

	return result, nil
}

// scanAlumni scans one alumni row with its joined user columns.
func scanAlumni(row pgx.Row) (*models.Alumni, error) {
	alumni := &models.Alumni{User: &models.User{}}
	var projects []byte

	err := row.Scan(
		&alumni.UserID, &alumni.AlmaMater, &alumni.CurrentJob.Title, &alumni.CurrentJob.Company,
		&alumni.Skills, &projects, &alumni.IsMentor, &alumni.ProfilePicture,
		&alumni.User.ID, &alumni.User.Username, &alumni.User.Email,
		&alumni.User.Password, &alumni.User.Role, &alumni.User.CreatedAt)
	if err != nil {
		return nil, err
	}

	alumni.Projects, err = unmarshalProjects(projects)
	if err != nil {
		return nil, err
	}

	return alumni, nil
}

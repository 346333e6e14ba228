package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/pkg/apperrors"
	"github.com/arda/gradlink/internal/pkg/logger"
)

// IMentorshipRepository defines the interface for mentorship database operations
type IMentorshipRepository interface {
	Create(ctx context.Context, menteeID, mentorID int64) (*models.Mentorship, error)
	Accept(ctx context.Context, requestID int64) error
	ListForMentee(ctx context.Context, menteeID int64) ([]*models.Mentorship, error)
	ListPendingForMentor(ctx context.Context, mentorID int64) ([]*models.Mentorship, error)
}

// MentorshipRepository handles mentorship database operations
type MentorshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new pending request. Duplicate requests for the same
// mentee/mentor pair are allowed; every call creates a new row.
func (r *MentorshipRepository) Create(ctx context.Context, menteeID, mentorID int64) (*models.Mentorship, error) {
	sql, args, err := r.sb.Insert("mentorships").
		Columns("mentee_id", "mentor_id", "status").
		Values(menteeID, mentorID, models.MentorshipPending).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create mentorship query: %w", err)
	}

	mentorship := &models.Mentorship{
		MenteeID: menteeID,
		MentorID: mentorID,
		Status:   models.MentorshipPending,
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&mentorship.ID, &mentorship.CreatedAt); err != nil {
		logger.Error().Err(err).
			Int64("menteeID", menteeID).
			Int64("mentorID", mentorID).
			Msg("Error executing create mentorship query")
		return nil, fmt.Errorf("error creating mentorship request: %w", err)
	}

	return mentorship, nil
}

// Accept transitions a request to accepted regardless of its current status,
// so re-accepting an already accepted request succeeds.
func (r *MentorshipRepository) Accept(ctx context.Context, requestID int64) error {
	sql, args, err := r.sb.Update("mentorships").
		Set("status", models.MentorshipAccepted).
		Where(squirrel.Eq{"id": requestID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build accept mentorship query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("requestID", requestID).Msg("Error executing accept mentorship query")
		return fmt.Errorf("error accepting mentorship request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipNotFound
	}

	return nil
}

// ListForMentee retrieves all requests sent by a mentee, any status.
func (r *MentorshipRepository) ListForMentee(ctx context.Context, menteeID int64) ([]*models.Mentorship, error) {
	sql, args, err := r.sb.Select("id", "mentee_id", "mentor_id", "status", "created_at").
		From("mentorships").
		Where(squirrel.Eq{"mentee_id": menteeID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list mentorships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("menteeID", menteeID).Msg("Error executing list mentorships query")
		return nil, fmt.Errorf("error listing mentorship requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.Mentorship
	for rows.Next() {
		m := &models.Mentorship{}
		if err := rows.Scan(&m.ID, &m.MenteeID, &m.MentorID, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning mentorship row: %w", err)
		}
		requests = append(requests, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentorship rows: %w", err)
	}

	return requests, nil
}

// ListPendingForMentor retrieves pending requests addressed to a mentor with
// each mentee's student profile resolved for display.
func (r *MentorshipRepository) ListPendingForMentor(ctx context.Context, mentorID int64) ([]*models.Mentorship, error) {
	sql, args, err := r.sb.Select(
		"m.id", "m.mentee_id", "m.mentor_id", "m.status", "m.created_at",
		"s.institute", "s.current_year", "s.course", "s.profile_picture", "s.skills", "s.projects",
		"u.id", "u.username", "u.email", "u.role", "u.created_at").
		From("mentorships m").
		Join("students s ON s.user_id = m.mentee_id").
		Join("users u ON u.id = m.mentee_id").
		Where(squirrel.Eq{"m.mentor_id": mentorID, "m.status": models.MentorshipPending}).
		OrderBy("m.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build pending mentorships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("mentorID", mentorID).Msg("Error executing pending mentorships query")
		return nil, fmt.Errorf("error listing pending mentorship requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.Mentorship
	for rows.Next() {
		m := &models.Mentorship{Mentee: &models.Student{User: &models.User{}}}
		var projects []byte

		err := rows.Scan(
			&m.ID, &m.MenteeID, &m.MentorID, &m.Status, &m.CreatedAt,
			&m.Mentee.Institute, &m.Mentee.CurrentYear, &m.Mentee.Course,
			&m.Mentee.ProfilePicture, &m.Mentee.Skills, &projects,
			&m.Mentee.User.ID, &m.Mentee.User.Username, &m.Mentee.User.Email,
			&m.Mentee.User.Role, &m.Mentee.User.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning pending mentorship row: %w", err)
		}

		m.Mentee.UserID = m.MenteeID
		if len(projects) > 0 {
			if err := json.Unmarshal(projects, &m.Mentee.Projects); err != nil {
				return nil, fmt.Errorf("failed to decode mentee projects: %w", err)
			}
		}

		requests = append(requests, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending mentorship rows: %w", err)
	}

	return requests, nil
}

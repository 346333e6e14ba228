package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/repositories"
)

// MentorshipService drives the mentorship request lifecycle:
// pending (initial) → accepted (terminal). There is no rejected state.
type MentorshipService interface {
	Request(ctx context.Context, menteeID, mentorID int64) (*models.Mentorship, error)
	Accept(ctx context.Context, requestID int64) error
	RequestedMentorIDs(ctx context.Context, menteeID int64) ([]int64, error)
	PendingForMentor(ctx context.Context, mentorID int64) ([]*models.Mentorship, error)
}

// mentorshipServiceImpl implements the MentorshipService interface
type mentorshipServiceImpl struct {
	mentorshipRepo repositories.IMentorshipRepository
	logger         zerolog.Logger
}

// NewMentorshipService creates a new mentorship service instance
func NewMentorshipService(mentorshipRepo repositories.IMentorshipRepository, logger zerolog.Logger) MentorshipService {
	return &mentorshipServiceImpl{
		mentorshipRepo: mentorshipRepo,
		logger:         logger,
	}
}

// Request creates a new pending request. Neither the mentor's isMentor flag
// nor an existing request for the same pair is checked; every call creates a
// new record.
func (s *mentorshipServiceImpl) Request(ctx context.Context, menteeID, mentorID int64) (*models.Mentorship, error) {
	mentorship, err := s.mentorshipRepo.Create(ctx, menteeID, mentorID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestID", mentorship.ID).
		Int64("menteeID", menteeID).
		Int64("mentorID", mentorID).
		Msg("Mentorship requested")
	return mentorship, nil
}

// Accept transitions the identified request to accepted. Accepting an already
// accepted request is a no-op success.
func (s *mentorshipServiceImpl) Accept(ctx context.Context, requestID int64) error {
	if err := s.mentorshipRepo.Accept(ctx, requestID); err != nil {
		return err
	}

	s.logger.Info().Int64("requestID", requestID).Msg("Mentorship accepted")
	return nil
}

// RequestedMentorIDs derives the set of mentors a mentee has already asked,
// pending or accepted, so dashboards can suppress duplicate request actions.
func (s *mentorshipServiceImpl) RequestedMentorIDs(ctx context.Context, menteeID int64) ([]int64, error) {
	requests, err := s.mentorshipRepo.ListForMentee(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(requests))
	ids := make([]int64, 0, len(requests))
	for _, req := range requests {
		if _, ok := seen[req.MentorID]; ok {
			continue
		}
		seen[req.MentorID] = struct{}{}
		ids = append(ids, req.MentorID)
	}

	return ids, nil
}

// PendingForMentor lists pending requests addressed to a mentor with mentee
// detail resolved.
func (s *mentorshipServiceImpl) PendingForMentor(ctx context.Context, mentorID int64) ([]*models.Mentorship, error) {
	return s.mentorshipRepo.ListPendingForMentor(ctx, mentorID)
}

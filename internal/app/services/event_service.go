package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arda/gradlink/internal/app/models"
	"github.com/arda/gradlink/internal/app/models/dto"
	"github.com/arda/gradlink/internal/app/repositories"
	"github.com/arda/gradlink/internal/pkg/apperrors"
)

// EventService defines the interface for event operations
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo repositories.IEventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo repositories.IEventRepository) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
	}
}

// eventDateLayouts are the accepted formats for the event date form field.
// HTML date inputs post plain dates; API clients may send full timestamps.
var eventDateLayouts = []string{"2006-01-02", time.RFC3339}

// Create validates presence of every field and stores the event. Past dates
// and duplicates are deliberately not rejected.
func (s *eventServiceImpl) Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	if strings.TrimSpace(req.EventName) == "" ||
		strings.TrimSpace(req.EventHost) == "" ||
		strings.TrimSpace(req.EventVenue) == "" ||
		strings.TrimSpace(req.EventDate) == "" {
		return nil, fmt.Errorf("%w: all event fields are required", apperrors.ErrValidationFailed)
	}

	date, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event date %q", apperrors.ErrValidationFailed, req.EventDate)
	}

	event := &models.Event{
		Name:     req.EventName,
		HostedBy: req.EventHost,
		Venue:    req.EventVenue,
		Date:     date,
	}
	if _, err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// List returns all events sorted by date ascending
func (s *eventServiceImpl) List(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.List(ctx)
}

// Delete removes an event. Deleting an id that no longer exists succeeds;
// the end state is the same either way.
func (s *eventServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

func parseEventDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventDateLayouts {
		date, err := time.Parse(layout, value)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

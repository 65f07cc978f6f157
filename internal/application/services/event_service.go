package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

// EventService handles calendar events
type EventService struct {
	events ports.EventRepository
	logger *logger.Logger
}

func NewEventService(events ports.EventRepository, logger *logger.Logger) *EventService {
	return &EventService{
		events: events,
		logger: logger.WithComponent("events"),
	}
}

func (s *EventService) Create(ctx context.Context, userID uuid.UUID, req ports.CreateEventRequest) (*entities.Event, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	event := &entities.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.UTC(),
		UserID:      userID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.LogUserAction(userID.String(), "event_created", map[string]interface{}{"event_id": event.ID.String()})
	return event, nil
}

// List returns the user's events in date order
func (s *EventService) List(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	return s.events.List(ctx, userID)
}

func (s *EventService) Get(ctx context.Context, userID, id uuid.UUID) (*entities.Event, error) {
	return s.events.GetByID(ctx, userID, id)
}

func (s *EventService) Update(ctx context.Context, userID, id uuid.UUID, req ports.UpdateEventRequest) (*entities.Event, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	apply(&event.Title, req.Title)
	apply(&event.Description, req.Description)
	if req.Date != nil {
		event.Date = req.Date.UTC()
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.events.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.LogUserAction(userID.String(), "event_deleted", map[string]interface{}{"event_id": id.String()})
	return nil
}

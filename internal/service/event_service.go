package service

import (
	"context"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/rs/zerolog"
)

// EventService handles event business logic.
type EventService struct {
	events EventStore
	log    zerolog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(events EventStore, log zerolog.Logger) *EventService {
	return &EventService{
		events: events,
		log:    log.With().Str("component", "event_service").Logger(),
	}
}

// List retrieves all events.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.events.List(ctx)
}

// GetByID retrieves an event by ID.
func (s *EventService) GetByID(ctx context.Context, id string) (*model.Event, error) {
	return s.events.GetByID(ctx, id)
}

// Create stores a new event.
func (s *EventService) Create(ctx context.Context, req model.EventRequest) (*model.Event, error) {
	e := &model.Event{
		Description: req.Description,
		Comments:    req.Comments,
		Date:        req.Date,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", e.ID).Msg("event created")
	return e, nil
}

// Update replaces an event's fields; the stored ID always wins.
func (s *EventService) Update(ctx context.Context, id string, req model.EventRequest) (*model.Event, error) {
	if _, err := s.events.GetByID(ctx, id); err != nil {
		return nil, err
	}

	e := &model.Event{
		ID:          id,
		Description: req.Description,
		Comments:    req.Comments,
		Date:        req.Date,
	}
	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an event and returns the removed record.
func (s *EventService) Delete(ctx context.Context, id string) (*model.Event, error) {
	return s.events.Delete(ctx, id)
}

package service

import (
	"context"
	"fmt"

	"github.com/clubops/clubkit/internal/adapter"
	"github.com/clubops/clubkit/internal/validators"
	"github.com/clubops/clubkit/models"
	"github.com/google/uuid"
)

type eventService struct {
	adapter   adapter.ClubAdapter
	validator validators.Validator
}

func NewEventService(clubAdapter adapter.ClubAdapter, validator validators.Validator) EventService {
	return &eventService{adapter: clubAdapter, validator: validator}
}

// List implements EventService.
func (s *eventService) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	events, err := s.adapter.Events(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Get implements EventService.
func (s *eventService) Get(ctx context.Context, id uuid.UUID) (models.Event, error) {
	event, err := s.adapter.Event(ctx, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// Create implements EventService.
func (s *eventService) Create(ctx context.Context, create models.EventCreate) (models.Event, error) {
	if err := s.validator.Validate(ctx, create); err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	event, err := s.adapter.CreateEvent(ctx, create)
	if err != nil {
		return models.Event{}, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Update implements EventService.
func (s *eventService) Update(ctx context.Context, id uuid.UUID, upd models.EventUpdate) (models.Event, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	event, err := s.adapter.UpdateEvent(ctx, id, upd)
	if err != nil {
		return models.Event{}, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Delete implements EventService.
func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.adapter.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

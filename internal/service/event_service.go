package service

import (
	"context"

	apperrors "noticeboard/internal/errors"
	"noticeboard/internal/model"
	"noticeboard/internal/repository"
)

// EventInput carries the writable fields of an event.
type EventInput struct {
	Title       string
	Description string
	EventDate   string
	EventTime   string
	Location    string
}

// EventService exposes event operations.
type EventService interface {
	List(ctx context.Context, month, year int) ([]model.Event, error)
	ListByDate(ctx context.Context, date string) ([]model.Event, error)
	Create(ctx context.Context, input EventInput, adminID uint) (*model.Event, error)
	Update(ctx context.Context, id uint, input EventInput) (*model.Event, error)
	Delete(ctx context.Context, id uint) error
}

type eventService struct {
	repo repository.EventRepository
}

// NewEventService builds an EventService.
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

// List returns events in calendar order, restricted to a month when both
// month and year are supplied.
func (s *eventService) List(ctx context.Context, month, year int) ([]model.Event, error) {
	items, err := s.repo.List(ctx, month, year)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Event{}
	}
	return items, nil
}

// ListByDate returns the events of one day ordered by start time.
func (s *eventService) ListByDate(ctx context.Context, date string) ([]model.Event, error) {
	items, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Event{}
	}
	return items, nil
}

// Create inserts an event owned by adminID and returns the joined row
// including the author name.
func (s *eventService) Create(ctx context.Context, input EventInput, adminID uint) (*model.Event, error) {
	e := &model.Event{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		EventTime:   input.EventTime,
		Location:    input.Location,
		AdminID:     adminID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, e.ID)
}

// Update overwrites all writable fields, last writer wins.
func (s *eventService) Update(ctx context.Context, id uint, input EventInput) (*model.Event, error) {
	rows, err := s.repo.Update(ctx, id, map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"event_date":  input.EventDate,
		"event_time":  input.EventTime,
		"location":    input.Location,
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrEventNotFound
		}
	}

	return s.repo.FindByID(ctx, id)
}

// Delete removes an event.
func (s *eventService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"noticeboard/internal/model"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	List(ctx context.Context, month, year int) ([]model.Event, error)
	ListByDate(ctx context.Context, date string) ([]model.Event, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Event{}).
		Select("events.*, admins.username AS author").
		Joins("LEFT JOIN admins ON admins.id = events.admin_id")
}

// Create inserts a new event.
func (r *eventRepository) Create(ctx context.Context, e *model.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindByID fetches a single event with its author.
func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var e model.Event
	if err := r.withAuthor(ctx).Where("events.id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns events in calendar order. When both month and year are given
// the list is restricted to that month.
func (r *eventRepository) List(ctx context.Context, month, year int) ([]model.Event, error) {
	q := r.withAuthor(ctx)
	if month > 0 && year > 0 {
		q = q.Where("MONTH(events.event_date) = ? AND YEAR(events.event_date) = ?", month, year)
	}
	var items []model.Event
	err := q.Order("events.event_date ASC, events.event_time ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListByDate returns the events of a single day ordered by start time.
func (r *eventRepository) ListByDate(ctx context.Context, date string) ([]model.Event, error) {
	var items []model.Event
	err := r.withAuthor(ctx).
		Where("events.event_date = ?", date).
		Order("events.event_time ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites the mutable fields in a single conditional statement and
// reports how many rows were affected.
func (r *eventRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// Exists reports whether an event row exists.
func (r *eventRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Delete removes an event and reports how many rows were affected.
func (r *eventRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Event{})
	return res.RowsAffected, res.Error
}

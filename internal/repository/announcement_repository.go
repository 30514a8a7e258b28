package repository

import (
	"context"

	"gorm.io/gorm"

	"noticeboard/internal/model"
)

// AnnouncementRepository defines announcement persistence operations.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	FindByID(ctx context.Context, id uint) (*model.Announcement, error)
	List(ctx context.Context, category string, limit, offset int) ([]model.Announcement, error)
	Count(ctx context.Context, category string) (int64, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// withAuthor joins the creator's username into the read model.
func (r *announcementRepository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Announcement{}).
		Select("announcements.*, admins.username AS author").
		Joins("LEFT JOIN admins ON admins.id = announcements.admin_id")
}

// Create inserts a new announcement.
func (r *announcementRepository) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindByID fetches a single announcement with its author.
func (r *announcementRepository) FindByID(ctx context.Context, id uint) (*model.Announcement, error) {
	var a model.Announcement
	if err := r.withAuthor(ctx).Where("announcements.id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns one page of announcements, newest first, optionally filtered
// by category.
func (r *announcementRepository) List(ctx context.Context, category string, limit, offset int) ([]model.Announcement, error) {
	q := r.withAuthor(ctx)
	if category != "" {
		q = q.Where("announcements.category = ?", category)
	}
	var items []model.Announcement
	err := q.Order("announcements.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the total number of announcements matching the same filter
// List applies.
func (r *announcementRepository) Count(ctx context.Context, category string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Announcement{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Update overwrites the mutable fields in a single conditional statement and
// reports how many rows were affected.
func (r *announcementRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Announcement{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// Exists reports whether an announcement row exists.
func (r *announcementRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Announcement{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Delete removes an announcement and reports how many rows were affected.
func (r *announcementRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Announcement{})
	return res.RowsAffected, res.Error
}

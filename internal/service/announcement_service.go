package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"noticeboard/internal/cache"
	apperrors "noticeboard/internal/errors"
	"noticeboard/internal/model"
	"noticeboard/internal/repository"
)

const (
	// DefaultPageSize is used when the client omits limit.
	DefaultPageSize = 10
	// MaxPageSize is the upper bound a client-supplied limit is clamped to.
	MaxPageSize = 100

	announcementCacheTTL = 5 * time.Minute
)

// AnnouncementInput carries the writable fields of an announcement.
type AnnouncementInput struct {
	Title    string
	Content  string
	Category string
}

// AnnouncementService exposes announcement operations.
type AnnouncementService interface {
	List(ctx context.Context, category string, page, limit int) ([]model.Announcement, *model.Pagination, error)
	Get(ctx context.Context, id uint) (*model.Announcement, error)
	Create(ctx context.Context, input AnnouncementInput, adminID uint) (*model.Announcement, error)
	Update(ctx context.Context, id uint, input AnnouncementInput) (*model.Announcement, error)
	Delete(ctx context.Context, id uint) error
}

type announcementService struct {
	repo  repository.AnnouncementRepository
	cache cache.Store
}

// NewAnnouncementService builds an AnnouncementService with repository and cache.
func NewAnnouncementService(repo repository.AnnouncementRepository, cache cache.Store) AnnouncementService {
	return &announcementService{repo: repo, cache: cache}
}

func (s *announcementService) cacheKey(id uint) string {
	return fmt.Sprintf("announcement:%d", id)
}

// ClampPage normalizes page and limit: page floors at 1, limit defaults to
// DefaultPageSize and is clamped to [1, MaxPageSize].
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// List returns one page of announcements, newest first, with the pagination
// envelope. A page past the end yields an empty list, not an error.
func (s *announcementService) List(ctx context.Context, category string, page, limit int) ([]model.Announcement, *model.Pagination, error) {
	page, limit = ClampPage(page, limit)

	total, err := s.repo.Count(ctx, category)
	if err != nil {
		return nil, nil, err
	}

	offset := (page - 1) * limit
	items, err := s.repo.List(ctx, category, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if items == nil {
		items = []model.Announcement{}
	}

	return items, model.NewPagination(page, limit, total), nil
}

// Get fetches a single announcement, serving from cache when possible.
func (s *announcementService) Get(ctx context.Context, id uint) (*model.Announcement, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Announcement
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(a); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, announcementCacheTTL)
	}
	return a, nil
}

// Create inserts an announcement owned by adminID and returns the joined row
// including the author name.
func (s *announcementService) Create(ctx context.Context, input AnnouncementInput, adminID uint) (*model.Announcement, error) {
	a := &model.Announcement{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		AdminID:  adminID,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, a.ID)
}

// Update overwrites all writable fields, last writer wins. The write is a
// single conditional UPDATE; only when it affects no rows does a follow-up
// existence probe distinguish a missing row from a no-op write.
func (s *announcementService) Update(ctx context.Context, id uint, input AnnouncementInput) (*model.Announcement, error) {
	rows, err := s.repo.Update(ctx, id, map[string]interface{}{
		"title":    input.Title,
		"content":  input.Content,
		"category": input.Category,
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
			return nil, apperrors.ErrAnnouncementNotFound
		}
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return s.repo.FindByID(ctx, id)
}

// Delete removes an announcement.
func (s *announcementService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

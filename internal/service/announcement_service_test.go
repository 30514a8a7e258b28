package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "noticeboard/internal/errors"
	"noticeboard/internal/model"
)

// MockAnnouncementRepository is a mock implementation of AnnouncementRepository.
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, a *model.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) FindByID(ctx context.Context, id uint) (*model.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) List(ctx context.Context, category string, limit, offset int) ([]model.Announcement, error) {
	args := m.Called(ctx, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Count(ctx context.Context, category string) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnnouncementRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// memoryCache is an in-memory cache.Store for tests.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 10, 1, 10},
		{"limit above cap", 1, 1000, 1, 100},
		{"limit at cap", 2, 100, 2, 100},
		{"normal", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ClampPage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestAnnouncementService_List_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int64
		returned       int
		wantOffset     int
		wantTotalPages int
	}{
		{"first page", 1, 10, 25, 10, 0, 3},
		{"last partial page", 3, 10, 25, 5, 20, 3},
		{"page past the end", 9, 10, 25, 0, 80, 3},
		{"exact fit", 2, 5, 10, 5, 5, 2},
		{"empty table", 1, 10, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAnnouncementRepository)
			mockRepo.On("Count", mock.Anything, "news").Return(tt.total, nil)
			mockRepo.On("List", mock.Anything, "news", tt.limit, tt.wantOffset).
				Return(make([]model.Announcement, tt.returned), nil)

			svc := NewAnnouncementService(mockRepo, newMemoryCache())
			items, pagination, err := svc.List(context.Background(), "news", tt.page, tt.limit)

			assert.NoError(t, err)
			assert.NotNil(t, items, "a page past the end must be an empty list, not nil")
			assert.Len(t, items, tt.returned)
			assert.Equal(t, tt.page, pagination.CurrentPage)
			assert.Equal(t, tt.wantTotalPages, pagination.TotalPages)
			assert.Equal(t, tt.total, pagination.TotalItems)
			assert.Equal(t, tt.limit, pagination.ItemsPerPage)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAnnouncementService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockAnnouncementRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.Announcement{
			ID: 7, Title: "hello", Author: "alice",
		}, nil)

		svc := NewAnnouncementService(mockRepo, newMemoryCache())
		a, err := svc.Get(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, "hello", a.Title)
		assert.Equal(t, "alice", a.Author)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockAnnouncementRepository)
		mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAnnouncementService(mockRepo, newMemoryCache())
		_, err := svc.Get(context.Background(), 404)

		assert.Equal(t, apperrors.ErrAnnouncementNotFound, err)
	})
}

func TestAnnouncementService_Create(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Announcement")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Announcement).ID = 11
		}).Return(nil)
	mockRepo.On("FindByID", mock.Anything, uint(11)).Return(&model.Announcement{
		ID: 11, Title: "x", Content: "y", Category: "z", AdminID: 3, Author: "alice",
	}, nil)

	svc := NewAnnouncementService(mockRepo, newMemoryCache())
	a, err := svc.Create(context.Background(), AnnouncementInput{Title: "x", Content: "y", Category: "z"}, 3)

	assert.NoError(t, err)
	assert.Equal(t, uint(11), a.ID)
	assert.Equal(t, uint(3), a.AdminID)
	assert.Equal(t, "alice", a.Author, "create must return the joined row with the author name")
	mockRepo.AssertExpectations(t)
}

func TestAnnouncementService_Update(t *testing.T) {
	fields := map[string]interface{}{"title": "t", "content": "c", "category": "g"}

	t.Run("row updated", func(t *testing.T) {
		mockRepo := new(MockAnnouncementRepository)
		mockRepo.On("Update", mock.Anything, uint(5), fields).Return(int64(1), nil)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Announcement{ID: 5, Title: "t"}, nil)

		svc := NewAnnouncementService(mockRepo, newMemoryCache())
		a, err := svc.Update(context.Background(), 5, AnnouncementInput{Title: "t", Content: "c", Category: "g"})

		assert.NoError(t, err)
		assert.Equal(t, "t", a.Title)
	})

	t.Run("missing row", func(t *testing.T) {
		mockRepo := new(MockAnnouncementRepository)
		mockRepo.On("Update", mock.Anything, uint(5), fields).Return(int64(0), nil)
		mockRepo.On("Exists", mock.Anything, uint(5)).Return(false, nil)

		svc := NewAnnouncementService(mockRepo, newMemoryCache())
		_, err := svc.Update(context.Background(), 5, AnnouncementInput{Title: "t", Content: "c", Category: "g"})

		assert.Equal(t, apperrors.ErrAnnouncementNotFound, err)
	})

	t.Run("no-op write on an existing row", func(t *testing.T) {
		// MySQL reports zero affected rows when values are unchanged; that
		// must not turn into a 404.
		mockRepo := new(MockAnnouncementRepository)
		mockRepo.On("Update", mock.Anything, uint(5), fields).Return(int64(0), nil)
		mockRepo.On("Exists", mock.Anything, uint(5)).Return(true, nil)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Announcement{ID: 5, Title: "t"}, nil)

		svc := NewAnnouncementService(mockRepo, newMemoryCache())
		a, err := svc.Update(context.Background(), 5, AnnouncementInput{Title: "t", Content: "c", Category: "g"})

		assert.NoError(t, err)
		assert.Equal(t, uint(5), a.ID)
	})
}

func TestAnnouncementService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mockRepo := new(MockAnnouncementRepository)
		mockRepo.On("Delete", mock.Anything, uint(5)).Return(int64(1), nil)

		svc := NewAnnouncementService(mockRepo, newMemoryCache())
		assert.NoError(t, svc.Delete(context.Background(), 5))
	})

	t.Run("missing row", func(t *testing.T) {
		mockRepo := new(MockAnnouncementRepository)
		mockRepo.On("Delete", mock.Anything, uint(5)).Return(int64(0), nil)

		svc := NewAnnouncementService(mockRepo, newMemoryCache())
		assert.Equal(t, apperrors.ErrAnnouncementNotFound, svc.Delete(context.Background(), 5))
	})
}

func TestAnnouncementService_CacheInvalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("get serves from cache until delete evicts", func(t *testing.T) {
		mockRepo := new(MockAnnouncementRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.Announcement{
			ID: 7, Title: "hello",
		}, nil).Once()

		svc := NewAnnouncementService(mockRepo, newMemoryCache())

		// First read fills the cache, second is served from it.
		_, err := svc.Get(ctx, 7)
		assert.NoError(t, err)
		a, err := svc.Get(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "hello", a.Title)
		mockRepo.AssertNumberOfCalls(t, "FindByID", 1)

		mockRepo.On("Delete", mock.Anything, uint(7)).Return(int64(1), nil)
		assert.NoError(t, svc.Delete(ctx, 7))

		// The deleted row must not come back from the cache.
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
		_, err = svc.Get(ctx, 7)
		assert.Equal(t, apperrors.ErrAnnouncementNotFound, err)
	})

	t.Run("update evicts the stale entry", func(t *testing.T) {
		mockRepo := new(MockAnnouncementRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.Announcement{
			ID: 9, Title: "old",
		}, nil).Once()

		svc := NewAnnouncementService(mockRepo, newMemoryCache())

		a, err := svc.Get(ctx, 9)
		assert.NoError(t, err)
		assert.Equal(t, "old", a.Title)

		mockRepo.On("Update", mock.Anything, uint(9), mock.Anything).Return(int64(1), nil)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.Announcement{
			ID: 9, Title: "new",
		}, nil)

		a, err = svc.Update(ctx, 9, AnnouncementInput{Title: "new", Content: "c", Category: "g"})
		assert.NoError(t, err)
		assert.Equal(t, "new", a.Title)

		a, err = svc.Get(ctx, 9)
		assert.NoError(t, err)
		assert.Equal(t, "new", a.Title, "a read after update must not see the pre-update row")
	})
}

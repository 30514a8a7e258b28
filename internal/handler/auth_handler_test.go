package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"noticeboard/internal/model"
	"noticeboard/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.Admin), args.Error(2)
}

func (m *MockAuthService) Setup(ctx context.Context, username, password string) (*model.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "alice", "password123").
			Return("signed-token", &model.Admin{ID: 1, Username: "alice"}, nil)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"password123"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(mockSvc, "")
		assert.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, uint(1), resp.Admin.ID)
		assert.Equal(t, "alice", resp.Admin.Username)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "alice", "wrong").
			Return("", nil, service.ErrInvalidCredentials)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"wrong"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(mockSvc, "")
		err := h.Login(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.Equal(t, "Invalid credentials", httpErr.Message)
	})

	t.Run("missing field", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockSvc := new(MockAuthService)
		h := NewAuthHandler(mockSvc, "")
		err := h.Login(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockSvc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Setup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Setup", mock.Anything, "alice", "password123").
			Return(&model.Admin{ID: 1, Username: "alice"}, nil)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"password123"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(mockSvc, "")
		assert.NoError(t, h.Setup(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Admin created successfully")
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Setup", mock.Anything, "alice", "password123").
			Return(nil, service.ErrUsernameTaken)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"password123"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(mockSvc, "")
		err := h.Setup(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Username already exists", httpErr.Message)
	})

	t.Run("setup token configured and missing", func(t *testing.T) {
		mockSvc := new(MockAuthService)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"password123"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(mockSvc, "sekrit")
		err := h.Setup(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
		mockSvc.AssertNotCalled(t, "Setup", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("setup token configured and matching", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Setup", mock.Anything, "alice", "password123").
			Return(&model.Admin{ID: 1, Username: "alice"}, nil)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"password123"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(SetupTokenHeader, "sekrit")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(mockSvc, "sekrit")
		assert.NoError(t, h.Setup(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"noticeboard/internal/auth"
	"noticeboard/internal/errors"
	"noticeboard/internal/model"
	"noticeboard/internal/service"
)

// SetupTokenHeader carries the shared secret required by the setup endpoint
// when SETUP_TOKEN is configured.
const SetupTokenHeader = "X-Setup-Token"

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	setupToken  string
}

// NewAuthHandler creates a new auth handler. setupToken may be empty, in
// which case the setup endpoint is open.
func NewAuthHandler(authService service.AuthService, setupToken string) *AuthHandler {
	return &AuthHandler{authService: authService, setupToken: setupToken}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SetupRequest represents an admin bootstrap request.
type SetupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminInfo is the public view of an admin.
type AdminInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("Login error: %v", err)
		return c.JSON(http.StatusInternalServerError, errors.ErrorResponse{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Admin: AdminInfo{ID: admin.ID, Username: admin.Username},
	})
}

// Setup godoc
// @Summary Create an admin account
// @Description Bootstrap endpoint. When SETUP_TOKEN is configured the matching X-Setup-Token header is required.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SetupRequest true "New admin"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/setup [post]
func (h *AuthHandler) Setup(c echo.Context) error {
	if h.setupToken != "" && c.Request().Header.Get(SetupTokenHeader) != h.setupToken {
		return echo.NewHTTPError(http.StatusForbidden, "Setup token required")
	}

	var req SetupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.authService.Setup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == service.ErrUsernameTaken {
			return echo.NewHTTPError(http.StatusBadRequest, "Username already exists")
		}
		log.Printf("Setup error: %v", err)
		return c.JSON(http.StatusInternalServerError, errors.ErrorResponse{Message: "Server error", Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Admin created successfully",
		"id":      admin.ID,
	})
}

// adminFromContext returns the identity attached by the auth gate.
func adminFromContext(c echo.Context) (*model.Admin, bool) {
	admin, ok := c.Get(auth.ContextKeyAdmin).(*model.Admin)
	return admin, ok
}

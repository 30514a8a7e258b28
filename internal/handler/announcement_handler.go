package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "noticeboard/internal/errors"
	"noticeboard/internal/model"
	"noticeboard/internal/service"
)

// AnnouncementHandler handles announcement endpoints.
type AnnouncementHandler struct {
	svc service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler.
func NewAnnouncementHandler(svc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

// CreateAnnouncementRequest represents an announcement create payload.
type CreateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// UpdateAnnouncementRequest represents an announcement update payload. The
// update is a full overwrite, so fields are taken as sent.
type UpdateAnnouncementRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// ListAnnouncementsResponse represents one page of announcements.
type ListAnnouncementsResponse struct {
	Announcements []model.Announcement `json:"announcements"`
	Pagination    *model.Pagination    `json:"pagination"`
}

// List godoc
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Param category query string false "Filter by category"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} ListAnnouncementsResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	category := c.QueryParam("category")

	items, pagination, err := h.svc.List(c.Request().Context(), category, page, limit)
	if err != nil {
		log.Printf("Get announcements error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, ListAnnouncementsResponse{
		Announcements: items,
		Pagination:    pagination,
	})
}

// Get godoc
// @Summary Get a single announcement
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} model.Announcement
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	a, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		if err == apperrors.ErrAnnouncementNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Announcement not found")
		}
		log.Printf("Get announcement error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, a)
}

// Create godoc
// @Summary Create an announcement
// @Tags announcements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} model.Announcement
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	admin, ok := adminFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
	}

	var req CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Title, content, and category are required")
	}

	a, err := h.svc.Create(c.Request().Context(), service.AnnouncementInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}, admin.ID)
	if err != nil {
		log.Printf("Create announcement error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, a)
}

// Update godoc
// @Summary Update an announcement
// @Description Full-field overwrite, last writer wins.
// @Tags announcements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param request body UpdateAnnouncementRequest true "Announcement"
// @Success 200 {object} model.Announcement
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a, err := h.svc.Update(c.Request().Context(), uint(id), service.AnnouncementInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		if err == apperrors.ErrAnnouncementNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Announcement not found")
		}
		log.Printf("Update announcement error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, a)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags announcements
// @Security BearerAuth
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		if err == apperrors.ErrAnnouncementNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Announcement not found")
		}
		log.Printf("Delete announcement error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Announcement deleted successfully",
	})
}

package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "noticeboard/internal/errors"
	"noticeboard/internal/service"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	svc service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// CreateEventRequest represents an event create payload. Dates are ISO
// YYYY-MM-DD, times HH:MM.
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	EventDate   string `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime   string `json:"event_time" validate:"omitempty,datetime=15:04"`
	Location    string `json:"location"`
}

// UpdateEventRequest represents an event update payload. The update is a full
// overwrite, so fields are taken as sent; the date/time formats are still
// enforced when present.
type UpdateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventTime   string `json:"event_time" validate:"omitempty,datetime=15:04"`
	Location    string `json:"location"`
}

// List godoc
// @Summary List events
// @Description Returns events in calendar order. When both month and year are given, only that month's events.
// @Tags events
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {array} model.Event
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	month, _ := strconv.Atoi(c.QueryParam("month"))
	year, _ := strconv.Atoi(c.QueryParam("year"))

	items, err := h.svc.List(c.Request().Context(), month, year)
	if err != nil {
		log.Printf("Get events error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, items)
}

// ListByDate godoc
// @Summary List events on a date
// @Tags events
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} model.Event
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /events/date/{date} [get]
func (h *EventHandler) ListByDate(c echo.Context) error {
	date := c.Param("date")

	items, err := h.svc.ListByDate(c.Request().Context(), date)
	if err != nil {
		log.Printf("Get events by date error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event"
// @Success 201 {object} model.Event
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	admin, ok := adminFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Title and date are required")
	}

	e, err := h.svc.Create(c.Request().Context(), service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
	}, admin.ID)
	if err != nil {
		log.Printf("Create event error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, e)
}

// Update godoc
// @Summary Update an event
// @Description Full-field overwrite, last writer wins.
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body UpdateEventRequest true "Event"
// @Success 200 {object} model.Event
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	e, err := h.svc.Update(c.Request().Context(), uint(id), service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
	})
	if err != nil {
		if err == apperrors.ErrEventNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		log.Printf("Update event error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, e)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		if err == apperrors.ErrEventNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		log.Printf("Delete event error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Message: "Database error", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Event deleted successfully",
	})
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskify/core/internal/infrastructure/logger"
	"github.com/taskify/core/internal/ports"
)

// EventHandler handles calendar event requests
type EventHandler struct {
	eventService ports.EventService
	logger       *logger.Logger
}

func NewEventHandler(eventService ports.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body ports.CreateEventRequest true "Event data"
// @Success 201 {object} entities.Event
// @Failure 400 {object} ErrorResponse
// @Security CookieAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req ports.CreateEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	event, err := h.eventService.Create(c.Request().Context(), UserIDFromContext(c), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events in date order
// @Tags events
// @Produce json
// @Success 200 {array} entities.Event
// @Security CookieAuth
// @Router /events [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.eventService.List(c.Request().Context(), UserIDFromContext(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} entities.Event
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}

	event, err := h.eventService.Get(c.Request().Context(), UserIDFromContext(c), eventID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body ports.UpdateEventRequest true "Fields to change"
// @Success 200 {object} entities.Event
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}

	var req ports.UpdateEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	event, err := h.eventService.Update(c.Request().Context(), UserIDFromContext(c), eventID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Param id path string true "Event ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security CookieAuth
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.eventService.Delete(c.Request().Context(), UserIDFromContext(c), eventID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Event deleted"})
}

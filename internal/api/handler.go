// Package api exposes the calendar over a local HTTP surface. The routes
// map one-to-one onto the application's entry points: create submission,
// edit submission, delete action, and the read-only day queries the calendar
// view renders from.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daymark-app/daymark/internal/calendar"
	"github.com/daymark-app/daymark/internal/core/event"
)

// Handler adapts HTTP requests onto the calendar service.
type Handler struct {
	cal *calendar.Service
}

func NewHandler(cal *calendar.Service) *Handler {
	return &Handler{cal: cal}
}

// RegisterRoutes mounts the event and calendar routes under /v1.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")
	v1.POST("/events", h.createEvent)
	v1.GET("/events", h.listEvents)
	v1.GET("/events/:id", h.getEvent)
	v1.PUT("/events/:id", h.updateEvent)
	v1.DELETE("/events/:id", h.deleteEvent)
	v1.GET("/calendar/days", h.markedDays)
	v1.GET("/calendar/days/:day", h.eventsOnDay)
}

// eventRequest is the submission body for create and edit. The image field
// is an opaque reference or null; the server never inspects it.
type eventRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	StartDate   time.Time    `json:"startDate"`
	EndDate     time.Time    `json:"endDate"`
	Image       *string      `json:"image"`
	Repeat      event.Repeat `json:"repeat"`
}

func (h *Handler) createEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorType: ErrTypeInvalidJSON,
			Message:   err.Error(),
		})
		return
	}

	created, err := h.cal.Create(c.Request.Context(), calendar.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Image:       req.Image,
		Repeat:      req.Repeat,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": h.cal.Events()})
}

func (h *Handler) getEvent(c *gin.Context) {
	e, err := h.cal.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) updateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorType: ErrTypeInvalidJSON,
			Message:   err.Error(),
		})
		return
	}

	updated, err := h.cal.Update(c.Request.Context(), event.Event{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Image:       req.Image,
		Repeat:      req.Repeat,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteEvent(c *gin.Context) {
	if err := h.cal.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) markedDays(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": h.cal.MarkedDays()})
}

func (h *Handler) eventsOnDay(c *gin.Context) {
	day := c.Param("day")
	if _, err := time.Parse("2006-01-02", day); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorType: ErrTypeValidation,
			Message:   "day must be in YYYY-MM-DD form",
			Details:   gin.H{"day": day},
		})
		return
	}

	events := h.cal.EventsOn(day)
	if events == nil {
		events = []event.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "events": events})
}

// respondError maps domain errors onto status codes and the shared error
// body shape.
func (h *Handler) respondError(c *gin.Context, err error) {
	var ve *event.ValidationError
	var ce *event.ConflictError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorType: ErrTypeValidation,
			Message:   ve.Error(),
			Details:   gin.H{"field": ve.Field},
		})
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, ErrorResponse{
			ErrorType: ErrTypeConflict,
			Message:   ce.Error(),
		})
	case errors.Is(err, event.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			ErrorType: ErrTypeNotFound,
			Message:   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			ErrorType: ErrTypeInternal,
			Message:   err.Error(),
		})
	}
}

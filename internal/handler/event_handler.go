package handler

import (
	"errors"
	"net/http"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/chainsped/chain-backend/internal/repository"
	"github.com/chainsped/chain-backend/internal/response"
	"github.com/chainsped/chain-backend/internal/service"
	"github.com/chainsped/chain-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// EventHandler handles event record management (CRUD).
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents godoc
// GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	response.Success(c, http.StatusOK, events)
}

// GetEvent godoc
// GET /events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, event)
}

// CreateEvent godoc
// POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req model.EventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, event)
}

// UpdateEvent godoc
// PUT /events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req model.EventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, event)
}

// DeleteEvent godoc
// DELETE /events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	event, err := h.eventService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "event deleted", "event": event})
}

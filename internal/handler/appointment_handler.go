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

// AppointmentHandler handles appointment record management (CRUD).
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// ListAppointments godoc
// GET /appointments
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.appointmentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	response.Success(c, http.StatusOK, appointments)
}

// GetAppointment godoc
// GET /appointments/:id
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appointment, err := h.appointmentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, appointment)
}

// CreateAppointment godoc
// POST /appointments
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req model.AppointmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	appointment, err := h.appointmentService.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, appointment)
}

// UpdateAppointment godoc
// PUT /appointments/:id
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var req model.AppointmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	appointment, err := h.appointmentService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, appointment)
}

// DeleteAppointment godoc
// DELETE /appointments/:id
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	appointment, err := h.appointmentService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, appointment)
}

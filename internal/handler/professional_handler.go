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

// ProfessionalHandler handles professional record management (CRUD).
type ProfessionalHandler struct {
	professionalService *service.ProfessionalService
}

// NewProfessionalHandler creates a new ProfessionalHandler.
func NewProfessionalHandler(professionalService *service.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{professionalService: professionalService}
}

// ListProfessionals godoc
// GET /professionals
func (h *ProfessionalHandler) ListProfessionals(c *gin.Context) {
	professionals, err := h.professionalService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if professionals == nil {
		professionals = []model.Professional{}
	}
	response.Success(c, http.StatusOK, professionals)
}

// GetProfessional godoc
// GET /professionals/:id
func (h *ProfessionalHandler) GetProfessional(c *gin.Context) {
	professional, err := h.professionalService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, professional)
}

// CreateProfessional godoc
// POST /professionals
func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	var req model.ProfessionalRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	professional, err := h.professionalService.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, professional)
}

// UpdateProfessional godoc
// PUT /professionals/:id
func (h *ProfessionalHandler) UpdateProfessional(c *gin.Context) {
	var req model.ProfessionalRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	professional, err := h.professionalService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, professional)
}

// DeleteProfessional godoc
// DELETE /professionals/:id
func (h *ProfessionalHandler) DeleteProfessional(c *gin.Context) {
	professional, err := h.professionalService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "professional deleted", "professional": professional})
}

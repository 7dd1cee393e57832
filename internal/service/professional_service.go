package service

import (
	"context"

	"github.com/chainsped/chain-backend/internal/model"
)

// ProfessionalService handles professional business logic.
type ProfessionalService struct {
	professionals ProfessionalStore
}

// NewProfessionalService creates a new ProfessionalService.
func NewProfessionalService(professionals ProfessionalStore) *ProfessionalService {
	return &ProfessionalService{professionals: professionals}
}

// List retrieves all professionals.
func (s *ProfessionalService) List(ctx context.Context) ([]model.Professional, error) {
	return s.professionals.List(ctx)
}

// GetByID retrieves a professional by ID.
func (s *ProfessionalService) GetByID(ctx context.Context, id string) (*model.Professional, error) {
	return s.professionals.GetByID(ctx, id)
}

// Create stores a new professional.
func (s *ProfessionalService) Create(ctx context.Context, req model.ProfessionalRequest) (*model.Professional, error) {
	p := &model.Professional{
		Name:        req.Name,
		Specialty:   req.Specialty,
		Contact:     req.Contact,
		PhoneNumber: req.PhoneNumber,
		Status:      req.Status,
	}
	if err := s.professionals.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces a professional's fields; the stored ID always wins.
func (s *ProfessionalService) Update(ctx context.Context, id string, req model.ProfessionalRequest) (*model.Professional, error) {
	if _, err := s.professionals.GetByID(ctx, id); err != nil {
		return nil, err
	}

	p := &model.Professional{
		ID:          id,
		Name:        req.Name,
		Specialty:   req.Specialty,
		Contact:     req.Contact,
		PhoneNumber: req.PhoneNumber,
		Status:      req.Status,
	}
	if err := s.professionals.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a professional and returns the removed record.
func (s *ProfessionalService) Delete(ctx context.Context, id string) (*model.Professional, error) {
	return s.professionals.Delete(ctx, id)
}

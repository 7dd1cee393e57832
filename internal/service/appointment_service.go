package service

import (
	"context"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/rs/zerolog"
)

// AppointmentService handles appointment business logic.
type AppointmentService struct {
	appointments AppointmentStore
	log          zerolog.Logger
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(appointments AppointmentStore, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		log:          log.With().Str("component", "appointment_service").Logger(),
	}
}

// List retrieves all appointments.
func (s *AppointmentService) List(ctx context.Context) ([]model.Appointment, error) {
	return s.appointments.List(ctx)
}

// GetByID retrieves an appointment by ID.
func (s *AppointmentService) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// Create stores a new appointment.
func (s *AppointmentService) Create(ctx context.Context, req model.AppointmentRequest) (*model.Appointment, error) {
	a := &model.Appointment{
		Specialty:    req.Specialty,
		Comments:     req.Comments,
		Date:         req.Date,
		Student:      req.Student,
		Professional: req.Professional,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", a.ID).Msg("appointment created")
	return a, nil
}

// Update replaces an appointment's fields; the stored ID always wins.
func (s *AppointmentService) Update(ctx context.Context, id string, req model.AppointmentRequest) (*model.Appointment, error) {
	if _, err := s.appointments.GetByID(ctx, id); err != nil {
		return nil, err
	}

	a := &model.Appointment{
		ID:           id,
		Specialty:    req.Specialty,
		Comments:     req.Comments,
		Date:         req.Date,
		Student:      req.Student,
		Professional: req.Professional,
	}
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an appointment and returns the removed record.
func (s *AppointmentService) Delete(ctx context.Context, id string) (*model.Appointment, error) {
	return s.appointments.Delete(ctx, id)
}

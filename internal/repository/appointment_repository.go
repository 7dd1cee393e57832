package repository

import (
	"context"
	"errors"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AppointmentRepository handles appointment data access.
type AppointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository creates a new AppointmentRepository.
func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

// List retrieves all appointments in insertion order.
func (r *AppointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, specialty, comments, date, student, professional, created_at, updated_at
		 FROM appointments ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Specialty, &a.Comments, &a.Date, &a.Student, &a.Professional, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

// GetByID retrieves an appointment by ID.
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, specialty, comments, date, student, professional, created_at, updated_at
		 FROM appointments WHERE id = $1`, id,
	).Scan(&a.ID, &a.Specialty, &a.Comments, &a.Date, &a.Student, &a.Professional, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new appointment, assigning its ID.
func (r *AppointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	a.ID = uuid.New().String()
	return r.pool.QueryRow(ctx,
		`INSERT INTO appointments (id, specialty, comments, date, student, professional)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		a.ID, a.Specialty, a.Comments, a.Date, a.Student, a.Professional,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// Update replaces an appointment's fields, keeping the stored ID.
func (r *AppointmentRepository) Update(ctx context.Context, a *model.Appointment) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE appointments SET specialty = $1, comments = $2, date = $3, student = $4, professional = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		a.Specialty, a.Comments, a.Date, a.Student, a.Professional, a.ID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes an appointment by ID and returns the removed record.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM appointments WHERE id = $1
		 RETURNING id, specialty, comments, date, student, professional, created_at, updated_at`, id,
	).Scan(&a.ID, &a.Specialty, &a.Comments, &a.Date, &a.Student, &a.Professional, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfessionalRepository handles professional data access.
type ProfessionalRepository struct {
	pool *pgxpool.Pool
}

// NewProfessionalRepository creates a new ProfessionalRepository.
func NewProfessionalRepository(pool *pgxpool.Pool) *ProfessionalRepository {
	return &ProfessionalRepository{pool: pool}
}

// List retrieves all professionals in insertion order.
func (r *ProfessionalRepository) List(ctx context.Context) ([]model.Professional, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, specialty, contact, phone_number, status, created_at, updated_at
		 FROM professionals ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var professionals []model.Professional
	for rows.Next() {
		var p model.Professional
		if err := rows.Scan(&p.ID, &p.Name, &p.Specialty, &p.Contact, &p.PhoneNumber, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		professionals = append(professionals, p)
	}
	return professionals, rows.Err()
}

// GetByID retrieves a professional by ID.
func (r *ProfessionalRepository) GetByID(ctx context.Context, id string) (*model.Professional, error) {
	p := &model.Professional{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, specialty, contact, phone_number, status, created_at, updated_at
		 FROM professionals WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Specialty, &p.Contact, &p.PhoneNumber, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new professional, assigning its ID.
func (r *ProfessionalRepository) Create(ctx context.Context, p *model.Professional) error {
	p.ID = uuid.New().String()
	return r.pool.QueryRow(ctx,
		`INSERT INTO professionals (id, name, specialty, contact, phone_number, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Specialty, p.Contact, p.PhoneNumber, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Update replaces a professional's fields, keeping the stored ID.
func (r *ProfessionalRepository) Update(ctx context.Context, p *model.Professional) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE professionals SET name = $1, specialty = $2, contact = $3, phone_number = $4, status = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		p.Name, p.Specialty, p.Contact, p.PhoneNumber, p.Status, p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a professional by ID and returns the removed record.
func (r *ProfessionalRepository) Delete(ctx context.Context, id string) (*model.Professional, error) {
	p := &model.Professional{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM professionals WHERE id = $1
		 RETURNING id, name, specialty, contact, phone_number, status, created_at, updated_at`, id,
	).Scan(&p.ID, &p.Name, &p.Specialty, &p.Contact, &p.PhoneNumber, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TeacherRepository handles teacher data access.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

// List retrieves all teachers in insertion order.
func (r *TeacherRepository) List(ctx context.Context) ([]model.Teacher, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, school_disciplines, contact, phone_number, status, created_at, updated_at
		 FROM teachers ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.SchoolDisciplines, &t.Contact, &t.PhoneNumber, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// GetByID retrieves a teacher by ID.
func (r *TeacherRepository) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, school_disciplines, contact, phone_number, status, created_at, updated_at
		 FROM teachers WHERE id = $1`, id,
	).Scan(&t.ID, &t.UserID, &t.Name, &t.SchoolDisciplines, &t.Contact, &t.PhoneNumber, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create inserts a new teacher, assigning its ID.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	t.ID = uuid.New().String()
	return r.pool.QueryRow(ctx,
		`INSERT INTO teachers (id, user_id, name, school_disciplines, contact, phone_number, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		t.ID, t.UserID, t.Name, t.SchoolDisciplines, t.Contact, t.PhoneNumber, t.Status,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// Update replaces a teacher's fields, keeping the stored ID.
func (r *TeacherRepository) Update(ctx context.Context, t *model.Teacher) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE teachers SET user_id = $1, name = $2, school_disciplines = $3, contact = $4, phone_number = $5, status = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7
		 RETURNING created_at, updated_at`,
		t.UserID, t.Name, t.SchoolDisciplines, t.Contact, t.PhoneNumber, t.Status, t.ID,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a teacher by ID and returns the removed record.
func (r *TeacherRepository) Delete(ctx context.Context, id string) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM teachers WHERE id = $1
		 RETURNING id, user_id, name, school_disciplines, contact, phone_number, status, created_at, updated_at`, id,
	).Scan(&t.ID, &t.UserID, &t.Name, &t.SchoolDisciplines, &t.Contact, &t.PhoneNumber, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// List retrieves all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, age, parents, phone_number, special_needs, status, student_code, created_at, updated_at
		 FROM students ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Age, &s.Parents, &s.PhoneNumber, &s.SpecialNeeds, &s.Status, &s.StudentCode, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, age, parents, phone_number, special_needs, status, student_code, created_at, updated_at
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.UserID, &s.Name, &s.Age, &s.Parents, &s.PhoneNumber, &s.SpecialNeeds, &s.Status, &s.StudentCode, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Create inserts a new student, assigning its ID.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	s.ID = uuid.New().String()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (id, user_id, name, age, parents, phone_number, special_needs, status, student_code)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		s.ID, s.UserID, s.Name, s.Age, s.Parents, s.PhoneNumber, s.SpecialNeeds, s.Status, s.StudentCode,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateStudentCode
		}
		return err
	}
	return nil
}

// Update replaces a student's fields, keeping the stored ID.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE students SET user_id = $1, name = $2, age = $3, parents = $4, phone_number = $5, special_needs = $6, status = $7, student_code = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9
		 RETURNING created_at, updated_at`,
		s.UserID, s.Name, s.Age, s.Parents, s.PhoneNumber, s.SpecialNeeds, s.Status, s.StudentCode, s.ID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateStudentCode
		}
		return err
	}
	return nil
}

// Delete removes a student by ID and returns the removed record.
func (r *StudentRepository) Delete(ctx context.Context, id string) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM students WHERE id = $1
		 RETURNING id, user_id, name, age, parents, phone_number, special_needs, status, student_code, created_at, updated_at`, id,
	).Scan(&s.ID, &s.UserID, &s.Name, &s.Age, &s.Parents, &s.PhoneNumber, &s.SpecialNeeds, &s.Status, &s.StudentCode, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

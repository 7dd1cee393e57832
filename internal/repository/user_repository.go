package repository

import (
	"context"
	"errors"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles user data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// List retrieves all users in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, username, password_hash, level, status, created_at, updated_at
		 FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash, &u.Level, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, username, password_hash, level, status, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash, &u.Level, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail retrieves the oldest user with the given email. Emails are not
// unique (the legacy data set contains duplicates), so login resolves the
// first inserted match.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, username, password_hash, level, status, created_at, updated_at
		 FROM users WHERE email = $1 ORDER BY created_at LIMIT 1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash, &u.Level, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create inserts a new user, assigning its ID.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	u.ID = uuid.New().String()
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (id, name, email, username, password_hash, level, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		u.ID, u.Name, u.Email, u.Username, u.PasswordHash, u.Level, u.Status,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
}

// Update replaces a user's fields, keeping the stored ID.
func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE users SET name = $1, email = $2, username = $3, password_hash = $4, level = $5, status = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7
		 RETURNING created_at, updated_at`,
		u.Name, u.Email, u.Username, u.PasswordHash, u.Level, u.Status, u.ID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a user by ID and returns the removed record.
func (r *UserRepository) Delete(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM users WHERE id = $1
		 RETURNING id, name, email, username, password_hash, level, status, created_at, updated_at`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash, &u.Level, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

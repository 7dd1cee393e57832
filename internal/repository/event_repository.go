package repository

import (
	"context"
	"errors"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository handles event data access.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// List retrieves all events in insertion order.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, description, comments, date, created_at, updated_at
		 FROM events ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Description, &e.Comments, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetByID retrieves an event by ID.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	e := &model.Event{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, description, comments, date, created_at, updated_at
		 FROM events WHERE id = $1`, id,
	).Scan(&e.ID, &e.Description, &e.Comments, &e.Date, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create inserts a new event, assigning its ID.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	e.ID = uuid.New().String()
	return r.pool.QueryRow(ctx,
		`INSERT INTO events (id, description, comments, date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		e.ID, e.Description, e.Comments, e.Date,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

// Update replaces an event's fields, keeping the stored ID.
func (r *EventRepository) Update(ctx context.Context, e *model.Event) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE events SET description = $1, comments = $2, date = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4
		 RETURNING created_at, updated_at`,
		e.Description, e.Comments, e.Date, e.ID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes an event by ID and returns the removed record.
func (r *EventRepository) Delete(ctx context.Context, id string) (*model.Event, error) {
	e := &model.Event{}
	err := r.pool.QueryRow(ctx,
		`DELETE FROM events WHERE id = $1
		 RETURNING id, description, comments, date, created_at, updated_at`, id,
	).Scan(&e.ID, &e.Description, &e.Comments, &e.Date, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

package service

import (
	"context"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/chainsped/chain-backend/internal/repository"
)

// Per-entity store interfaces. Services depend on these instead of the
// concrete pgx repositories so stores are injected at process start and
// tests can substitute in-memory fakes.

// UserStore persists user records.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id string) (*model.User, error)
}

// TeacherStore persists teacher records.
type TeacherStore interface {
	List(ctx context.Context) ([]model.Teacher, error)
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	Create(ctx context.Context, t *model.Teacher) error
	Update(ctx context.Context, t *model.Teacher) error
	Delete(ctx context.Context, id string) (*model.Teacher, error)
}

// StudentStore persists student records.
type StudentStore interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, id string) (*model.Student, error)
}

// ProfessionalStore persists professional records.
type ProfessionalStore interface {
	List(ctx context.Context) ([]model.Professional, error)
	GetByID(ctx context.Context, id string) (*model.Professional, error)
	Create(ctx context.Context, p *model.Professional) error
	Update(ctx context.Context, p *model.Professional) error
	Delete(ctx context.Context, id string) (*model.Professional, error)
}

// EventStore persists event records.
type EventStore interface {
	List(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, e *model.Event) error
	Update(ctx context.Context, e *model.Event) error
	Delete(ctx context.Context, id string) (*model.Event, error)
}

// AppointmentStore persists appointment records.
type AppointmentStore interface {
	List(ctx context.Context) ([]model.Appointment, error)
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	Create(ctx context.Context, a *model.Appointment) error
	Update(ctx context.Context, a *model.Appointment) error
	Delete(ctx context.Context, id string) (*model.Appointment, error)
}

// The pgx repositories must satisfy the store contracts.
var (
	_ UserStore         = (*repository.UserRepository)(nil)
	_ TeacherStore      = (*repository.TeacherRepository)(nil)
	_ StudentStore      = (*repository.StudentRepository)(nil)
	_ ProfessionalStore = (*repository.ProfessionalRepository)(nil)
	_ EventStore        = (*repository.EventRepository)(nil)
	_ AppointmentStore  = (*repository.AppointmentRepository)(nil)
)

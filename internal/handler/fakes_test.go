package handler_test

import (
	"context"
	"time"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/chainsped/chain-backend/internal/repository"
	"github.com/chainsped/chain-backend/internal/service"
	"github.com/google/uuid"
)

// In-memory store fakes implementing the service store interfaces. They
// mirror the pgx repositories' behavior: generated ids, insertion order,
// sentinel errors, and the unique student code rule.

type fakeUserStore struct {
	users []model.User
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), f.users...), nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, u *model.User) error {
	for i := range f.users {
		if f.users[i].ID == u.ID {
			u.CreatedAt = f.users[i].CreatedAt
			u.UpdatedAt = time.Now()
			f.users[i] = *u
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserStore) Delete(_ context.Context, id string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			f.users = append(f.users[:i], f.users[i+1:]...)
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeTeacherStore struct {
	teachers []model.Teacher
}

func (f *fakeTeacherStore) List(_ context.Context) ([]model.Teacher, error) {
	return append([]model.Teacher(nil), f.teachers...), nil
}

func (f *fakeTeacherStore) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	for i := range f.teachers {
		if f.teachers[i].ID == id {
			t := f.teachers[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTeacherStore) Create(_ context.Context, t *model.Teacher) error {
	t.ID = uuid.New().String()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.teachers = append(f.teachers, *t)
	return nil
}

func (f *fakeTeacherStore) Update(_ context.Context, t *model.Teacher) error {
	for i := range f.teachers {
		if f.teachers[i].ID == t.ID {
			t.CreatedAt = f.teachers[i].CreatedAt
			t.UpdatedAt = time.Now()
			f.teachers[i] = *t
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTeacherStore) Delete(_ context.Context, id string) (*model.Teacher, error) {
	for i := range f.teachers {
		if f.teachers[i].ID == id {
			t := f.teachers[i]
			f.teachers = append(f.teachers[:i], f.teachers[i+1:]...)
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeStudentStore struct {
	students []model.Student
}

func (f *fakeStudentStore) List(_ context.Context) ([]model.Student, error) {
	return append([]model.Student(nil), f.students...), nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id string) (*model.Student, error) {
	for i := range f.students {
		if f.students[i].ID == id {
			s := f.students[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudentStore) Create(_ context.Context, s *model.Student) error {
	for i := range f.students {
		if f.students[i].StudentCode == s.StudentCode {
			return repository.ErrDuplicateStudentCode
		}
	}
	s.ID = uuid.New().String()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.students = append(f.students, *s)
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, s *model.Student) error {
	for i := range f.students {
		if f.students[i].StudentCode == s.StudentCode && f.students[i].ID != s.ID {
			return repository.ErrDuplicateStudentCode
		}
	}
	for i := range f.students {
		if f.students[i].ID == s.ID {
			s.CreatedAt = f.students[i].CreatedAt
			s.UpdatedAt = time.Now()
			f.students[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStudentStore) Delete(_ context.Context, id string) (*model.Student, error) {
	for i := range f.students {
		if f.students[i].ID == id {
			s := f.students[i]
			f.students = append(f.students[:i], f.students[i+1:]...)
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeProfessionalStore struct {
	professionals []model.Professional
}

func (f *fakeProfessionalStore) List(_ context.Context) ([]model.Professional, error) {
	return append([]model.Professional(nil), f.professionals...), nil
}

func (f *fakeProfessionalStore) GetByID(_ context.Context, id string) (*model.Professional, error) {
	for i := range f.professionals {
		if f.professionals[i].ID == id {
			p := f.professionals[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProfessionalStore) Create(_ context.Context, p *model.Professional) error {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.professionals = append(f.professionals, *p)
	return nil
}

func (f *fakeProfessionalStore) Update(_ context.Context, p *model.Professional) error {
	for i := range f.professionals {
		if f.professionals[i].ID == p.ID {
			p.CreatedAt = f.professionals[i].CreatedAt
			p.UpdatedAt = time.Now()
			f.professionals[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProfessionalStore) Delete(_ context.Context, id string) (*model.Professional, error) {
	for i := range f.professionals {
		if f.professionals[i].ID == id {
			p := f.professionals[i]
			f.professionals = append(f.professionals[:i], f.professionals[i+1:]...)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeEventStore struct {
	events []model.Event
}

func (f *fakeEventStore) List(_ context.Context) ([]model.Event, error) {
	return append([]model.Event(nil), f.events...), nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id string) (*model.Event, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			e := f.events[i]
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEventStore) Create(_ context.Context, e *model.Event) error {
	e.ID = uuid.New().String()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeEventStore) Update(_ context.Context, e *model.Event) error {
	for i := range f.events {
		if f.events[i].ID == e.ID {
			e.CreatedAt = f.events[i].CreatedAt
			e.UpdatedAt = time.Now()
			f.events[i] = *e
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeEventStore) Delete(_ context.Context, id string) (*model.Event, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			e := f.events[i]
			f.events = append(f.events[:i], f.events[i+1:]...)
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeAppointmentStore struct {
	appointments []model.Appointment
}

func (f *fakeAppointmentStore) List(_ context.Context) ([]model.Appointment, error) {
	return append([]model.Appointment(nil), f.appointments...), nil
}

func (f *fakeAppointmentStore) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			a := f.appointments[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentStore) Create(_ context.Context, a *model.Appointment) error {
	a.ID = uuid.New().String()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.appointments = append(f.appointments, *a)
	return nil
}

func (f *fakeAppointmentStore) Update(_ context.Context, a *model.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == a.ID {
			a.CreatedAt = f.appointments[i].CreatedAt
			a.UpdatedAt = time.Now()
			f.appointments[i] = *a
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeAppointmentStore) Delete(_ context.Context, id string) (*model.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			a := f.appointments[i]
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

// fakeSessionStore keeps sessions in a map, standing in for Redis.
type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (f *fakeSessionStore) Set(_ context.Context, key, jti string, _ time.Duration) error {
	f.sessions[key] = jti
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, key string) (string, error) {
	return f.sessions[key], nil
}

func (f *fakeSessionStore) Del(_ context.Context, key string) error {
	delete(f.sessions, key)
	return nil
}

var _ service.SessionStore = (*fakeSessionStore)(nil)

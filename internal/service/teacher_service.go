package service

import (
	"context"
	"errors"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/chainsped/chain-backend/internal/repository"
)

// ErrUserReference is returned when a teacher or student payload references
// a user id that does not exist.
var ErrUserReference = errors.New("referenced user does not exist")

// TeacherService handles teacher business logic, including the user
// reference check and name materialization.
type TeacherService struct {
	teachers TeacherStore
	users    UserStore
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teachers TeacherStore, users UserStore) *TeacherService {
	return &TeacherService{teachers: teachers, users: users}
}

// List retrieves all teachers.
func (s *TeacherService) List(ctx context.Context) ([]model.Teacher, error) {
	return s.teachers.List(ctx)
}

// GetByID retrieves a teacher by ID.
func (s *TeacherService) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	return s.teachers.GetByID(ctx, id)
}

// Create stores a new teacher. The referenced user must exist; its current
// name is copied into the record and not kept in sync afterwards.
func (s *TeacherService) Create(ctx context.Context, req model.TeacherRequest) (*model.Teacher, error) {
	name, err := s.resolveUserName(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	t := &model.Teacher{
		UserID:            req.UserID,
		Name:              name,
		SchoolDisciplines: req.SchoolDisciplines,
		Contact:           req.Contact,
		PhoneNumber:       req.PhoneNumber,
		Status:            req.Status,
	}
	if err := s.teachers.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces a teacher's fields. The user reference is re-checked and
// the name re-materialized; the stored ID always wins.
func (s *TeacherService) Update(ctx context.Context, id string, req model.TeacherRequest) (*model.Teacher, error) {
	if _, err := s.teachers.GetByID(ctx, id); err != nil {
		return nil, err
	}

	name, err := s.resolveUserName(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	t := &model.Teacher{
		ID:                id,
		UserID:            req.UserID,
		Name:              name,
		SchoolDisciplines: req.SchoolDisciplines,
		Contact:           req.Contact,
		PhoneNumber:       req.PhoneNumber,
		Status:            req.Status,
	}
	if err := s.teachers.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a teacher and returns the removed record.
func (s *TeacherService) Delete(ctx context.Context, id string) (*model.Teacher, error) {
	return s.teachers.Delete(ctx, id)
}

func (s *TeacherService) resolveUserName(ctx context.Context, userID string) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserReference
		}
		return "", err
	}
	return user.Name, nil
}

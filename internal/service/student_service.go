package service

import (
	"context"
	"errors"
	"strings"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/chainsped/chain-backend/internal/repository"
	"github.com/google/uuid"
)

// StudentService handles student business logic: user reference check, name
// materialization and the optional unique student code.
type StudentService struct {
	students StudentStore
	users    UserStore
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore, users UserStore) *StudentService {
	return &StudentService{students: students, users: users}
}

// List retrieves all students.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.students.List(ctx)
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return s.students.GetByID(ctx, id)
}

// Create stores a new student. The referenced user must exist and its
// current name is copied into the record. An omitted studentId is filled
// with a generated 8-character code.
func (s *StudentService) Create(ctx context.Context, req model.StudentRequest) (*model.Student, error) {
	name, err := s.resolveUserName(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	code := req.StudentCode
	if code == "" {
		code = newStudentCode()
	}

	st := &model.Student{
		UserID:       req.UserID,
		Name:         name,
		Age:          req.Age,
		Parents:      req.Parents,
		PhoneNumber:  req.PhoneNumber,
		SpecialNeeds: req.SpecialNeeds,
		Status:       req.Status,
		StudentCode:  code,
	}
	if err := s.students.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Update replaces a student's fields. The user reference is re-checked, the
// name re-materialized, and the stored ID always wins.
func (s *StudentService) Update(ctx context.Context, id string, req model.StudentRequest) (*model.Student, error) {
	existing, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, err := s.resolveUserName(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	code := req.StudentCode
	if code == "" {
		code = existing.StudentCode
	}

	st := &model.Student{
		ID:           existing.ID,
		UserID:       req.UserID,
		Name:         name,
		Age:          req.Age,
		Parents:      req.Parents,
		PhoneNumber:  req.PhoneNumber,
		SpecialNeeds: req.SpecialNeeds,
		Status:       req.Status,
		StudentCode:  code,
	}
	if err := s.students.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Delete removes a student and returns the removed record.
func (s *StudentService) Delete(ctx context.Context, id string) (*model.Student, error) {
	return s.students.Delete(ctx, id)
}

func (s *StudentService) resolveUserName(ctx context.Context, userID string) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserReference
		}
		return "", err
	}
	return user.Name, nil
}

// newStudentCode generates the 8-character business code assigned when a
// student is created without one.
func newStudentCode() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

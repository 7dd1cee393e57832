package repository

import "errors"

// Sentinel errors shared by all repositories. pgx-specific failures are
// translated at this boundary so callers never depend on driver errors.
var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateStudentCode = errors.New("student code already in use")
)

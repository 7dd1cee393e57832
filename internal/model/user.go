package model

import "time"

// Level represents a user's access level.
type Level string

const (
	LevelAdmin    Level = "1"
	LevelOperator Level = "2"
)

// User represents a system account that can sign in to the admin UI.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"user"`
	PasswordHash string    `json:"-"`
	Level        Level     `json:"level"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUserRequest is the payload for creating a new user.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"user" binding:"required,min=2,max=50"`
	Password string `json:"pwd" binding:"required,min=6,max=128"`
	Level    Level  `json:"level" binding:"required,oneof=1 2"`
	Status   Status `json:"status" binding:"required,oneof=on off"`
}

// UpdateUserRequest is the payload for replacing an existing user.
// An empty pwd keeps the stored password hash.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"user" binding:"required,min=2,max=50"`
	Password string `json:"pwd" binding:"omitempty,min=6,max=128"`
	Level    Level  `json:"level" binding:"required,oneof=1 2"`
	Status   Status `json:"status" binding:"required,oneof=on off"`
}

// LoginRequest is the credential payload for POST /users/login.
// The password field is named senha for compatibility with the
// existing client.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Level Level  `json:"level"`
	Token string `json:"token"`
	User  User   `json:"user"`
}

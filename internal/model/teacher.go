package model

import "time"

// Teacher represents a teaching staff record. The name field is copied from
// the referenced user when the record is written and is not kept in sync
// with later user renames.
type Teacher struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	SchoolDisciplines string    `json:"school_disciplines"`
	Contact           string    `json:"contact"`
	PhoneNumber       string    `json:"phone_number"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TeacherRequest is the payload for creating or replacing a teacher.
// The name is derived from the referenced user, never taken from the client.
type TeacherRequest struct {
	UserID            string `json:"user_id" binding:"required"`
	SchoolDisciplines string `json:"school_disciplines" binding:"required"`
	Contact           string `json:"contact" binding:"required"`
	PhoneNumber       string `json:"phone_number" binding:"required"`
	Status            Status `json:"status" binding:"required,oneof=on off"`
}

package model

import "time"

// Student represents an enrolled student. Like Teacher, the name is
// materialized from the referenced user at write time. StudentCode is the
// optional unique business identifier the original system called studentId.
type Student struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Age          string    `json:"age"`
	Parents      string    `json:"parents"`
	PhoneNumber  string    `json:"phone_number"`
	SpecialNeeds string    `json:"special_needs"`
	Status       Status    `json:"status"`
	StudentCode  string    `json:"studentId"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentRequest is the payload for creating or replacing a student.
// An omitted studentId is filled with a generated 8-character code.
type StudentRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	Age          string `json:"age" binding:"required"`
	Parents      string `json:"parents" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	SpecialNeeds string `json:"special_needs" binding:"required"`
	Status       Status `json:"status" binding:"required,oneof=on off"`
	StudentCode  string `json:"studentId" binding:"omitempty,min=4,max=20"`
}

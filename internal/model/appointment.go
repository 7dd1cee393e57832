package model

import "time"

// Appointment represents a scheduled meeting between a student and a
// professional. Both participants are stored as free text, matching the
// records the program keeps on paper.
type Appointment struct {
	ID           string    `json:"id"`
	Specialty    string    `json:"specialty"`
	Comments     string    `json:"comments"`
	Date         time.Time `json:"date"`
	Student      string    `json:"student"`
	Professional string    `json:"professional"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AppointmentRequest is the payload for creating or replacing an appointment.
type AppointmentRequest struct {
	Specialty    string    `json:"specialty" binding:"required"`
	Comments     string    `json:"comments" binding:"required"`
	Date         time.Time `json:"date" binding:"required"`
	Student      string    `json:"student" binding:"required"`
	Professional string    `json:"professional" binding:"required"`
}

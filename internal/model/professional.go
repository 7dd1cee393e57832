package model

import "time"

// Professional represents an external specialist (therapist, psychologist,
// and so on) that students can have appointments with.
type Professional struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Specialty   string    `json:"specialty"`
	Contact     string    `json:"contact"`
	PhoneNumber string    `json:"phone_number"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfessionalRequest is the payload for creating or replacing a professional.
type ProfessionalRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Specialty   string `json:"specialty" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Status      Status `json:"status" binding:"required,oneof=on off"`
}

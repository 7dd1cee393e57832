package model

import "time"

// Event represents a dated program event.
type Event struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Comments    string    `json:"comments"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventRequest is the payload for creating or replacing an event.
type EventRequest struct {
	Description string    `json:"description" binding:"required"`
	Comments    string    `json:"comments" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

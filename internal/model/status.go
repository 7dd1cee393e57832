package model

// Status is the activation flag shared by users, teachers, students and
// professionals.
type Status string

const (
	StatusOn  Status = "on"
	StatusOff Status = "off"
)

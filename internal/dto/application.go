package dto

import "time"

// ApplicationInput is the body of a lead form submission.
type ApplicationInput struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"required,e164"`
	Email        string `json:"email" validate:"omitempty,email,max=254"`
	UniversityID *uint  `json:"university_id" validate:"omitempty,gt=0"`
	Program      string `json:"program" validate:"max=200"`
	Level        string `json:"level" validate:"omitempty,oneof=bachelor master phd"`
	Message      string `json:"message" validate:"max=2000"`
	Source       string `json:"source" validate:"max=50"`
}

type ApplicationReceipt struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

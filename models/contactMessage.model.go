package models

import "gorm.io/gorm"

// ContactMessage is a write-only record of a contact form submission.
type ContactMessage struct {
	gorm.Model
	ReferenceID string `json:"reference_id" gorm:"uniqueIndex;not null"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

package models

import "gorm.io/gorm"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// UserRole maps a user to either "student" or "admin". One row per user,
// created at registration and read-only from the application afterwards.
type UserRole struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Role   string `json:"role" gorm:"default:'student'"`
}

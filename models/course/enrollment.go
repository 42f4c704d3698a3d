package course

import "gorm.io/gorm"

// Enrollment links a user to a course. The composite unique index backs
// the at-most-one-enrollment invariant at the storage level; a conflicting
// concurrent insert surfaces as gorm.ErrDuplicatedKey and is handled as
// "already enrolled" rather than relying on the check-then-insert read.
type Enrollment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID  uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Status    string `json:"status" gorm:"default:'enrolled'"`
	Course    Course `json:"course" gorm:"foreignKey:CourseID"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

package models

import "gorm.io/gorm"

// Profile holds the contact and emergency details a student must supply
// before enrolling. One-to-one with User, upserted on save.
//
// Phone is stored as "<country_code> <national_number>" and split back
// apart on the first space when loaded.
//
// ProfileCompleted is a stored flag set true on a successful full save.
// It is never recomputed from the field values at read time.
type Profile struct {
	gorm.Model
	UserID                uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	FullName              string `json:"full_name" gorm:"default:''"`
	Email                 string `json:"email" gorm:"default:''"`
	Phone                 string `json:"phone" gorm:"default:''"`
	DateOfBirth           string `json:"date_of_birth" gorm:"default:''"`
	Gender                string `json:"gender" gorm:"default:''"`
	Address               string `json:"address" gorm:"default:''"`
	EmergencyContactName  string `json:"emergency_contact_name" gorm:"default:''"`
	EmergencyContactPhone string `json:"emergency_contact_phone" gorm:"default:''"`
	ProfileCompleted      bool   `json:"profile_completed" gorm:"default:false"`
}

// MissingEnrollmentFields lists the profile fields the enrollment flow
// requires but which are empty. Email is intentionally not part of this
// check; the profile form enforces it separately.
func (p *Profile) MissingEnrollmentFields() []string {
	var missing []string
	if p.FullName == "" {
		missing = append(missing, "Full Name")
	}
	if p.Phone == "" {
		missing = append(missing, "Phone Number")
	}
	if p.DateOfBirth == "" {
		missing = append(missing, "Date of Birth")
	}
	if p.Address == "" {
		missing = append(missing, "Address")
	}
	if p.EmergencyContactName == "" {
		missing = append(missing, "Emergency Contact Name")
	}
	if p.EmergencyContactPhone == "" {
		missing = append(missing, "Emergency Contact Phone")
	}
	return missing
}

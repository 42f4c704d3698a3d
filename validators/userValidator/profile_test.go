package userValidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeProfileRequest() *ProfileRequest {
	return &ProfileRequest{
		FullName:              "Ada Lovelace",
		Email:                 "ada@example.com",
		CountryCode:           "+1",
		Phone:                 "5551234567",
		DateOfBirth:           "1990-12-10",
		Gender:                "female",
		Address:               "12 Analytical Engine Road, London",
		EmergencyContactName:  "Charles Babbage",
		EmergencyContactPhone: "5557654321",
	}
}

func TestValidateProfileAcceptsCompleteForm(t *testing.T) {
	errors := ValidateProfile(completeProfileRequest())
	assert.Empty(t, errors)
}

func TestValidateProfileFieldRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ProfileRequest)
		wantKey  string
	}{
		{"short name", func(r *ProfileRequest) { r.FullName = "A" }, "full_name"},
		{"invalid email", func(r *ProfileRequest) { r.Email = "not-an-email" }, "email"},
		{"missing email", func(r *ProfileRequest) { r.Email = "" }, "email"},
		{"missing country code", func(r *ProfileRequest) { r.CountryCode = " " }, "country_code"},
		{"short phone", func(r *ProfileRequest) { r.Phone = "555123" }, "phone"},
		{"missing date of birth", func(r *ProfileRequest) { r.DateOfBirth = "" }, "date_of_birth"},
		{"missing gender", func(r *ProfileRequest) { r.Gender = "" }, "gender"},
		{"short address", func(r *ProfileRequest) { r.Address = "short" }, "address"},
		{"short emergency name", func(r *ProfileRequest) { r.EmergencyContactName = "X" }, "emergency_contact_name"},
		{"short emergency phone", func(r *ProfileRequest) { r.EmergencyContactPhone = "123" }, "emergency_contact_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := completeProfileRequest()
			tt.mutate(req)

			errors := ValidateProfile(req)
			assert.Len(t, errors, 1)
			assert.Contains(t, errors, tt.wantKey)
		})
	}
}

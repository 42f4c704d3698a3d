package userValidator

import (
	"academy/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ProfileRequest is the payload of the edit-profile form.
type ProfileRequest struct {
	FullName              string `json:"full_name"`
	Email                 string `json:"email"`
	CountryCode           string `json:"country_code"`
	Phone                 string `json:"phone"`
	DateOfBirth           string `json:"date_of_birth"`
	Gender                string `json:"gender"`
	Address               string `json:"address"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

// ValidateProfile applies the profile form rules to a parsed request.
// Exposed separately so it can be tested without a running app.
func ValidateProfile(reqData *ProfileRequest) map[string]string {
	errors := make(map[string]string)

	if len(strings.TrimSpace(reqData.FullName)) < 2 {
		errors["full_name"] = "Name must be at least 2 characters"
	}

	if validate.Var(reqData.Email, "required,email") != nil {
		errors["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(reqData.CountryCode) == "" {
		errors["country_code"] = "Country code is required"
	}

	if len(strings.TrimSpace(reqData.Phone)) < 10 {
		errors["phone"] = "Phone number must be at least 10 digits"
	}

	if strings.TrimSpace(reqData.DateOfBirth) == "" {
		errors["date_of_birth"] = "Date of birth is required"
	}

	if strings.TrimSpace(reqData.Gender) == "" {
		errors["gender"] = "Please select your gender"
	}

	if len(strings.TrimSpace(reqData.Address)) < 10 {
		errors["address"] = "Address must be at least 10 characters"
	}

	if len(strings.TrimSpace(reqData.EmergencyContactName)) < 2 {
		errors["emergency_contact_name"] = "Emergency contact name is required"
	}

	if len(strings.TrimSpace(reqData.EmergencyContactPhone)) < 10 {
		errors["emergency_contact_phone"] = "Emergency contact phone is required"
	}

	return errors
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := ValidateProfile(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

package userController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	userValidator "academy/validators/userValidator"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// GetProfile returns the caller's profile. When none exists yet the
// response carries defaults derived from the user record, with
// profile_completed false.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var profile models.Profile
	if err := database.Database.Db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		profile = models.Profile{
			UserID:   userID,
			FullName: user.Name,
			Email:    user.Email,
		}
	}

	countryCode, phone := utils.SplitPhone(profile.Phone)
	if profile.Phone == "" {
		countryCode, phone = "+1", ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"profile":      profile,
		"country_code": countryCode,
		"phone":        phone,
	})
}

// UpdateProfile persists the profile form. Three stages run in order and
// each failure carries its own label so the caller can tell which one
// failed: auth email update, display-name update, profile upsert.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.ProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Stage 1: account email, only when changed
	if reqData.Email != user.Email {
		if err := db.Model(&user).Update("email", reqData.Email).Error; err != nil {
			log.Printf("Error updating email for user %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Email update failed: "+err.Error(), nil)
		}
	}

	// Stage 2: display name
	if err := db.Model(&user).Update("name", reqData.FullName).Error; err != nil {
		log.Printf("Error updating name for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Name update failed: "+err.Error(), nil)
	}

	// Stage 3: profile upsert, completeness flag set at write time
	profile := models.Profile{
		UserID:                userID,
		FullName:              reqData.FullName,
		Email:                 reqData.Email,
		Phone:                 utils.ComposePhone(reqData.CountryCode, reqData.Phone),
		DateOfBirth:           reqData.DateOfBirth,
		Gender:                reqData.Gender,
		Address:               reqData.Address,
		EmergencyContactName:  reqData.EmergencyContactName,
		EmergencyContactPhone: reqData.EmergencyContactPhone,
		ProfileCompleted:      true,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "email", "phone", "date_of_birth", "gender", "address",
			"emergency_contact_name", "emergency_contact_phone", "profile_completed", "updated_at",
		}),
	}).Create(&profile).Error
	if err != nil {
		log.Printf("Error upserting profile for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Profile update failed: "+err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}

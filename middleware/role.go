package middleware

import (
	"academy/database"
	"academy/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ResolveRole looks up the role assignment for a user. Any failure
// (missing row, database error) yields "student": admin access is never
// granted on an error path.
func ResolveRole(userID uint) string {
	var assignment models.UserRole
	if err := database.Database.Db.Where("user_id = ?", userID).First(&assignment).Error; err != nil {
		log.Printf("Error fetching role for user %d, defaulting to student: %v", userID, err)
		return models.RoleStudent
	}
	if assignment.Role != models.RoleAdmin {
		return models.RoleStudent
	}
	return models.RoleAdmin
}

// RequireAdmin re-resolves the caller's role on every request rather than
// trusting anything cached in the token.
func RequireAdmin(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if ResolveRole(userID) != models.RoleAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	return c.Next()
}

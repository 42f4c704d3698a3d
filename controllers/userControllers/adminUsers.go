package userController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminGetUsers lists accounts with their resolved role for the
// back-office user management screen, with text search and pagination
func AdminGetUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUserList").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Search *string `query:"search"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	if ok && reqData.Search != nil && strings.TrimSpace(*reqData.Search) != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(*reqData.Search)) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	// Get total count
	var total int64
	db.Count(&total)

	// Fetch paginated data
	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	type UserWithRole struct {
		models.User
		Role string `json:"role"`
	}

	rows := make([]UserWithRole, 0, len(users))
	for _, user := range users {
		user.Password = ""
		rows = append(rows, UserWithRole{
			User: user,
			Role: middleware.ResolveRole(user.ID),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": rows,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

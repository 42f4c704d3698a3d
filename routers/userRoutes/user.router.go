package userRoutes

import (
	courseControllers "academy/controllers/course"
	userControllers "academy/controllers/userControllers"
	"academy/middleware"
	courseValidators "academy/validators/course"
	userValidators "academy/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and dashboard routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidators.UpdateProfile(), userControllers.UpdateProfile)

	userGroup.Get("/enrollments", middleware.JWTMiddleware, courseValidators.GetUserEnrollments(), courseControllers.GetEnrollments)
}

package courseRoutes

import (
	controllers "academy/controllers/course"
	userControllers "academy/controllers/userControllers"
	"academy/middleware"
	validators "academy/validators/course"
	userValidators "academy/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the role-gated back-office routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin)

	adminGroup.Get("/course/list", validators.AdminCourseList(), controllers.AdminGetAllCourses)
	adminGroup.Post("/course", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/course/:id", validators.CourseID(), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/course/:id", validators.CourseID(), controllers.AdminDeleteCourse)

	adminGroup.Get("/course/:id/enrollments", validators.CourseID(), controllers.AdminGetCourseEnrollments)
	adminGroup.Get("/users", userValidators.AdminUserList(), userControllers.AdminGetUsers)
	adminGroup.Get("/stats", controllers.AdminGetStats)
}

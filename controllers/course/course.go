package controllers

import (
	"academy/cache"
	"academy/database"
	"academy/middleware"
	"academy/models"
	courseModels "academy/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the catalog, newest first, served through the course
// list cache when Redis is available.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course

	if err := cache.GetCourseList(c.Context(), &courses); err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
	}

	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	if err := cache.SetCourseList(c.Context(), courses); err != nil {
		log.Printf("Error caching course list: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns a single course. Public, like the listing.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", course)
}

// GetCourseStatus reports what the enrollment screen needs for the signed-in
// caller: whether they are enrolled, and whether their profile clears the
// enrollment gate.
func GetCourseStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	isEnrolled := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error == nil

	var profile models.Profile
	if err := database.Database.Db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		profile = models.Profile{UserID: userID}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course status fetched successfully!", fiber.Map{
		"is_enrolled":       isEnrolled,
		"profile_completed": profile.ProfileCompleted,
		"missing_fields":    profile.MissingEnrollmentFields(),
	})
}

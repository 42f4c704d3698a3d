package controllers

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	courseModels "academy/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminGetCourseEnrollments gets all enrolled students for a course
func AdminGetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithStudent struct {
		courseModels.Enrollment
		StudentName  string `json:"student_name"`
		StudentEmail string `json:"student_email"`
	}

	roster := make([]EnrollmentWithStudent, 0, len(enrollments))
	for _, enrollment := range enrollments {
		row := EnrollmentWithStudent{Enrollment: enrollment}

		var profile models.Profile
		if err := database.Database.Db.Where("user_id = ?", enrollment.UserID).First(&profile).Error; err == nil {
			row.StudentName = profile.FullName
			row.StudentEmail = profile.Email
		} else {
			var user models.User
			if err := database.Database.Db.Where("id = ?", enrollment.UserID).First(&user).Error; err == nil {
				row.StudentName = user.Name
				row.StudentEmail = user.Email
			}
		}

		roster = append(roster, row)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course enrollments fetched successfully!", fiber.Map{
		"course":      course,
		"enrollments": roster,
	})
}

// AdminGetStats returns the dashboard totals
func AdminGetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var totalUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)

	var totalStudents int64
	db.Model(&models.UserRole{}).Where("role = ?", models.RoleStudent).Count(&totalStudents)

	var totalEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	var totalMessages int64
	db.Model(&models.ContactMessage{}).Count(&totalMessages)

	var recentEnrollments []courseModels.Enrollment
	db.Where("is_deleted = ?", false).Preload("Course").Order("created_at desc").Limit(5).Find(&recentEnrollments)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"total_courses":      totalCourses,
		"total_users":        totalUsers,
		"total_students":     totalStudents,
		"total_enrollments":  totalEnrollments,
		"total_messages":     totalMessages,
		"recent_enrollments": recentEnrollments,
	})
}

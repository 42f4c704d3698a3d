package notifyController

import (
	"academy/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Handlers for the notification function endpoints. These mirror the
// hosted functions the rest of the app invokes by name with a JSON body:
// a plain JSON contract ({success, ...ids} or {error}) rather than the
// application envelope, so the notifier client and any external caller
// see the same shape the original functions exposed.

// SendContactEmail emails a confirmation to the sender and a copy to the
// admin address. Per-recipient failures are logged and reflected only in
// the returned ids; the handler itself still reports success.
func SendContactEmail(c *fiber.Ctx) error {
	var payload utils.ContactEmailPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userEmailID, err := utils.SendContactConfirmationEmail(payload.Name, payload.Email, payload.Subject, payload.Message)
	if err != nil {
		log.Printf("Error sending contact confirmation to %s: %v", payload.Email, err)
	}

	adminEmailID, err := utils.SendContactAdminEmail(payload.Name, payload.Email, payload.Subject, payload.Message)
	if err != nil {
		log.Printf("Error sending contact copy to admin: %v", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"userEmailId":  userEmailID,
		"adminEmailId": adminEmailID,
	})
}

// SendEnrollmentNotification emails an enrollment confirmation to the
// student and a notification to the admin address.
func SendEnrollmentNotification(c *fiber.Ctx) error {
	var payload utils.EnrollmentNotificationPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("Processing enrollment notification for: %s in course: %s", payload.UserName, payload.CourseTitle)

	studentEmailID, err := utils.SendEnrollmentConfirmationEmail(payload.UserEmail, payload.UserName, payload.CourseTitle, payload.CourseInstructor)
	if err != nil {
		log.Printf("Error in enrollment notification function: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	adminEmailID, err := utils.SendEnrollmentAdminEmail(payload.CourseTitle, payload.CourseInstructor, payload.UserName, payload.UserEmail, payload.UserPhone, payload.UserAddress)
	if err != nil {
		log.Printf("Error in enrollment notification function: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":        true,
		"studentEmailId": studentEmailID,
		"adminEmailId":   adminEmailID,
	})
}

package notifyRoutes

import (
	notifyControllers "academy/controllers/notify"

	"github.com/gofiber/fiber/v2"
)

// SetupNotifyRoutes mounts the notification function endpoints
func SetupNotifyRoutes(app *fiber.App) {
	functionsGroup := app.Group("/functions/v1")

	functionsGroup.Post("/send-contact-email", notifyControllers.SendContactEmail)
	functionsGroup.Post("/send-enrollment-notification", notifyControllers.SendEnrollmentNotification)
}

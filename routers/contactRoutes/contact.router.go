package contactRoutes

import (
	contactControllers "academy/controllers/contact"
	contactValidators "academy/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	app.Post("/contact", contactValidators.ContactForm(), contactControllers.SubmitContactForm)
}

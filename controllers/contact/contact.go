package contactController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SubmitContactForm persists the message, then invokes the contact email
// function with the same payload. The email is best-effort: the message is
// already saved, so a notifier failure is logged and the request still
// succeeds.
func SubmitContactForm(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		ReferenceID: uuid.NewString(),
		Name:        reqData.Name,
		Email:       reqData.Email,
		Subject:     reqData.Subject,
		Message:     reqData.Message,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		log.Printf("Error saving contact message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send your message!", nil)
	}

	payload := utils.ContactEmailPayload{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Message: reqData.Message,
	}
	if err := utils.InvokeFunction(utils.FuncSendContactEmail, payload); err != nil {
		log.Printf("Email sending error for contact message %s: %v", message.ReferenceID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thank you for your message. We will get back to you soon.", fiber.Map{
		"reference_id": message.ReferenceID,
	})
}

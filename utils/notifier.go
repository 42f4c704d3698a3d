package utils

import (
	"academy/config"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Function names, matching the endpoints under FunctionsBaseURL.
const (
	FuncSendContactEmail           = "send-contact-email"
	FuncSendEnrollmentNotification = "send-enrollment-notification"
)

// ContactEmailPayload is the body of the contact notification function.
type ContactEmailPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EnrollmentNotificationPayload is the body of the enrollment notification function.
type EnrollmentNotificationPayload struct {
	UserEmail        string `json:"userEmail"`
	UserName         string `json:"userName"`
	CourseTitle      string `json:"courseTitle"`
	CourseInstructor string `json:"courseInstructor"`
	UserPhone        string `json:"userPhone"`
	UserAddress      string `json:"userAddress"`
}

var notifierClient = resty.New().SetTimeout(10 * time.Second)

// InvokeFunction posts a JSON body to the named notification function.
// Callers treat failures as best-effort: log, never roll back.
func InvokeFunction(name string, payload interface{}) error {
	resp, err := notifierClient.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(config.AppConfig.FunctionsBaseURL + "/" + name)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("function %s returned status %d", name, resp.StatusCode())
	}
	return nil
}

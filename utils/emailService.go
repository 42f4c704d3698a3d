package utils

import (
	"academy/config"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid and returns the
// provider message id for the send.
func SendEmail(toEmail, toName, subject, plainBody, htmlBody string) (string, error) {
	from := mail.NewEmail(config.AppConfig.EmailName, config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, htmlBody)

	request := sendgrid.GetRequest(config.AppConfig.SendGridKey, "/v3/mail/send", config.AppConfig.SendGridHost)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.API(request)
	if err != nil {
		fmt.Println("Error sending email:", err)
		return "", err
	}
	if response.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	messageID := ""
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}
	return messageID, nil
}

// HTML wrapper shared by all academy emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<div style="max-width: 600px; margin: 0 auto; font-family: Arial, sans-serif;">
		<h1 style="color: #2563eb; text-align: center;">Al-Farooq Academy</h1>
		<h2>%s</h2>
		%s
		<hr style="margin: 30px 0; border: none; border-top: 1px solid #e5e7eb;">
		<p style="font-size: 12px; color: #6b7280;">
			This is an automated message. Please do not reply to this email.
		</p>
	</div>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Registration
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Al-Farooq Academy"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Al-Farooq Academy</strong>! Your account has been created.</p>
		<p>You can now browse our catalog and enroll in courses.</p>
		<p><a href="%s/" style="display: inline-block; padding: 12px 24px; background-color: #2563eb; color: #FFFFFF; text-decoration: none; border-radius: 4px;">Go to the Academy</a></p>
	`, name, config.AppConfig.AppBaseURL)
	plain := fmt.Sprintf("Dear %s,\n\nWelcome to Al-Farooq Academy! Your account has been created.\nVisit %s/ to browse courses.\n", name, config.AppConfig.AppBaseURL)

	go SendEmail(email, name, subject, plain, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Enrollment confirmation (to the student)
func SendEnrollmentConfirmationEmail(userEmail, userName, courseTitle, courseInstructor string) (string, error) {
	subject := fmt.Sprintf("Enrollment Confirmation - %s", courseTitle)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have successfully enrolled in:</p>
		<div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="margin: 0 0 10px 0;">%s</h3>
			<p style="margin: 5px 0;"><strong>Instructor:</strong> %s</p>
			<p style="margin: 5px 0;"><strong>Format:</strong> In-Person</p>
		</div>
		<p><strong>What's Next?</strong></p>
		<ul>
			<li>You will receive course location and schedule details within 24-48 hours</li>
			<li>Please ensure your contact information is up to date</li>
			<li>Prepare any required materials as specified by your instructor</li>
		</ul>
		<p>If you have any questions, please don't hesitate to contact us.</p>
		<p>Best regards,<br>The Al-Farooq Academy Team</p>
	`, userName, courseTitle, courseInstructor)
	plain := fmt.Sprintf("Dear %s,\n\nYou have successfully enrolled in %s (instructor: %s).\nCourse location and schedule details will follow within 24-48 hours.\n", userName, courseTitle, courseInstructor)

	return SendEmail(userEmail, userName, subject, plain, getEmailTemplate("Enrollment Confirmation", body))
}

// 3. Enrollment notification (to admin)
func SendEnrollmentAdminEmail(courseTitle, courseInstructor, userName, userEmail, userPhone, userAddress string) (string, error) {
	subject := fmt.Sprintf("New Enrollment - %s", courseTitle)
	body := fmt.Sprintf(`
		<p>A new student has enrolled in one of your courses:</p>
		<div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="margin: 0 0 15px 0;">Course Details</h3>
			<p style="margin: 5px 0;"><strong>Course:</strong> %s</p>
			<p style="margin: 5px 0;"><strong>Instructor:</strong> %s</p>
		</div>
		<div style="background: #fef3c7; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="margin: 0 0 15px 0;">Student Information</h3>
			<p style="margin: 5px 0;"><strong>Name:</strong> %s</p>
			<p style="margin: 5px 0;"><strong>Email:</strong> %s</p>
			<p style="margin: 5px 0;"><strong>Phone:</strong> %s</p>
			<p style="margin: 5px 0;"><strong>Address:</strong> %s</p>
		</div>
		<p>Login to the admin dashboard to manage this enrollment.</p>
	`, courseTitle, courseInstructor, userName, userEmail, userPhone, userAddress)
	plain := fmt.Sprintf("New enrollment in %s (instructor: %s).\nStudent: %s <%s>, phone %s, address %s.\n", courseTitle, courseInstructor, userName, userEmail, userPhone, userAddress)

	return SendEmail(config.AppConfig.AdminEmail, "Admin", subject, plain, getEmailTemplate("New Course Enrollment", body))
}

// 4. Contact form confirmation (to the sender)
func SendContactConfirmationEmail(name, email, subject, message string) (string, error) {
	body := fmt.Sprintf(`
		<p>Thank you for contacting Al-Farooq Academy, %s!</p>
		<p>We have received your message about: <strong>%s</strong></p>
		<p>Your message:</p>
		<blockquote style="border-left: 4px solid #e2e8f0; padding-left: 1rem; margin: 1rem 0; color: #64748b;">
			%s
		</blockquote>
		<p>We will get back to you as soon as possible.</p>
		<p>Best regards,<br>Al-Farooq Academy Team</p>
	`, name, subject, strings.ReplaceAll(message, "\n", "<br>"))
	plain := fmt.Sprintf("Thank you for contacting Al-Farooq Academy, %s!\n\nWe received your message about: %s\n\n%s\n\nWe will get back to you as soon as possible.\n", name, subject, message)

	return SendEmail(email, name, "We received your message!", plain, getEmailTemplate("We received your message!", body))
}

// 5. Contact form copy (to admin)
func SendContactAdminEmail(name, email, subject, message string) (string, error) {
	body := fmt.Sprintf(`
		<p><strong>From:</strong> %s (%s)</p>
		<p><strong>Subject:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<blockquote style="border-left: 4px solid #e2e8f0; padding-left: 1rem; margin: 1rem 0;">
			%s
		</blockquote>
	`, name, email, subject, strings.ReplaceAll(message, "\n", "<br>"))
	plain := fmt.Sprintf("New contact form submission.\nFrom: %s <%s>\nSubject: %s\n\n%s\n", name, email, subject, message)

	return SendEmail(config.AppConfig.AdminEmail, "Admin", fmt.Sprintf("New Contact Form Submission: %s", subject), plain, getEmailTemplate("New Contact Form Submission", body))
}

// 6. Daily enrollment digest (to admin). Runs from the scheduler, so the
// send is synchronous and the caller logs the outcome.
func SendEnrollmentDigestEmail(count int64, lines []string) (string, error) {
	subject := fmt.Sprintf("Daily Enrollment Digest: %d new", count)
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString("<li>" + line + "</li>")
	}
	body := fmt.Sprintf(`
		<p>%d new enrollment(s) in the last 24 hours:</p>
		<ul>%s</ul>
		<p>Login to the admin dashboard for details.</p>
	`, count, sb.String())
	plain := fmt.Sprintf("%d new enrollment(s) in the last 24 hours:\n%s\n", count, strings.Join(lines, "\n"))

	return SendEmail(config.AppConfig.AdminEmail, "Admin", subject, plain, getEmailTemplate("Daily Enrollment Digest", body))
}

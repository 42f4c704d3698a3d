package notifyController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"academy/config"
	notifyRoutes "academy/routers/notifyRoutes"
	"academy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sendgridDouble records every mail send and answers like the provider:
// 202 Accepted with an X-Message-Id header.
type sendgridDouble struct {
	mu     sync.Mutex
	sends  []sentMail
	nextID int
	fail   bool
}

type sentMail struct {
	ToEmail string
	Subject string
}

func (s *sendgridDouble) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.fail {
			http.Error(w, `{"errors":[{"message":"upstream unavailable"}]}`, http.StatusInternalServerError)
			return
		}

		var body struct {
			Personalizations []struct {
				To []struct {
					Email string `json:"email"`
				} `json:"to"`
			} `json:"personalizations"`
			Subject string `json:"subject"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil && len(body.Personalizations) > 0 && len(body.Personalizations[0].To) > 0 {
			s.sends = append(s.sends, sentMail{
				ToEmail: body.Personalizations[0].To[0].Email,
				Subject: body.Subject,
			})
		}

		s.nextID++
		w.Header().Set("X-Message-Id", fmt.Sprintf("msg-%d", s.nextID))
		w.WriteHeader(http.StatusAccepted)
	}
}

func (s *sendgridDouble) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, sent := range s.sends {
		out = append(out, sent.ToEmail)
	}
	return out
}

func setupNotifyApp(t *testing.T, sendgridHost string) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		SendGridKey:  "test-key",
		SendGridHost: sendgridHost,
		EmailSender:  "noreply@test.local",
		EmailName:    "Test Academy",
		AdminEmail:   "admin@test.local",
	}

	app := fiber.New()
	notifyRoutes.SetupNotifyRoutes(app)
	return app
}

func postFunction(t *testing.T, app *fiber.App, name string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if raw, ok := body.([]byte); ok {
		buf.Write(raw)
	} else {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/"+name, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestSendEnrollmentNotificationEmailsStudentAndAdmin(t *testing.T) {
	double := &sendgridDouble{}
	provider := httptest.NewServer(double.handler())
	defer provider.Close()

	app := setupNotifyApp(t, provider.URL)

	resp, parsed := postFunction(t, app, utils.FuncSendEnrollmentNotification, utils.EnrollmentNotificationPayload{
		UserEmail:        "ada@example.com",
		UserName:         "Ada Lovelace",
		CourseTitle:      "Islamic Finance Fundamentals",
		CourseInstructor: "Dr. Abdullah Hassan",
		UserPhone:        "+1 5551234567",
		UserAddress:      "12 Analytical Engine Road",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "msg-1", parsed["studentEmailId"])
	assert.Equal(t, "msg-2", parsed["adminEmailId"])

	// Student first, then the admin copy
	assert.Equal(t, []string{"ada@example.com", "admin@test.local"}, double.recipients())
}

func TestSendEnrollmentNotificationFailsWhenProviderFails(t *testing.T) {
	double := &sendgridDouble{fail: true}
	provider := httptest.NewServer(double.handler())
	defer provider.Close()

	app := setupNotifyApp(t, provider.URL)

	resp, parsed := postFunction(t, app, utils.FuncSendEnrollmentNotification, utils.EnrollmentNotificationPayload{
		UserEmail:   "ada@example.com",
		UserName:    "Ada Lovelace",
		CourseTitle: "Islamic Finance Fundamentals",
	})

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, parsed, "error")
	assert.NotContains(t, parsed, "success")
}

func TestSendContactEmailEmailsSenderAndAdmin(t *testing.T) {
	double := &sendgridDouble{}
	provider := httptest.NewServer(double.handler())
	defer provider.Close()

	app := setupNotifyApp(t, provider.URL)

	resp, parsed := postFunction(t, app, utils.FuncSendContactEmail, utils.ContactEmailPayload{
		Name:    "Omar Farouk",
		Email:   "omar@example.com",
		Subject: "Course schedule",
		Message: "When does the next cohort start?",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "msg-1", parsed["userEmailId"])
	assert.Equal(t, "msg-2", parsed["adminEmailId"])
	assert.Equal(t, []string{"omar@example.com", "admin@test.local"}, double.recipients())
}

func TestSendContactEmailTolerateProviderFailure(t *testing.T) {
	// The contact function reports success even when sends fail; the ids
	// just come back empty.
	app := setupNotifyApp(t, "http://127.0.0.1:1")

	resp, parsed := postFunction(t, app, utils.FuncSendContactEmail, utils.ContactEmailPayload{
		Name:    "Omar Farouk",
		Email:   "omar@example.com",
		Subject: "Course schedule",
		Message: "Hello",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "", parsed["userEmailId"])
	assert.Equal(t, "", parsed["adminEmailId"])
}

func TestFunctionEndpointsRejectMalformedBody(t *testing.T) {
	app := setupNotifyApp(t, "http://127.0.0.1:1")

	resp, parsed := postFunction(t, app, utils.FuncSendEnrollmentNotification, []byte("{not json"))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, parsed, "error")
}

package utils

import (
	"academy/database"
	"academy/models"
	courseModels "academy/models/course"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeEnrollmentDigestScheduler sets up the daily admin digest
func InitializeEnrollmentDigestScheduler() {
	log.Println("[ENROLLMENT-DIGEST] Initializing enrollment digest scheduler...")

	c := cron.New()

	// Run daily at 8 AM
	c.AddFunc("0 8 * * *", func() {
		log.Println("[ENROLLMENT-DIGEST] Running daily enrollment digest...")
		ProcessEnrollmentDigest()
	})

	c.Start()
	log.Println("[ENROLLMENT-DIGEST] Enrollment digest scheduler started - runs daily at 8 AM")
}

// ProcessEnrollmentDigest emails the admin a summary of enrollments created
// in the last 24 hours. Silent when there are none.
func ProcessEnrollmentDigest() {
	db := database.Database.Db
	since := time.Now().AddDate(0, 0, -1)

	var enrollments []courseModels.Enrollment
	if err := db.
		Where("created_at >= ? AND is_deleted = ?", since, false).
		Preload("Course").
		Find(&enrollments).Error; err != nil {
		log.Printf("[ENROLLMENT-DIGEST] Error fetching recent enrollments: %v", err)
		return
	}

	if len(enrollments) == 0 {
		log.Println("[ENROLLMENT-DIGEST] No new enrollments, skipping digest")
		return
	}

	lines := make([]string, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var user models.User
		if err := db.Where("id = ?", enrollment.UserID).First(&user).Error; err != nil {
			log.Printf("[ENROLLMENT-DIGEST] Error fetching user %d: %v", enrollment.UserID, err)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s <%s> enrolled in %s", user.Name, user.Email, enrollment.Course.Title))
	}

	if _, err := SendEnrollmentDigestEmail(int64(len(enrollments)), lines); err != nil {
		log.Printf("[ENROLLMENT-DIGEST] Error sending digest: %v", err)
		return
	}
	log.Printf("[ENROLLMENT-DIGEST] Sent digest covering %d enrollment(s)", len(enrollments))
}

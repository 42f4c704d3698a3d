package main

import (
	"academy/config"
	"academy/database"
	courseModels "academy/models/course"
	"encoding/json"
	"log"

	"gorm.io/datatypes"
)

// Seeds the starter catalog for local development. Safe to re-run: courses
// already present (by title) are skipped.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	inserted := 0
	for _, seed := range seedCourses() {
		var existing courseModels.Course
		if err := db.Where("title = ? AND is_deleted = ?", seed.Title, false).First(&existing).Error; err == nil {
			log.Printf("Skipping existing course: %s", seed.Title)
			continue
		}

		if err := db.Create(&seed).Error; err != nil {
			log.Fatalf("Failed to seed course %q: %v", seed.Title, err)
		}
		inserted++
	}

	log.Printf("Seeding complete. Inserted %d course(s).", inserted)
}

func mustModulesJSON(modules []courseModels.Module) datatypes.JSON {
	data, err := json.Marshal(modules)
	if err != nil {
		log.Fatalf("Failed to marshal modules: %v", err)
	}
	return datatypes.JSON(data)
}

func seedCourses() []courseModels.Course {
	return []courseModels.Course{
		{
			Title:       "Islamic Finance Fundamentals",
			Description: "Comprehensive introduction to the principles, products, and practices of Sharia-compliant finance. Learn the foundations of ethical banking and investment.",
			Instructor:  "Dr. Abdullah Hassan",
			Duration:    "8 weeks",
			Level:       courseModels.LevelBeginner,
			Price:       299,
			ImageURL:    "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=500&h=300&fit=crop",
			Category:    "Islamic Finance",
			Modules: mustModulesJSON([]courseModels.Module{
				{
					ID: "m1", Title: "Introduction to Islamic Finance", Duration: "2 hours",
					Lessons: []courseModels.Lesson{
						{ID: "l1", Title: "History and Origins", Duration: "30 min", Type: courseModels.LessonVideo},
						{ID: "l2", Title: "Core Principles", Duration: "45 min", Type: courseModels.LessonVideo},
						{ID: "l3", Title: "Knowledge Check", Duration: "15 min", Type: courseModels.LessonQuiz},
					},
				},
				{
					ID: "m2", Title: "Sharia Compliance", Duration: "3 hours",
					Lessons: []courseModels.Lesson{
						{ID: "l4", Title: "Prohibited Elements", Duration: "60 min", Type: courseModels.LessonVideo},
						{ID: "l5", Title: "Halal Investments", Duration: "90 min", Type: courseModels.LessonVideo},
						{ID: "l6", Title: "Case Studies", Duration: "30 min", Type: courseModels.LessonReading},
					},
				},
			}),
		},
		{
			Title:       "Shari'ah and Banking Operations",
			Description: "Deep dive into how modern banks structure their products and operations to remain Sharia-compliant.",
			Instructor:  "Sheikh Muhammad Al-Rashid",
			Duration:    "10 weeks",
			Level:       courseModels.LevelIntermediate,
			Price:       399,
			ImageURL:    "https://images.unsplash.com/photo-1601597111158-2fceff292cdc?w=500&h=300&fit=crop",
			Category:    "Islamic Banking",
			Modules: mustModulesJSON([]courseModels.Module{
				{
					ID: "m3", Title: "Banking Products and Services", Duration: "4 hours",
					Lessons: []courseModels.Lesson{
						{ID: "l7", Title: "Murabaha Financing", Duration: "90 min", Type: courseModels.LessonVideo},
						{ID: "l8", Title: "Ijara Contracts", Duration: "90 min", Type: courseModels.LessonVideo},
						{ID: "l9", Title: "Product Analysis", Duration: "60 min", Type: courseModels.LessonReading},
					},
				},
			}),
		},
		{
			Title:       "Islamic FinTech Innovation",
			Description: "Explore how technology is reshaping Sharia-compliant financial services, from digital banking to payments.",
			Instructor:  "Dr. Fatima Al-Zahra",
			Duration:    "6 weeks",
			Level:       courseModels.LevelAdvanced,
			Price:       449,
			ImageURL:    "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=500&h=300&fit=crop",
			Category:    "FinTech",
			Modules: mustModulesJSON([]courseModels.Module{
				{
					ID: "m4", Title: "Digital Islamic Banking", Duration: "3 hours",
					Lessons: []courseModels.Lesson{
						{ID: "l10", Title: "Mobile Banking Solutions", Duration: "60 min", Type: courseModels.LessonVideo},
						{ID: "l11", Title: "Digital Payments", Duration: "90 min", Type: courseModels.LessonVideo},
						{ID: "l12", Title: "Security Considerations", Duration: "30 min", Type: courseModels.LessonReading},
					},
				},
			}),
		},
	}
}

package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course represents a course in the academy catalog
type Course struct {
	gorm.Model
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Instructor  string         `json:"instructor"`
	Duration    string         `json:"duration"` // e.g. "8 weeks"
	Level       string         `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced
	Price       float64        `json:"price" gorm:"default:0"`
	ImageURL    string         `json:"image_url"`
	Category    string         `json:"category"`
	Modules     datatypes.JSON `json:"modules"` // nested module/lesson structure
	CreatedBy   uint           `json:"created_by"`
	IsDeleted   bool           `json:"-" gorm:"default:false"`
}

// Module is a section within a course, serialized into Course.Modules.
type Module struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Lessons  []Lesson `json:"lessons"`
}

// Lesson types
const (
	LessonVideo   = "video"
	LessonReading = "reading"
	LessonQuiz    = "quiz"
)

type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Type     string `json:"type"` // video, reading, quiz
}

package models

import "time"

// LessonProgress records a completed lesson. At most one row exists per
// (user, lesson, language) triple.
type LessonProgress struct {
	ID                   int64     `json:"id" db:"id"`
	UserID               int64     `json:"user_id" db:"user_id"`
	LessonID             int64     `json:"lesson_id" db:"lesson_id"`
	Language             string    `json:"language" db:"language"`
	LessonTitle          string    `json:"lesson_title" db:"lesson_title"`
	TimeSpent            int       `json:"time_spent" db:"time_spent"` // Seconds
	CompletionPercentage int       `json:"completion_percentage" db:"completion_percentage"`
	Score                int       `json:"score" db:"score"`
	CompletedAt          time.Time `json:"completed_at" db:"completed_at"`
}

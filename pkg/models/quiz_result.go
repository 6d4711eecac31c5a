package models

import "time"

// QuizResult records a single quiz attempt. Retakes are meaningful, so
// attempts are never deduplicated.
type QuizResult struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	QuizID         int64     `json:"quiz_id" db:"quiz_id"`
	QuizTitle      string    `json:"quiz_title" db:"quiz_title"`
	Score          int       `json:"score" db:"score"` // Raw correct-answer count
	TotalQuestions int       `json:"total_questions" db:"total_questions"`
	Percentage     float64   `json:"percentage" db:"percentage"` // Rounded at write time
	TimeSpent      int       `json:"time_spent" db:"time_spent"` // Seconds
	PerfectScore   bool      `json:"perfect_score" db:"perfect_score"`
	CompletedAt    time.Time `json:"completed_at" db:"completed_at"`
}

package models

// UserActivity is the additive daily rollup of a user's lessons, quizzes,
// study time and points. Exactly one row exists per (user, activity_date).
type UserActivity struct {
	ID               int64 `json:"id" db:"id"`
	UserID           int64 `json:"user_id" db:"user_id"`
	ActivityDate     Date  `json:"activity_date" db:"activity_date"`
	LessonsCompleted int   `json:"lessons_completed" db:"lessons_completed"`
	QuizzesCompleted int   `json:"quizzes_completed" db:"quizzes_completed"`
	TotalStudyTime   int   `json:"total_study_time" db:"total_study_time"` // Seconds
	PointsEarned     int   `json:"points_earned" db:"points_earned"`
}

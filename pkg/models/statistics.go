package models

// UserStats is the flat statistics summary shown on the stats screens.
// Every field defaults to zero when the underlying tables are empty.
type UserStats struct {
	LessonsCompleted int `json:"lessons_completed" db:"lessons_completed"`
	QuizzesCompleted int `json:"quizzes_completed" db:"quizzes_completed"`
	LanguagesStudied int `json:"languages_studied" db:"languages_studied"`
	BestQuizScore    int `json:"best_quiz_score" db:"best_quiz_score"`
	TotalPoints      int `json:"total_points" db:"total_points"`
	AvgQuizTime      int `json:"avg_quiz_time" db:"avg_quiz_time"` // Seconds, rounded
	TotalLessonTime  int `json:"total_lesson_time" db:"total_lesson_time"`
	TotalQuizTime    int `json:"total_quiz_time" db:"total_quiz_time"`
	TotalStudyTime   int `json:"total_study_time" db:"total_study_time"` // Derived: lesson time + quiz time
	PerfectScores    int `json:"perfect_scores" db:"perfect_scores"`
	CurrentStreak    int `json:"current_streak" db:"current_streak"`
	LongestStreak    int `json:"longest_streak" db:"longest_streak"`
	DaysActive       int `json:"days_active" db:"days_active"` // Distinct active days in the trailing 30
}

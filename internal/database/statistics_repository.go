package database

import (
	"fmt"

	"github.com/example/proglearn/pkg/models"
)

// StatisticsRepository handles the aggregate statistics read path
type StatisticsRepository struct{}

// NewStatisticsRepository creates a new repository instance
func NewStatisticsRepository() *StatisticsRepository {
	return &StatisticsRepository{}
}

// GetUserStatistics returns the flat statistics summary for a user in a
// single round-trip of independent scalar subqueries. Every field defaults
// to zero when the underlying tables hold no rows. total_study_time is
// derived from the lesson and quiz time sums; the users.total_study_time
// column is vestigial and never read here.
func (r *StatisticsRepository) GetUserStatistics(userID int64) (*models.UserStats, error) {
	// Окно активности — последние 30 дней
	cutoff := models.Today().AddDays(-30)

	query := `
		SELECT
			(SELECT COUNT(*) FROM lesson_progress WHERE user_id = $1) AS lessons_completed,
			(SELECT COUNT(*) FROM quiz_results WHERE user_id = $1) AS quizzes_completed,
			(SELECT COUNT(DISTINCT language) FROM lesson_progress WHERE user_id = $1) AS languages_studied,
			(SELECT CAST(COALESCE(MAX(percentage), 0) AS INTEGER) FROM quiz_results WHERE user_id = $1) AS best_quiz_score,
			(SELECT COALESCE(SUM(points_earned), 0) FROM user_activity WHERE user_id = $1) AS total_points,
			(SELECT CAST(ROUND(COALESCE(AVG(time_spent), 0)) AS INTEGER) FROM quiz_results WHERE user_id = $1 AND time_spent > 0) AS avg_quiz_time,
			(SELECT COALESCE(SUM(time_spent), 0) FROM lesson_progress WHERE user_id = $1) AS total_lesson_time,
			(SELECT COALESCE(SUM(time_spent), 0) FROM quiz_results WHERE user_id = $1) AS total_quiz_time,
			(SELECT COUNT(*) FROM quiz_results WHERE user_id = $1 AND perfect_score = 1) AS perfect_scores,
			(SELECT COALESCE((SELECT current_streak FROM user_streaks WHERE user_id = $1), 0)) AS current_streak,
			(SELECT COALESCE((SELECT longest_streak FROM user_streaks WHERE user_id = $1), 0)) AS longest_streak,
			(SELECT COUNT(DISTINCT activity_date) FROM user_activity WHERE user_id = $1 AND activity_date >= $2) AS days_active
	`

	var stats models.UserStats
	if err := DB.Get(&stats, query, userID, cutoff); err != nil {
		return nil, fmt.Errorf("failed to get user statistics: %v", err)
	}

	stats.TotalStudyTime = stats.TotalLessonTime + stats.TotalQuizTime
	return &stats, nil
}

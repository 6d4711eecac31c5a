package database

import (
	"database/sql"
	"fmt"

	"github.com/example/proglearn/pkg/models"
	"github.com/jmoiron/sqlx"
)

// ActivityRepository handles database operations for daily activity rollups
type ActivityRepository struct{}

// NewActivityRepository creates a new repository instance
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

// GetByUserAndDate returns the activity row for a specific day, or nil when
// the user had no recorded activity on that day
func (r *ActivityRepository) GetByUserAndDate(userID int64, date models.Date) (*models.UserActivity, error) {
	var activity models.UserActivity
	err := DB.Get(&activity,
		"SELECT * FROM user_activity WHERE user_id = $1 AND activity_date = $2", userID, date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user activity: %v", err)
	}
	return &activity, nil
}

// GetByUserID returns all activity rows for a user, newest first
func (r *ActivityRepository) GetByUserID(userID int64) ([]models.UserActivity, error) {
	var activity []models.UserActivity
	err := DB.Select(&activity,
		"SELECT * FROM user_activity WHERE user_id = $1 ORDER BY activity_date DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user activity: %v", err)
	}
	return activity, nil
}

// upsertDailyActivity increments the rollup row for the given day or inserts
// a new one. All counters are additive. Invariant: one row per
// (user_id, activity_date).
func upsertDailyActivity(tx *sqlx.Tx, userID int64, date models.Date, lessons, quizzes, timeSpent, points int) error {
	var id int64
	err := tx.Get(&id,
		"SELECT id FROM user_activity WHERE user_id = $1 AND activity_date = $2", userID, date)
	if err == sql.ErrNoRows {
		_, err = tx.Exec(`
			INSERT INTO user_activity (user_id, activity_date, lessons_completed, quizzes_completed, total_study_time, points_earned)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, userID, date, lessons, quizzes, timeSpent, points)
		if err != nil {
			return fmt.Errorf("failed to create activity row: %v", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check user activity: %v", err)
	}

	_, err = tx.Exec(`
		UPDATE user_activity SET
			lessons_completed = lessons_completed + $1,
			quizzes_completed = quizzes_completed + $2,
			total_study_time = total_study_time + $3,
			points_earned = points_earned + $4
		WHERE id = $5
	`, lessons, quizzes, timeSpent, points, id)
	if err != nil {
		return fmt.Errorf("failed to update activity row: %v", err)
	}
	return nil
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/example/proglearn/pkg/models"
	"github.com/jmoiron/sqlx"
)

// StreakRepository handles database operations for study streaks
type StreakRepository struct{}

// NewStreakRepository creates a new repository instance
func NewStreakRepository() *StreakRepository {
	return &StreakRepository{}
}

// GetByUserID returns the streak row for a user, or nil when none exists
func (r *StreakRepository) GetByUserID(userID int64) (*models.UserStreak, error) {
	var streak models.UserStreak
	err := DB.Get(&streak, "SELECT * FROM user_streaks WHERE user_id = $1", userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user streak: %v", err)
	}
	return &streak, nil
}

// updateStreakTx applies the daily streak transition inside the caller's
// transaction. Called after every lesson or quiz completion.
//
// Transition rule:
//   - last activity yesterday: the streak continues, current + 1
//   - last activity neither today nor yesterday: the streak restarts at 1,
//     since today's activity itself counts as day one
//   - last activity today: unchanged, so repeated same-day completions never
//     inflate the streak
//
// The row is written back unconditionally with last_activity_date = today.
func updateStreakTx(tx *sqlx.Tx, userID int64, today models.Date) error {
	var streak models.UserStreak
	err := tx.Get(&streak, "SELECT * FROM user_streaks WHERE user_id = $1", userID)
	if err == sql.ErrNoRows {
		// Строка streak отсутствует — сегодняшняя активность считается первым днем
		_, err = tx.Exec(
			"INSERT INTO user_streaks (user_id, current_streak, longest_streak, last_activity_date) VALUES ($1, 1, 1, $2)",
			userID, today)
		if err != nil {
			return fmt.Errorf("failed to create user streak: %v", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get user streak: %v", err)
	}

	yesterday := today.AddDays(-1)
	current := streak.CurrentStreak
	if streak.LastActivityDate.Equal(yesterday) {
		current++
	} else if !streak.LastActivityDate.Equal(today) {
		current = 1
	} else if current == 0 {
		// The bootstrap row is dated today with no recorded activity yet;
		// the first completion still counts as day one.
		current = 1
	}

	longest := streak.LongestStreak
	if current > longest {
		longest = current
	}

	_, err = tx.Exec(
		"UPDATE user_streaks SET current_streak = $1, longest_streak = $2, last_activity_date = $3 WHERE user_id = $4",
		current, longest, today, userID)
	if err != nil {
		return fmt.Errorf("failed to update user streak: %v", err)
	}
	return nil
}

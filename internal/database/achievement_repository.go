package database

import (
	"database/sql"
	"fmt"

	"github.com/example/proglearn/pkg/models"
)

// AchievementRepository handles database operations for achievements
type AchievementRepository struct{}

// NewAchievementRepository creates a new repository instance
func NewAchievementRepository() *AchievementRepository {
	return &AchievementRepository{}
}

// Unlock records an achievement for the user. Idempotent: at most one row
// exists per (user_id, achievement_type), so unlocking an already-unlocked
// achievement is a no-op.
func (r *AchievementRepository) Unlock(userID int64, achievementType, achievementTitle string) error {
	var existingID int64
	err := DB.Get(&existingID,
		"SELECT id FROM achievements WHERE user_id = $1 AND achievement_type = $2",
		userID, achievementType)
	if err == nil {
		// Уже разблокировано
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check achievement: %v", err)
	}

	_, err = DB.Exec(
		"INSERT INTO achievements (user_id, achievement_type, achievement_title) VALUES ($1, $2, $3)",
		userID, achievementType, achievementTitle)
	if err != nil {
		return fmt.Errorf("failed to unlock achievement: %v", err)
	}
	return nil
}

// GetUnlockedTypes returns the achievement_type keys already unlocked for a user
func (r *AchievementRepository) GetUnlockedTypes(userID int64) ([]string, error) {
	var types []string
	err := DB.Select(&types,
		"SELECT achievement_type FROM achievements WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get unlocked achievements: %v", err)
	}
	return types, nil
}

// GetByUserID returns all achievement rows for a user, newest first
func (r *AchievementRepository) GetByUserID(userID int64) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := DB.Select(&achievements,
		"SELECT * FROM achievements WHERE user_id = $1 ORDER BY unlocked_at DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %v", err)
	}
	return achievements, nil
}

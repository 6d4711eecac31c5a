package models

import "time"

// Achievement marks a named condition as satisfied. At most one row exists
// per (user, achievement_type).
type Achievement struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	AchievementType  string    `json:"achievement_type" db:"achievement_type"`
	AchievementTitle string    `json:"achievement_title" db:"achievement_title"`
	UnlockedAt       time.Time `json:"unlocked_at" db:"unlocked_at"`
}

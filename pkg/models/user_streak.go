package models

// UserStreak tracks consecutive study days for a user. One row per user,
// created alongside the user. Invariant: LongestStreak >= CurrentStreak.
type UserStreak struct {
	ID               int64 `json:"id" db:"id"`
	UserID           int64 `json:"user_id" db:"user_id"`
	CurrentStreak    int   `json:"current_streak" db:"current_streak"`
	LongestStreak    int   `json:"longest_streak" db:"longest_streak"`
	LastActivityDate Date  `json:"last_activity_date" db:"last_activity_date"`
}

package models

import "time"

// User represents the local application user. The store is single-user: one
// row is seeded on first launch and never deleted.
type User struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	TotalStudyTime int       `json:"total_study_time" db:"total_study_time"` // Vestigial; the real total is derived in UserStats
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

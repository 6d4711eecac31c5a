package database

import (
	"database/sql"
	"fmt"

	"github.com/example/proglearn/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByID returns a user by ID, or nil when no such user exists
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := DB.Get(&user, "SELECT * FROM users WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %v", err)
	}
	return &user, nil
}

// First returns the earliest-created user. The application shell uses this to
// resolve the working user instead of assuming a fixed identifier.
func (r *UserRepository) First() (*models.User, error) {
	var user models.User
	err := DB.Get(&user, "SELECT * FROM users ORDER BY id ASC LIMIT 1")
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get first user: %v", err)
	}
	return &user, nil
}

// UpdateProfile modifies the user's name and email
func (r *UserRepository) UpdateProfile(userID int64, name, email string) error {
	result, err := DB.Exec("UPDATE users SET name = $1, email = $2 WHERE id = $3", name, email, userID)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %d not found", userID)
	}

	return nil
}

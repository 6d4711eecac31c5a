package database

import (
	"database/sql"
	"fmt"

	"github.com/example/proglearn/pkg/models"
)

// LessonProgressRepository handles database operations for lesson completions
type LessonProgressRepository struct{}

// NewLessonProgressRepository creates a new repository instance
func NewLessonProgressRepository() *LessonProgressRepository {
	return &LessonProgressRepository{}
}

// RecordCompletion records a finished lesson for the user. The operation is
// idempotent per (user, lesson, language): a repeat completion is a no-op and
// touches neither the activity rollup nor the streak. On first completion the
// progress row, today's activity row and the streak are updated in a single
// transaction.
func (r *LessonProgressRepository) RecordCompletion(userID, lessonID int64, language, lessonTitle string, timeSpent, score int) error {
	writeMu.Lock()
	defer writeMu.Unlock()

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	// Проверяем, не завершен ли уже этот урок
	var existingID int64
	err = tx.Get(&existingID,
		"SELECT id FROM lesson_progress WHERE user_id = $1 AND lesson_id = $2 AND language = $3",
		userID, lessonID, language)
	if err == nil {
		// Урок уже завершен
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check lesson progress: %v", err)
	}

	_, err = tx.Exec(`
		INSERT INTO lesson_progress (user_id, lesson_id, language, lesson_title, time_spent, score)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, lessonID, language, lessonTitle, timeSpent, score)
	if err != nil {
		return fmt.Errorf("failed to save lesson progress: %v", err)
	}

	today := models.Today()
	// Lesson points are credited at face value
	if err := upsertDailyActivity(tx, userID, today, 1, 0, timeSpent, score); err != nil {
		return err
	}
	if err := updateStreakTx(tx, userID, today); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lesson completion: %v", err)
	}
	return nil
}

// GetByUserID returns all lesson completions for a user, newest first
func (r *LessonProgressRepository) GetByUserID(userID int64) ([]models.LessonProgress, error) {
	var progress []models.LessonProgress
	err := DB.Select(&progress,
		"SELECT * FROM lesson_progress WHERE user_id = $1 ORDER BY completed_at DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson progress: %v", err)
	}
	return progress, nil
}

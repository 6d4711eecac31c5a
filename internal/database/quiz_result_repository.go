package database

import (
	"fmt"
	"math"

	"github.com/example/proglearn/pkg/models"
)

// QuizPointsMultiplier is the weight applied to raw quiz scores when
// crediting daily points. Quiz points are weighted 10x while lesson points
// count at face value.
const QuizPointsMultiplier = 10

// QuizResultRepository handles database operations for quiz attempts
type QuizResultRepository struct{}

// NewQuizResultRepository creates a new repository instance
func NewQuizResultRepository() *QuizResultRepository {
	return &QuizResultRepository{}
}

// RecordResult records a quiz attempt. Attempts are never deduplicated: a
// retake inserts a new row. The result row, today's activity row and the
// streak are updated in a single transaction.
func (r *QuizResultRepository) RecordResult(userID, quizID int64, quizTitle string, score, totalQuestions, timeSpent int) error {
	if totalQuestions <= 0 {
		return fmt.Errorf("total questions must be positive, got %d", totalQuestions)
	}

	percentage := int(math.Round(float64(score) / float64(totalQuestions) * 100))
	perfect := percentage == 100

	writeMu.Lock()
	defer writeMu.Unlock()

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO quiz_results (user_id, quiz_id, quiz_title, score, total_questions, percentage, time_spent, perfect_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, userID, quizID, quizTitle, score, totalQuestions, percentage, timeSpent, perfect)
	if err != nil {
		return fmt.Errorf("failed to save quiz result: %v", err)
	}

	today := models.Today()
	if err := upsertDailyActivity(tx, userID, today, 0, 1, timeSpent, score*QuizPointsMultiplier); err != nil {
		return err
	}
	if err := updateStreakTx(tx, userID, today); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quiz result: %v", err)
	}
	return nil
}

// GetByUserID returns all quiz attempts for a user, newest first
func (r *QuizResultRepository) GetByUserID(userID int64) ([]models.QuizResult, error) {
	var results []models.QuizResult
	err := DB.Select(&results,
		"SELECT * FROM quiz_results WHERE user_id = $1 ORDER BY completed_at DESC, id DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz results: %v", err)
	}
	return results, nil
}

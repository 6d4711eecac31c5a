package database

import (
	"testing"

	"github.com/example/proglearn/pkg/models"
)

func TestStreakContinuesFromYesterday(t *testing.T) {
	userID := setupTestDB(t)
	seedStreak(t, userID, 3, 5, models.Today().AddDays(-1))

	if err := NewLessonProgressRepository().RecordCompletion(userID, 1, "JavaScript", "Переменные", 600, 100); err != nil {
		t.Fatalf("record lesson: %v", err)
	}

	streak, err := NewStreakRepository().GetByUserID(userID)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if streak.CurrentStreak != 4 {
		t.Fatalf("expected current_streak=4, got %d", streak.CurrentStreak)
	}
	if streak.LongestStreak != 5 {
		t.Fatalf("expected longest_streak=5, got %d", streak.LongestStreak)
	}
	if !streak.LastActivityDate.Equal(models.Today()) {
		t.Fatalf("expected last_activity_date=today, got %s", streak.LastActivityDate)
	}
}

func TestStreakExtendsLongest(t *testing.T) {
	userID := setupTestDB(t)
	seedStreak(t, userID, 5, 5, models.Today().AddDays(-1))

	if err := NewQuizResultRepository().RecordResult(userID, 1, "Основы Python", 7, 10, 90); err != nil {
		t.Fatalf("record quiz: %v", err)
	}

	streak, err := NewStreakRepository().GetByUserID(userID)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if streak.CurrentStreak != 6 || streak.LongestStreak != 6 {
		t.Fatalf("expected 6/6, got current=%d longest=%d", streak.CurrentStreak, streak.LongestStreak)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	userID := setupTestDB(t)
	seedStreak(t, userID, 4, 6, models.Today().AddDays(-3))

	if err := NewLessonProgressRepository().RecordCompletion(userID, 1, "Go", "Основы Go", 600, 100); err != nil {
		t.Fatalf("record lesson: %v", err)
	}

	streak, err := NewStreakRepository().GetByUserID(userID)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if streak.CurrentStreak != 1 {
		t.Fatalf("expected current_streak=1 after a gap, got %d", streak.CurrentStreak)
	}
	if streak.LongestStreak != 6 {
		t.Fatalf("expected longest_streak unchanged at 6, got %d", streak.LongestStreak)
	}
}

func TestStreakSameDayDoesNotInflate(t *testing.T) {
	userID := setupTestDB(t)
	seedStreak(t, userID, 2, 4, models.Today().AddDays(-1))

	repo := NewLessonProgressRepository()
	if err := repo.RecordCompletion(userID, 1, "JavaScript", "Переменные", 600, 100); err != nil {
		t.Fatalf("record first lesson: %v", err)
	}
	if err := repo.RecordCompletion(userID, 2, "JavaScript", "Функции", 700, 100); err != nil {
		t.Fatalf("record second lesson: %v", err)
	}

	streak, err := NewStreakRepository().GetByUserID(userID)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if streak.CurrentStreak != 3 {
		t.Fatalf("expected current_streak=3 after two same-day completions, got %d", streak.CurrentStreak)
	}
	if streak.LongestStreak != 4 {
		t.Fatalf("expected longest_streak=4, got %d", streak.LongestStreak)
	}
}

func TestStreakInvariantLongestAtLeastCurrent(t *testing.T) {
	userID := setupTestDB(t)
	seedStreak(t, userID, 7, 7, models.Today().AddDays(-1))

	if err := NewQuizResultRepository().RecordResult(userID, 1, "Тест", 10, 10, 45); err != nil {
		t.Fatalf("record quiz: %v", err)
	}

	streak, err := NewStreakRepository().GetByUserID(userID)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if streak.LongestStreak < streak.CurrentStreak {
		t.Fatalf("invariant violated: longest=%d < current=%d", streak.LongestStreak, streak.CurrentStreak)
	}
}

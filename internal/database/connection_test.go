package database

import (
	"path/filepath"
	"testing"

	"github.com/example/proglearn/pkg/models"
)

// setupTestDB connects to a fresh SQLite file and returns the ID of the
// bootstrapped default user.
func setupTestDB(t *testing.T) int64 {
	t.Helper()

	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "test.db"))

	if err := Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
		DB = nil
	})

	user, err := NewUserRepository().First()
	if err != nil {
		t.Fatalf("get default user: %v", err)
	}
	if user == nil {
		t.Fatalf("expected default user after bootstrap")
	}
	return user.ID
}

// seedStreak overwrites the user's streak row for date-sensitive tests.
func seedStreak(t *testing.T, userID int64, current, longest int, last models.Date) {
	t.Helper()
	_, err := DB.Exec(
		"UPDATE user_streaks SET current_streak = $1, longest_streak = $2, last_activity_date = $3 WHERE user_id = $4",
		current, longest, last, userID)
	if err != nil {
		t.Fatalf("seed streak: %v", err)
	}
}

func TestConnectBootstrapsDefaultUser(t *testing.T) {
	userID := setupTestDB(t)

	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user after bootstrap, got %d", count)
	}

	user, err := NewUserRepository().GetByID(userID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Name != DefaultUserName || user.Email != DefaultUserEmail {
		t.Fatalf("unexpected default profile: %q %q", user.Name, user.Email)
	}

	streak, err := NewStreakRepository().GetByUserID(userID)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if streak == nil {
		t.Fatalf("expected streak row for default user")
	}
	if streak.CurrentStreak != 0 || streak.LongestStreak != 0 {
		t.Fatalf("expected zero streak after bootstrap, got current=%d longest=%d",
			streak.CurrentStreak, streak.LongestStreak)
	}
	if !streak.LastActivityDate.Equal(models.Today()) {
		t.Fatalf("expected last_activity_date=today, got %s", streak.LastActivityDate)
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	setupTestDB(t)

	// Повторное подключение к той же базе не должно создавать второго пользователя
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := Connect(); err != nil {
		t.Fatalf("reconnect: %v", err)
	}

	var users, streaks int
	if err := DB.Get(&users, "SELECT COUNT(*) FROM users"); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if err := DB.Get(&streaks, "SELECT COUNT(*) FROM user_streaks"); err != nil {
		t.Fatalf("count streaks: %v", err)
	}
	if users != 1 || streaks != 1 {
		t.Fatalf("expected exactly one user and streak row after reconnect, got %d/%d", users, streaks)
	}
}

package achievements

import (
	"path/filepath"
	"testing"

	"github.com/example/proglearn/internal/database"
	"github.com/example/proglearn/pkg/models"
)

func setupTestDB(t *testing.T) int64 {
	t.Helper()

	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "test.db"))

	if err := database.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
		database.DB = nil
	})

	user, err := database.NewUserRepository().First()
	if err != nil || user == nil {
		t.Fatalf("get default user: %v", err)
	}
	return user.ID
}

func TestCheckAndUnlockIsIdempotent(t *testing.T) {
	userID := setupTestDB(t)
	repo := database.NewAchievementRepository()

	stats := &models.UserStats{LessonsCompleted: 1}

	for i := 0; i < 2; i++ {
		unlocked, err := repo.GetUnlockedTypes(userID)
		if err != nil {
			t.Fatalf("get unlocked types: %v", err)
		}
		CheckAndUnlock(userID, stats, unlocked)
	}

	types, err := repo.GetUnlockedTypes(userID)
	if err != nil {
		t.Fatalf("get unlocked types: %v", err)
	}
	if len(types) != 1 || types[0] != string(TypeFirstLesson) {
		t.Fatalf("expected only first_lesson unlocked once, got %v", types)
	}
}

func TestCheckAndUnlockSkipsAlreadyUnlocked(t *testing.T) {
	userID := setupTestDB(t)
	repo := database.NewAchievementRepository()

	// Повторный проход с тем же списком не должен вставлять дубликаты
	stats := &models.UserStats{LessonsCompleted: 1}
	CheckAndUnlock(userID, stats, []string{string(TypeFirstLesson)})

	types, err := repo.GetUnlockedTypes(userID)
	if err != nil {
		t.Fatalf("get unlocked types: %v", err)
	}
	if len(types) != 0 {
		t.Fatalf("expected no inserts when type already in unlocked list, got %v", types)
	}
}

func TestConditionThresholds(t *testing.T) {
	cases := []struct {
		name     string
		stats    models.UserStats
		expected map[Type]bool
	}{
		{
			name:     "new user",
			stats:    models.UserStats{},
			expected: map[Type]bool{},
		},
		{
			name:     "first lesson",
			stats:    models.UserStats{LessonsCompleted: 1},
			expected: map[Type]bool{TypeFirstLesson: true},
		},
		{
			name:     "ten lessons",
			stats:    models.UserStats{LessonsCompleted: 10},
			expected: map[Type]bool{TypeFirstLesson: true, TypeJavaScriptExpert: true},
		},
		{
			name:     "quiz master",
			stats:    models.UserStats{QuizzesCompleted: 5},
			expected: map[Type]bool{TypeQuizMaster: true},
		},
		{
			name:     "week streak",
			stats:    models.UserStats{LongestStreak: 7},
			expected: map[Type]bool{TypeWeekStreak: true},
		},
		{
			name:     "marathon",
			stats:    models.UserStats{LongestStreak: 30},
			expected: map[Type]bool{TypeWeekStreak: true, TypeMarathonRunner: true},
		},
		{
			name:     "perfectionist",
			stats:    models.UserStats{PerfectScores: 3},
			expected: map[Type]bool{TypePerfectionist: true},
		},
		{
			name:     "polyglot",
			stats:    models.UserStats{LanguagesStudied: 3},
			expected: map[Type]bool{TypePolyglot: true},
		},
		{
			name:     "legend",
			stats:    models.UserStats{LanguagesStudied: 5},
			expected: map[Type]bool{TypePolyglot: true, TypeLegend: true},
		},
	}

	for _, tc := range cases {
		for _, def := range All() {
			got := def.Condition(&tc.stats)
			if got != tc.expected[def.Type] {
				t.Errorf("%s: condition %s = %v, expected %v", tc.name, def.Type, got, tc.expected[def.Type])
			}
		}
	}
}

func TestCatalogHasNoDuplicateTypes(t *testing.T) {
	seen := map[Type]bool{}
	for _, def := range All() {
		if seen[def.Type] {
			t.Fatalf("duplicate achievement type %s in catalog", def.Type)
		}
		seen[def.Type] = true
		if def.Title == "" {
			t.Fatalf("achievement %s has no title", def.Type)
		}
		if def.Condition == nil {
			t.Fatalf("achievement %s has no condition", def.Type)
		}
	}
}

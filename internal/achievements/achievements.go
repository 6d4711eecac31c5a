package achievements

import (
	"log"

	"github.com/example/proglearn/internal/database"
	"github.com/example/proglearn/pkg/models"
)

// Type identifies a single achievement. The set is closed: screens and the
// unlock pass both work from these constants, never from free-form strings.
type Type string

const (
	TypeFirstLesson      Type = "first_lesson"
	TypeJavaScriptExpert Type = "javascript_expert"
	TypeQuizMaster       Type = "quiz_master"
	TypeWeekStreak       Type = "week_streak"
	TypeMarathonRunner   Type = "marathon_runner"
	TypePerfectionist    Type = "perfectionist"
	TypePolyglot         Type = "polyglot"
	TypeLegend           Type = "legend"

	// Unlocked explicitly by the course-completion flow, not by the stats
	// pass, so they carry no condition in the catalog below.
	TypePythonEnthusiast Type = "python_enthusiast"
	TypeReactDeveloper   Type = "react_developer"
)

// Definition ties an achievement type to its display title and the condition
// over aggregate statistics that unlocks it.
type Definition struct {
	Type      Type
	Title     string
	Condition func(stats *models.UserStats) bool
}

// All returns the catalog of achievements checked against user statistics,
// in display order.
func All() []Definition {
	return []Definition{
		{
			Type:      TypeFirstLesson,
			Title:     "Первые шаги",
			Condition: func(s *models.UserStats) bool { return s.LessonsCompleted >= 1 },
		},
		{
			Type:      TypeJavaScriptExpert,
			Title:     "Знаток JavaScript",
			Condition: func(s *models.UserStats) bool { return s.LessonsCompleted >= 10 },
		},
		{
			Type:      TypeQuizMaster,
			Title:     "Мастер тестов",
			Condition: func(s *models.UserStats) bool { return s.QuizzesCompleted >= 5 },
		},
		{
			Type:      TypeWeekStreak,
			Title:     "Неделя обучения",
			Condition: func(s *models.UserStats) bool { return s.LongestStreak >= 7 },
		},
		{
			Type:      TypeMarathonRunner,
			Title:     "Марафонец",
			Condition: func(s *models.UserStats) bool { return s.LongestStreak >= 30 },
		},
		{
			Type:      TypePerfectionist,
			Title:     "Перфекционист",
			Condition: func(s *models.UserStats) bool { return s.PerfectScores >= 3 },
		},
		{
			Type:      TypePolyglot,
			Title:     "Полиглот",
			Condition: func(s *models.UserStats) bool { return s.LanguagesStudied >= 3 },
		},
		{
			Type:      TypeLegend,
			Title:     "Легенда",
			Condition: func(s *models.UserStats) bool { return s.LanguagesStudied >= 5 },
		},
	}
}

// CheckAndUnlock unlocks every cataloged achievement whose condition holds
// and whose type is not already in unlocked. The pass is best-effort: a
// failed insert is logged and does not prevent attempts at the remaining
// types. Re-running with the same stats never double-unlocks, since each
// insert is independently guarded.
func CheckAndUnlock(userID int64, stats *models.UserStats, unlocked []string) {
	repo := database.NewAchievementRepository()

	have := make(map[string]bool, len(unlocked))
	for _, t := range unlocked {
		have[t] = true
	}

	for _, def := range All() {
		if have[string(def.Type)] || !def.Condition(stats) {
			continue
		}
		if err := repo.Unlock(userID, string(def.Type), def.Title); err != nil {
			log.Printf("Error unlocking achievement %s: %v", def.Type, err)
			continue
		}
		log.Printf("Achievement unlocked: %s", def.Title)
	}
}

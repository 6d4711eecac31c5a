package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/proglearn/internal/achievements"
	"github.com/example/proglearn/internal/database"
	"github.com/example/proglearn/internal/excel"
	"github.com/example/proglearn/internal/scheduler"
	"github.com/joho/godotenv"
)

// logNotifier prints study reminders to the application log
type logNotifier struct{}

func (logNotifier) SendStudyReminder(userID int64, currentStreak int) error {
	if currentStreak > 0 {
		log.Printf("Reminder: no activity today, streak of %d days is at risk (user %d)", currentStreak, userID)
	} else {
		log.Printf("Reminder: time to study today (user %d)", userID)
	}
	return nil
}

func main() {
	exportPath := flag.String("export", "", "export a progress report to the given .xlsx or .csv file and exit")
	flag.Parse()

	// Загружаем переменные окружения из .env, если он есть
	_ = godotenv.Load()

	// Подключаемся к базе данных
	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	user, err := database.NewUserRepository().First()
	if err != nil {
		log.Fatalf("Failed to resolve user: %v", err)
	}
	if user == nil {
		log.Fatal("No user found after initialization")
	}

	if *exportPath != "" {
		result, err := excel.ExportProgressReport(user.ID, *exportPath)
		if err != nil {
			log.Fatalf("Failed to export progress report: %v", err)
		}
		log.Printf("Report written to %s (%d lessons, %d quizzes)",
			*exportPath, result.LessonRows, result.QuizRows)
		return
	}

	// Проверяем достижения при запуске
	stats, err := database.NewStatisticsRepository().GetUserStatistics(user.ID)
	if err != nil {
		log.Fatalf("Failed to load statistics: %v", err)
	}
	unlocked, err := database.NewAchievementRepository().GetUnlockedTypes(user.ID)
	if err != nil {
		log.Fatalf("Failed to load achievements: %v", err)
	}
	achievements.CheckAndUnlock(user.ID, stats, unlocked)

	// Запускаем планировщик напоминаний
	s := scheduler.New(user.ID, logNotifier{})
	s.Start()
	defer s.Stop()

	log.Printf("Store ready for %s: %d lessons, %d quizzes, streak %d. Press Ctrl+C to stop.",
		user.Name, stats.LessonsCompleted, stats.QuizzesCompleted, stats.CurrentStreak)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down", sig)
}

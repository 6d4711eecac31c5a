package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/proglearn/internal/database"
	"github.com/example/proglearn/pkg/models"
	"github.com/go-co-op/gocron"
)

// Константы для настроек напоминаний по умолчанию
const (
	DefaultReminderStartHour = 9  // Время начала напоминаний (9:00)
	DefaultReminderEndHour   = 21 // Время окончания напоминаний (21:00)
)

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	userID    int64
}

// Notifier interface for delivering study reminders
type Notifier interface {
	SendStudyReminder(userID int64, currentStreak int) error
}

// New creates a new scheduler instance for the given user
func New(userID int64, notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
		userID:    userID,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Schedule hourly check for a streak at risk
	s.scheduler.Every(1).Hour().Do(s.checkAndRemind)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndRemind sends a study reminder when the user has no recorded
// activity today. Only reads from the store; recording activity stays with
// the completion write paths.
func (s *Scheduler) checkAndRemind() {
	currentHour := time.Now().Hour()

	// Используем значения по умолчанию
	startHour := DefaultReminderStartHour
	endHour := DefaultReminderEndHour

	// Проверяем, задано ли время в переменных окружения
	if startHourStr := os.Getenv("REMINDER_START_HOUR"); startHourStr != "" {
		if h, err := strconv.Atoi(startHourStr); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}

	if endHourStr := os.Getenv("REMINDER_END_HOUR"); endHourStr != "" {
		if h, err := strconv.Atoi(endHourStr); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside reminder hours (%d-%d), skipping reminder",
			currentHour, startHour, endHour)
		return
	}

	if err := s.RunManualCheck(); err != nil {
		log.Printf("Error sending reminder to user %d: %v", s.userID, err)
	}
}

// RunManualCheck forces a reminder check now, ignoring the reminder window.
// The reminder is sent only when today has no recorded activity.
func (s *Scheduler) RunManualCheck() error {
	activityRepo := database.NewActivityRepository()

	activity, err := activityRepo.GetByUserAndDate(s.userID, models.Today())
	if err != nil {
		return err
	}
	if activity != nil {
		// Сегодня уже была активность — напоминание не нужно
		return nil
	}

	streakRepo := database.NewStreakRepository()
	streak, err := streakRepo.GetByUserID(s.userID)
	if err != nil {
		return err
	}

	currentStreak := 0
	if streak != nil {
		currentStreak = streak.CurrentStreak
	}

	return s.notifier.SendStudyReminder(s.userID, currentStreak)
}

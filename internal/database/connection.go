package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/proglearn/pkg/models"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// writeMu serializes the multi-step write paths (lesson completion, quiz
// result). The dedup and upsert checks are read-then-write, so concurrent
// callers must not interleave between the check and the insert.
var writeMu sync.Mutex

// Default profile values for the seed user
const (
	DefaultUserName  = "Студент"
	DefaultUserEmail = "student@programming.app"
)

// Connect establishes a connection to the database, creates the schema and
// seeds the default user. Safe to call on every application start.
func Connect() error {
	// Определяем тип базы данных
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	if dbType == "postgres" {
		db, err = sqlx.Connect("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
	} else {
		dbPath := os.Getenv("DATABASE_PATH")
		if dbPath == "" {
			// Create data directory if it doesn't exist
			dataDir := "data"
			if err := os.MkdirAll(dataDir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %v", err)
			}
			dbPath = filepath.Join(dataDir, "proglearn.db")
		}

		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		// Enable foreign keys
		_, err = db.Exec("PRAGMA foreign_keys = ON")
		if err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// Set connection pool settings
		db.SetMaxOpenConns(1) // SQLite doesn't support multiple writers
		db.SetMaxIdleConns(1)
	}

	DB = db

	// Initialize schema
	if err := initializeSchema(); err != nil {
		return err
	}

	// Ensure the default user exists
	return ensureDefaultUser()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	// Create users table
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT DEFAULT 'Студент',
			email TEXT DEFAULT 'student@programming.app',
			total_study_time INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %v", err)
	}

	// Create lesson_progress table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS lesson_progress (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			lesson_id INTEGER,
			language TEXT,
			lesson_title TEXT,
			time_spent INTEGER DEFAULT 0,
			completion_percentage INTEGER DEFAULT 100,
			score INTEGER DEFAULT 0,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create lesson_progress table: %v", err)
	}

	// Create quiz_results table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS quiz_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			quiz_id INTEGER,
			quiz_title TEXT,
			score INTEGER,
			total_questions INTEGER,
			percentage REAL,
			time_spent INTEGER DEFAULT 0,
			perfect_score BOOLEAN DEFAULT 0,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create quiz_results table: %v", err)
	}

	// Create achievements table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS achievements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			achievement_type TEXT,
			achievement_title TEXT,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create achievements table: %v", err)
	}

	// Create user_activity table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS user_activity (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			activity_date DATE,
			lessons_completed INTEGER DEFAULT 0,
			quizzes_completed INTEGER DEFAULT 0,
			total_study_time INTEGER DEFAULT 0,
			points_earned INTEGER DEFAULT 0,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_activity table: %v", err)
	}

	// Create user_streaks table
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS user_streaks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			current_streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			last_activity_date DATE,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_streaks table: %v", err)
	}

	return nil
}

// ensureDefaultUser inserts the seed user and its streak row when the users
// table is empty. Runs at most once per install lifetime.
func ensureDefaultUser() error {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return fmt.Errorf("failed to count users: %v", err)
	}
	if count > 0 {
		return nil
	}

	var userID int64
	if DB.DriverName() == "postgres" {
		err := DB.QueryRow(
			"INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id",
			DefaultUserName, DefaultUserEmail,
		).Scan(&userID)
		if err != nil {
			return fmt.Errorf("failed to create default user: %v", err)
		}
	} else {
		// SQLite: получаем id через LastInsertId
		result, err := DB.Exec(
			"INSERT INTO users (name, email) VALUES ($1, $2)",
			DefaultUserName, DefaultUserEmail,
		)
		if err != nil {
			return fmt.Errorf("failed to create default user: %v", err)
		}
		userID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
	}

	_, err := DB.Exec(
		"INSERT INTO user_streaks (user_id, current_streak, longest_streak, last_activity_date) VALUES ($1, 0, 0, $2)",
		userID, models.Today(),
	)
	if err != nil {
		return fmt.Errorf("failed to create streak row for default user: %v", err)
	}

	return nil
}

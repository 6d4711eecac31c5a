package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/proglearn/internal/database"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in the exported workbook
const (
	StatisticsSheet = "Statistics"
	LessonsSheet    = "Lessons"
	QuizzesSheet    = "Quizzes"
)

// ExportResult holds the result of an export operation
type ExportResult struct {
	LessonRows int
	QuizRows   int
}

// ExportProgressReport writes the user's statistics summary, lesson
// completions and quiz attempts to a report file. The format follows the
// file extension: .csv produces the statistics summary as CSV, anything else
// produces an Excel workbook with three sheets.
func ExportProgressReport(userID int64, filePath string) (*ExportResult, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	if ext == ".csv" {
		return exportToCSV(userID, filePath)
	}

	return exportToExcel(userID, filePath)
}

// statisticsRows builds the metric/value pairs of the summary sheet
func statisticsRows(userID int64) ([][2]string, error) {
	stats, err := database.NewStatisticsRepository().GetUserStatistics(userID)
	if err != nil {
		return nil, err
	}

	rows := [][2]string{
		{"Lessons completed", strconv.Itoa(stats.LessonsCompleted)},
		{"Quizzes completed", strconv.Itoa(stats.QuizzesCompleted)},
		{"Languages studied", strconv.Itoa(stats.LanguagesStudied)},
		{"Best quiz score", strconv.Itoa(stats.BestQuizScore)},
		{"Total points", strconv.Itoa(stats.TotalPoints)},
		{"Average quiz time (s)", strconv.Itoa(stats.AvgQuizTime)},
		{"Total lesson time (s)", strconv.Itoa(stats.TotalLessonTime)},
		{"Total quiz time (s)", strconv.Itoa(stats.TotalQuizTime)},
		{"Total study time (s)", strconv.Itoa(stats.TotalStudyTime)},
		{"Perfect scores", strconv.Itoa(stats.PerfectScores)},
		{"Current streak", strconv.Itoa(stats.CurrentStreak)},
		{"Longest streak", strconv.Itoa(stats.LongestStreak)},
		{"Days active (30d)", strconv.Itoa(stats.DaysActive)},
	}
	return rows, nil
}

// exportToExcel writes the three-sheet workbook
func exportToExcel(userID int64, filePath string) (*ExportResult, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Statistics sheet
	f.SetSheetName("Sheet1", StatisticsSheet)
	stats, err := statisticsRows(userID)
	if err != nil {
		return nil, err
	}
	f.SetCellValue(StatisticsSheet, "A1", "Metric")
	f.SetCellValue(StatisticsSheet, "B1", "Value")
	for i, row := range stats {
		f.SetCellValue(StatisticsSheet, fmt.Sprintf("A%d", i+2), row[0])
		f.SetCellValue(StatisticsSheet, fmt.Sprintf("B%d", i+2), row[1])
	}

	result := &ExportResult{}

	// Lessons sheet
	if _, err := f.NewSheet(LessonsSheet); err != nil {
		return nil, fmt.Errorf("failed to create lessons sheet: %v", err)
	}
	lessons, err := database.NewLessonProgressRepository().GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	lessonHeaders := []string{"Lesson ID", "Language", "Title", "Time spent (s)", "Score", "Completed at"}
	for i, h := range lessonHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(LessonsSheet, cell, h)
	}
	for i, lesson := range lessons {
		row := i + 2
		f.SetCellValue(LessonsSheet, fmt.Sprintf("A%d", row), lesson.LessonID)
		f.SetCellValue(LessonsSheet, fmt.Sprintf("B%d", row), lesson.Language)
		f.SetCellValue(LessonsSheet, fmt.Sprintf("C%d", row), lesson.LessonTitle)
		f.SetCellValue(LessonsSheet, fmt.Sprintf("D%d", row), lesson.TimeSpent)
		f.SetCellValue(LessonsSheet, fmt.Sprintf("E%d", row), lesson.Score)
		f.SetCellValue(LessonsSheet, fmt.Sprintf("F%d", row), lesson.CompletedAt.Format("2006-01-02 15:04:05"))
		result.LessonRows++
	}

	// Quizzes sheet
	if _, err := f.NewSheet(QuizzesSheet); err != nil {
		return nil, fmt.Errorf("failed to create quizzes sheet: %v", err)
	}
	quizzes, err := database.NewQuizResultRepository().GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	quizHeaders := []string{"Quiz ID", "Title", "Score", "Total questions", "Percentage", "Time spent (s)", "Perfect", "Completed at"}
	for i, h := range quizHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(QuizzesSheet, cell, h)
	}
	for i, quiz := range quizzes {
		row := i + 2
		f.SetCellValue(QuizzesSheet, fmt.Sprintf("A%d", row), quiz.QuizID)
		f.SetCellValue(QuizzesSheet, fmt.Sprintf("B%d", row), quiz.QuizTitle)
		f.SetCellValue(QuizzesSheet, fmt.Sprintf("C%d", row), quiz.Score)
		f.SetCellValue(QuizzesSheet, fmt.Sprintf("D%d", row), quiz.TotalQuestions)
		f.SetCellValue(QuizzesSheet, fmt.Sprintf("E%d", row), quiz.Percentage)
		f.SetCellValue(QuizzesSheet, fmt.Sprintf("F%d", row), quiz.TimeSpent)
		f.SetCellValue(QuizzesSheet, fmt.Sprintf("G%d", row), quiz.PerfectScore)
		f.SetCellValue(QuizzesSheet, fmt.Sprintf("H%d", row), quiz.CompletedAt.Format("2006-01-02 15:04:05"))
		result.QuizRows++
	}

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save report: %v", err)
	}
	return result, nil
}

// exportToCSV writes the statistics summary as a two-column CSV file
func exportToCSV(userID int64, filePath string) (*ExportResult, error) {
	stats, err := statisticsRows(userID)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Metric", "Value"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %v", err)
	}
	for _, row := range stats {
		if err := writer.Write([]string{row[0], row[1]}); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %v", err)
		}
	}

	return &ExportResult{}, nil
}

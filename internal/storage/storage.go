// Package storage defines the persistence contract for the exam-prep backend
// and provides two implementations: an in-memory store for development and
// tests, and a GORM-backed store for durable deployments.
package storage

import (
	"github.com/architect/bacprep-backend/internal/models"
)

// Store is the persistence boundary. Read operations return (nil, nil) when
// the entity does not exist; only UpdateStudyPlanTaskCompletion reports a
// missing row as an error.
type Store interface {
	// User operations
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(input models.CreateUserInput) (*models.User, error)
	// AuthenticateUser returns (nil, nil) on unknown username or wrong password.
	AuthenticateUser(username, password string) (*models.User, error)

	// Subject operations
	GetAllSubjects() ([]models.Subject, error)
	GetSubject(id uint) (*models.Subject, error)

	// Topic operations; topics come back ordered by their position within
	// the subject.
	GetTopicsBySubject(subjectID uint) ([]models.Topic, error)

	// User progress operations. UpdateUserProgress upserts on the
	// (user, subject) pair and always refreshes LastStudied.
	GetUserProgress(userID uint) ([]models.UserProgress, error)
	UpdateUserProgress(input models.UpsertProgressInput) (*models.UserProgress, error)

	// Test operations
	GetAllTests() ([]models.Test, error)
	GetTestsBySubject(subjectID uint) ([]models.Test, error)

	// Test result operations. Results come back newest first, enriched with
	// test and subject names.
	GetUserTestResults(userID uint) ([]models.TestResultWithNames, error)
	SaveUserTestResult(input models.SaveTestResultInput) (*models.UserTestResult, error)

	// Badge operations
	GetUserBadges(userID uint) ([]models.UserBadgeWithBadge, error)

	// Study streak operations; streaks come back newest first.
	GetUserStudyStreaks(userID uint) ([]models.StudyStreak, error)
	AddStudyStreak(input models.AddStreakInput) (*models.StudyStreak, error)

	// Study plan operations. The plan is sorted priority tasks first, then
	// recommended ones. Completion updates are scoped to the owning user and
	// fail with a not-found error otherwise.
	GetUserStudyPlan(userID uint) ([]models.StudyPlanTask, error)
	AddStudyPlanTask(input models.AddStudyPlanTaskInput) (*models.StudyPlanTask, error)
	UpdateStudyPlanTaskCompletion(userID, taskID uint, completed bool) (*models.StudyPlanTask, error)

	// AI chat history operations. Saving replaces the transcript wholesale.
	GetAiChatHistory(userID uint) (*models.AiChatHistory, error)
	SaveAiChatHistory(userID uint, messages []models.ChatMessage) (*models.AiChatHistory, error)

	// InitializeDemoData loads the demo fixtures. It is not idempotent;
	// calling it twice duplicates the seeded rows.
	InitializeDemoData() error
}

package storage

import (
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/common/validation"
	"github.com/architect/bacprep-backend/internal/models"
)

// GormStore implements Store on top of a relational database. SQLite and
// PostgreSQL are supported through their GORM drivers.
type GormStore struct {
	db *gorm.DB
}

// Open connects to the database selected by backend ("sqlite" or "postgres")
// using the given DSN.
func Open(backend, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch backend {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", backend, err)
	}
	return db, nil
}

// NewGormStore migrates the schema and returns a store bound to db.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Topic{},
		&models.UserProgress{},
		&models.Test{},
		&models.UserTestResult{},
		&models.Badge{},
		&models.UserBadge{},
		&models.StudyStreak{},
		&models.StudyPlanTask{},
		&models.AiChatHistory{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &GormStore{db: db}, nil
}

var _ Store = (*GormStore)(nil)

// firstOrNil translates gorm's not-found error into the (nil, nil) contract.
func firstOrNil[T any](tx *gorm.DB, out *T) (*T, error) {
	if err := tx.First(out).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	return firstOrNil(s.db.Where("id = ?", id), &user)
}

func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	return firstOrNil(s.db.Where("username = ?", username), &user)
}

func (s *GormStore) CreateUser(input models.CreateUserInput) (*models.User, error) {
	if errs := validation.Validate(input); errs != nil {
		return nil, errors.Validation("Invalid user data", validation.Describe(errs))
	}

	existing, err := s.GetUserByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Validation("Username already exists", "")
	}

	var byEmail models.User
	match, err := firstOrNil(s.db.Where("email = ?", input.Email), &byEmail)
	if err != nil {
		return nil, err
	}
	if match != nil {
		return nil, errors.Validation("Email already exists", "")
	}

	user := models.User{
		Username:    input.Username,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Email:       input.Email,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) AuthenticateUser(username, password string) (*models.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user != nil && user.Password == password {
		return user, nil
	}
	return nil, nil
}

func (s *GormStore) GetAllSubjects() ([]models.Subject, error) {
	subjects := make([]models.Subject, 0)
	err := s.db.Order("id ASC").Find(&subjects).Error
	return subjects, err
}

func (s *GormStore) GetSubject(id uint) (*models.Subject, error) {
	var subject models.Subject
	return firstOrNil(s.db.Where("id = ?", id), &subject)
}

func (s *GormStore) GetTopicsBySubject(subjectID uint) ([]models.Topic, error) {
	topics := make([]models.Topic, 0)
	err := s.db.Where("subject_id = ?", subjectID).Order("sort_order ASC").Find(&topics).Error
	return topics, err
}

func (s *GormStore) GetUserProgress(userID uint) ([]models.UserProgress, error) {
	records := make([]models.UserProgress, 0)
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&records).Error
	return records, err
}

func (s *GormStore) UpdateUserProgress(input models.UpsertProgressInput) (*models.UserProgress, error) {
	lastStudied := time.Now()
	if input.LastStudied != nil {
		lastStudied = *input.LastStudied
	}

	var existing models.UserProgress
	record, err := firstOrNil(
		s.db.Where("user_id = ? AND subject_id = ?", input.UserID, input.SubjectID),
		&existing,
	)
	if err != nil {
		return nil, err
	}

	if record == nil {
		record = &models.UserProgress{
			UserID:      input.UserID,
			SubjectID:   input.SubjectID,
			LastStudied: lastStudied,
		}
	}
	if input.TopicsCompleted != nil {
		record.TopicsCompleted = *input.TopicsCompleted
	}
	if input.PercentComplete != nil {
		record.PercentComplete = *input.PercentComplete
	}
	record.LastStudied = lastStudied

	if err := s.db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *GormStore) GetAllTests() ([]models.Test, error) {
	tests := make([]models.Test, 0)
	err := s.db.Order("id ASC").Find(&tests).Error
	return tests, err
}

func (s *GormStore) GetTestsBySubject(subjectID uint) ([]models.Test, error) {
	tests := make([]models.Test, 0)
	err := s.db.Where("subject_id = ?", subjectID).Order("id ASC").Find(&tests).Error
	return tests, err
}

func (s *GormStore) GetUserTestResults(userID uint) ([]models.TestResultWithNames, error) {
	results := make([]models.UserTestResult, 0)
	err := s.db.Where("user_id = ?", userID).Order("completed_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}

	enriched := make([]models.TestResultWithNames, 0, len(results))
	for _, r := range results {
		testName := "Unknown Test"
		subjectName := "Unknown Subject"

		test, err := firstOrNil(s.db.Where("id = ?", r.TestID), &models.Test{})
		if err != nil {
			return nil, err
		}
		if test != nil {
			testName = test.Name
			subject, err := s.GetSubject(test.SubjectID)
			if err != nil {
				return nil, err
			}
			if subject != nil {
				subjectName = subject.Name
			}
		}

		enriched = append(enriched, models.TestResultWithNames{
			UserTestResult: r,
			TestName:       testName,
			SubjectName:    subjectName,
		})
	}
	return enriched, nil
}

func (s *GormStore) SaveUserTestResult(input models.SaveTestResultInput) (*models.UserTestResult, error) {
	result := models.UserTestResult{
		UserID:         input.UserID,
		TestID:         input.TestID,
		Score:          input.Score,
		PercentCorrect: input.PercentCorrect,
		CompletedAt:    time.Now(),
		Answers:        input.Answers,
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *GormStore) GetUserBadges(userID uint) ([]models.UserBadgeWithBadge, error) {
	earned := make([]models.UserBadge, 0)
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&earned).Error
	if err != nil {
		return nil, err
	}

	withBadges := make([]models.UserBadgeWithBadge, 0, len(earned))
	for _, ub := range earned {
		var badge models.Badge
		if err := s.db.Where("id = ?", ub.BadgeID).First(&badge).Error; err != nil {
			if !stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		withBadges = append(withBadges, models.UserBadgeWithBadge{UserBadge: ub, Badge: badge})
	}
	return withBadges, nil
}

func (s *GormStore) GetUserStudyStreaks(userID uint) ([]models.StudyStreak, error) {
	streaks := make([]models.StudyStreak, 0)
	err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&streaks).Error
	return streaks, err
}

func (s *GormStore) AddStudyStreak(input models.AddStreakInput) (*models.StudyStreak, error) {
	streak := models.StudyStreak{
		UserID:         input.UserID,
		Date:           time.Now(),
		MinutesStudied: input.MinutesStudied,
	}
	if err := s.db.Create(&streak).Error; err != nil {
		return nil, err
	}
	return &streak, nil
}

func (s *GormStore) GetUserStudyPlan(userID uint) ([]models.StudyPlanTask, error) {
	tasks := make([]models.StudyPlanTask, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("priority DESC").
		Order("recommended DESC").
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

func (s *GormStore) AddStudyPlanTask(input models.AddStudyPlanTaskInput) (*models.StudyPlanTask, error) {
	dueDate := time.Now()
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	task := models.StudyPlanTask{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Priority:    input.Priority,
		Recommended: input.Recommended,
		Completed:   false,
		DueDate:     dueDate,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *GormStore) UpdateStudyPlanTaskCompletion(userID, taskID uint, completed bool) (*models.StudyPlanTask, error) {
	var task models.StudyPlanTask
	found, err := firstOrNil(s.db.Where("id = ? AND user_id = ?", taskID, userID), &task)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NotFound("Task")
	}

	if err := s.db.Model(found).Update("completed", completed).Error; err != nil {
		return nil, err
	}
	found.Completed = completed
	return found, nil
}

func (s *GormStore) GetAiChatHistory(userID uint) (*models.AiChatHistory, error) {
	var history models.AiChatHistory
	return firstOrNil(s.db.Where("user_id = ?", userID), &history)
}

func (s *GormStore) SaveAiChatHistory(userID uint, messages []models.ChatMessage) (*models.AiChatHistory, error) {
	existing, err := s.GetAiChatHistory(userID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Messages = messages
		if err := s.db.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	history := models.AiChatHistory{
		UserID:   userID,
		Messages: messages,
	}
	if err := s.db.Create(&history).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

// InitializeDemoData seeds the demo fixtures. Like the in-memory variant it is
// not idempotent; rerunning it against a seeded database duplicates rows until
// a uniqueness constraint rejects the insert.
func (s *GormStore) InitializeDemoData() error {
	return seedDemoData(&gormSeeder{db: s.db})
}

type gormSeeder struct {
	db *gorm.DB
}

func insertRow[T any](db *gorm.DB, row T) (T, error) {
	err := db.Create(&row).Error
	return row, err
}

func (s *gormSeeder) insertUser(u models.User) (models.User, error) {
	return insertRow(s.db, u)
}

func (s *gormSeeder) insertSubject(subject models.Subject) (models.Subject, error) {
	return insertRow(s.db, subject)
}

func (s *gormSeeder) insertTopic(t models.Topic) (models.Topic, error) {
	return insertRow(s.db, t)
}

func (s *gormSeeder) insertProgress(p models.UserProgress) (models.UserProgress, error) {
	return insertRow(s.db, p)
}

func (s *gormSeeder) insertTest(t models.Test) (models.Test, error) {
	return insertRow(s.db, t)
}

func (s *gormSeeder) insertTestResult(r models.UserTestResult) (models.UserTestResult, error) {
	return insertRow(s.db, r)
}

func (s *gormSeeder) insertBadge(b models.Badge) (models.Badge, error) {
	return insertRow(s.db, b)
}

func (s *gormSeeder) insertUserBadge(ub models.UserBadge) (models.UserBadge, error) {
	return insertRow(s.db, ub)
}

func (s *gormSeeder) insertStreak(streak models.StudyStreak) (models.StudyStreak, error) {
	return insertRow(s.db, streak)
}

func (s *gormSeeder) insertPlanTask(t models.StudyPlanTask) (models.StudyPlanTask, error) {
	return insertRow(s.db, t)
}

func (s *gormSeeder) insertChatHistory(h models.AiChatHistory) (models.AiChatHistory, error) {
	return insertRow(s.db, h)
}

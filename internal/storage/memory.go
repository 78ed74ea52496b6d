package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/common/validation"
	"github.com/architect/bacprep-backend/internal/models"
)

// MemoryStore keeps everything in maps guarded by a single RWMutex. IDs are
// handed out by per-entity counters and never reused within a process.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[uint]models.User
	subjects      map[uint]models.Subject
	topics        map[uint]models.Topic
	progress      map[uint]models.UserProgress
	tests         map[uint]models.Test
	testResults   map[uint]models.UserTestResult
	badges        map[uint]models.Badge
	userBadges    map[uint]models.UserBadge
	streaks       map[uint]models.StudyStreak
	planTasks     map[uint]models.StudyPlanTask
	chatHistories map[uint]models.AiChatHistory

	nextUserID        uint
	nextSubjectID     uint
	nextTopicID       uint
	nextProgressID    uint
	nextTestID        uint
	nextResultID      uint
	nextBadgeID       uint
	nextUserBadgeID   uint
	nextStreakID      uint
	nextTaskID        uint
	nextChatHistoryID uint
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[uint]models.User),
		subjects:      make(map[uint]models.Subject),
		topics:        make(map[uint]models.Topic),
		progress:      make(map[uint]models.UserProgress),
		tests:         make(map[uint]models.Test),
		testResults:   make(map[uint]models.UserTestResult),
		badges:        make(map[uint]models.Badge),
		userBadges:    make(map[uint]models.UserBadge),
		streaks:       make(map[uint]models.StudyStreak),
		planTasks:     make(map[uint]models.StudyPlanTask),
		chatHistories: make(map[uint]models.AiChatHistory),

		nextUserID:        1,
		nextSubjectID:     1,
		nextTopicID:       1,
		nextProgressID:    1,
		nextTestID:        1,
		nextResultID:      1,
		nextBadgeID:       1,
		nextUserBadgeID:   1,
		nextStreakID:      1,
		nextTaskID:        1,
		nextChatHistoryID: 1,
	}
}

var _ Store = (*MemoryStore)(nil)

// GetUser returns the user with the given id, or (nil, nil) if absent.
func (s *MemoryStore) GetUser(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

// GetUserByUsername returns the user with the given username, or (nil, nil).
func (s *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findUserByUsername(username), nil
}

// findUserByUsername must be called with the lock held.
func (s *MemoryStore) findUserByUsername(username string) *models.User {
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u
		}
	}
	return nil
}

// CreateUser registers a new user. Username and email must be unique.
func (s *MemoryStore) CreateUser(input models.CreateUserInput) (*models.User, error) {
	if errs := validation.Validate(input); errs != nil {
		return nil, errors.Validation("Invalid user data", validation.Describe(errs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserByUsername(input.Username) != nil {
		return nil, errors.Validation("Username already exists", "")
	}
	for _, user := range s.users {
		if user.Email == input.Email {
			return nil, errors.Validation("Email already exists", "")
		}
	}

	user := models.User{
		ID:          s.nextUserID,
		Username:    input.Username,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Email:       input.Email,
		CreatedAt:   time.Now(),
	}
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

// AuthenticateUser compares the stored password directly and returns
// (nil, nil) when the credentials do not match.
func (s *MemoryStore) AuthenticateUser(username, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := s.findUserByUsername(username)
	if user != nil && user.Password == password {
		return user, nil
	}
	return nil, nil
}

// GetAllSubjects returns every subject.
func (s *MemoryStore) GetAllSubjects() ([]models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subjects := make([]models.Subject, 0, len(s.subjects))
	for _, subject := range s.subjects {
		subjects = append(subjects, subject)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects, nil
}

// GetSubject returns the subject with the given id, or (nil, nil).
func (s *MemoryStore) GetSubject(id uint) (*models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if subject, ok := s.subjects[id]; ok {
		return &subject, nil
	}
	return nil, nil
}

// GetTopicsBySubject returns the subject's topics ordered by position.
func (s *MemoryStore) GetTopicsBySubject(subjectID uint) ([]models.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topics := make([]models.Topic, 0)
	for _, topic := range s.topics {
		if topic.SubjectID == subjectID {
			topics = append(topics, topic)
		}
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].SortOrder < topics[j].SortOrder })
	return topics, nil
}

// GetUserProgress returns all progress records for the user.
func (s *MemoryStore) GetUserProgress(userID uint) ([]models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.UserProgress, 0)
	for _, p := range s.progress {
		if p.UserID == userID {
			records = append(records, p)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// UpdateUserProgress upserts the progress row for (user, subject). Absent
// fields keep the existing values on update and default to zero on insert;
// LastStudied is stamped with the current time unless supplied.
func (s *MemoryStore) UpdateUserProgress(input models.UpsertProgressInput) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastStudied := time.Now()
	if input.LastStudied != nil {
		lastStudied = *input.LastStudied
	}

	for id, existing := range s.progress {
		if existing.UserID == input.UserID && existing.SubjectID == input.SubjectID {
			updated := existing
			if input.TopicsCompleted != nil {
				updated.TopicsCompleted = *input.TopicsCompleted
			}
			if input.PercentComplete != nil {
				updated.PercentComplete = *input.PercentComplete
			}
			updated.LastStudied = lastStudied
			s.progress[id] = updated
			return &updated, nil
		}
	}

	record := models.UserProgress{
		ID:          s.nextProgressID,
		UserID:      input.UserID,
		SubjectID:   input.SubjectID,
		LastStudied: lastStudied,
	}
	if input.TopicsCompleted != nil {
		record.TopicsCompleted = *input.TopicsCompleted
	}
	if input.PercentComplete != nil {
		record.PercentComplete = *input.PercentComplete
	}
	s.nextProgressID++
	s.progress[record.ID] = record
	return &record, nil
}

// GetAllTests returns every test.
func (s *MemoryStore) GetAllTests() ([]models.Test, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tests := make([]models.Test, 0, len(s.tests))
	for _, test := range s.tests {
		tests = append(tests, test)
	}
	sort.Slice(tests, func(i, j int) bool { return tests[i].ID < tests[j].ID })
	return tests, nil
}

// GetTestsBySubject returns the tests belonging to a subject.
func (s *MemoryStore) GetTestsBySubject(subjectID uint) ([]models.Test, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tests := make([]models.Test, 0)
	for _, test := range s.tests {
		if test.SubjectID == subjectID {
			tests = append(tests, test)
		}
	}
	sort.Slice(tests, func(i, j int) bool { return tests[i].ID < tests[j].ID })
	return tests, nil
}

// GetUserTestResults returns the user's results newest first, each enriched
// with the test and subject names. Results whose test or subject has gone
// missing fall back to placeholder names rather than being dropped.
func (s *MemoryStore) GetUserTestResults(userID uint) ([]models.TestResultWithNames, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.UserTestResult, 0)
	for _, r := range s.testResults {
		if r.UserID == userID {
			results = append(results, r)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CompletedAt.After(results[j].CompletedAt)
	})

	enriched := make([]models.TestResultWithNames, 0, len(results))
	for _, r := range results {
		testName := "Unknown Test"
		subjectName := "Unknown Subject"
		if test, ok := s.tests[r.TestID]; ok {
			testName = test.Name
			if subject, ok := s.subjects[test.SubjectID]; ok {
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

// SaveUserTestResult records a completed test attempt stamped with the
// current time.
func (s *MemoryStore) SaveUserTestResult(input models.SaveTestResultInput) (*models.UserTestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := models.UserTestResult{
		ID:             s.nextResultID,
		UserID:         input.UserID,
		TestID:         input.TestID,
		Score:          input.Score,
		PercentCorrect: input.PercentCorrect,
		CompletedAt:    time.Now(),
		Answers:        input.Answers,
	}
	s.nextResultID++
	s.testResults[result.ID] = result
	return &result, nil
}

// GetUserBadges returns the user's earned badges with their definitions.
func (s *MemoryStore) GetUserBadges(userID uint) ([]models.UserBadgeWithBadge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	earned := make([]models.UserBadge, 0)
	for _, ub := range s.userBadges {
		if ub.UserID == userID {
			earned = append(earned, ub)
		}
	}
	sort.Slice(earned, func(i, j int) bool { return earned[i].ID < earned[j].ID })

	withBadges := make([]models.UserBadgeWithBadge, 0, len(earned))
	for _, ub := range earned {
		withBadges = append(withBadges, models.UserBadgeWithBadge{
			UserBadge: ub,
			Badge:     s.badges[ub.BadgeID],
		})
	}
	return withBadges, nil
}

// GetUserStudyStreaks returns the user's study sessions newest first.
func (s *MemoryStore) GetUserStudyStreaks(userID uint) ([]models.StudyStreak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	streaks := make([]models.StudyStreak, 0)
	for _, streak := range s.streaks {
		if streak.UserID == userID {
			streaks = append(streaks, streak)
		}
	}
	sort.Slice(streaks, func(i, j int) bool {
		return streaks[i].Date.After(streaks[j].Date)
	})
	return streaks, nil
}

// AddStudyStreak records a study session dated now. Any client-supplied date
// is ignored.
func (s *MemoryStore) AddStudyStreak(input models.AddStreakInput) (*models.StudyStreak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	streak := models.StudyStreak{
		ID:             s.nextStreakID,
		UserID:         input.UserID,
		Date:           time.Now(),
		MinutesStudied: input.MinutesStudied,
	}
	s.nextStreakID++
	s.streaks[streak.ID] = streak
	return &streak, nil
}

// GetUserStudyPlan returns the user's tasks, priority ones first, then
// recommended ones.
func (s *MemoryStore) GetUserStudyPlan(userID uint) ([]models.StudyPlanTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]models.StudyPlanTask, 0)
	for _, task := range s.planTasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority
		}
		if tasks[i].Recommended != tasks[j].Recommended {
			return tasks[i].Recommended
		}
		return false
	})
	return tasks, nil
}

// AddStudyPlanTask appends a task to the user's plan. New tasks always start
// incomplete; a missing due date defaults to now.
func (s *MemoryStore) AddStudyPlanTask(input models.AddStudyPlanTaskInput) (*models.StudyPlanTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dueDate := time.Now()
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	task := models.StudyPlanTask{
		ID:          s.nextTaskID,
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Priority:    input.Priority,
		Recommended: input.Recommended,
		Completed:   false,
		DueDate:     dueDate,
	}
	s.nextTaskID++
	s.planTasks[task.ID] = task
	return &task, nil
}

// UpdateStudyPlanTaskCompletion flips a task's completed flag. A task that
// does not exist or belongs to another user yields a not-found error.
func (s *MemoryStore) UpdateStudyPlanTaskCompletion(userID, taskID uint, completed bool) (*models.StudyPlanTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.planTasks[taskID]
	if !ok || task.UserID != userID {
		return nil, errors.NotFound("Task")
	}

	task.Completed = completed
	s.planTasks[taskID] = task
	return &task, nil
}

// GetAiChatHistory returns the user's chat transcript, or (nil, nil).
func (s *MemoryStore) GetAiChatHistory(userID uint) (*models.AiChatHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, history := range s.chatHistories {
		if history.UserID == userID {
			h := history
			return &h, nil
		}
	}
	return nil, nil
}

// SaveAiChatHistory replaces the user's transcript with the given messages,
// creating the history row on first save.
func (s *MemoryStore) SaveAiChatHistory(userID uint, messages []models.ChatMessage) (*models.AiChatHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.chatHistories {
		if existing.UserID == userID {
			existing.Messages = messages
			existing.UpdatedAt = time.Now()
			s.chatHistories[id] = existing
			return &existing, nil
		}
	}

	now := time.Now()
	history := models.AiChatHistory{
		ID:        s.nextChatHistoryID,
		UserID:    userID,
		Messages:  messages,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextChatHistoryID++
	s.chatHistories[history.ID] = history
	return &history, nil
}

// InitializeDemoData seeds the demo fixtures. Calling it twice duplicates
// every seeded row except the demo user, whose second insert fails the
// uniqueness check.
func (s *MemoryStore) InitializeDemoData() error {
	return seedDemoData((*memorySeeder)(s))
}

// memorySeeder exposes raw inserts over the memory store for fixture loading.
type memorySeeder MemoryStore

func (s *memorySeeder) insertUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

func (s *memorySeeder) insertSubject(subject models.Subject) (models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subject.ID = s.nextSubjectID
	s.nextSubjectID++
	s.subjects[subject.ID] = subject
	return subject, nil
}

func (s *memorySeeder) insertTopic(t models.Topic) (models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextTopicID
	s.nextTopicID++
	s.topics[t.ID] = t
	return t, nil
}

func (s *memorySeeder) insertProgress(p models.UserProgress) (models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProgressID
	s.nextProgressID++
	s.progress[p.ID] = p
	return p, nil
}

func (s *memorySeeder) insertTest(t models.Test) (models.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextTestID
	s.nextTestID++
	s.tests[t.ID] = t
	return t, nil
}

func (s *memorySeeder) insertTestResult(r models.UserTestResult) (models.UserTestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextResultID
	s.nextResultID++
	s.testResults[r.ID] = r
	return r, nil
}

func (s *memorySeeder) insertBadge(b models.Badge) (models.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextBadgeID
	s.nextBadgeID++
	s.badges[b.ID] = b
	return b, nil
}

func (s *memorySeeder) insertUserBadge(ub models.UserBadge) (models.UserBadge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ub.ID = s.nextUserBadgeID
	s.nextUserBadgeID++
	s.userBadges[ub.ID] = ub
	return ub, nil
}

func (s *memorySeeder) insertStreak(streak models.StudyStreak) (models.StudyStreak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	streak.ID = s.nextStreakID
	s.nextStreakID++
	s.streaks[streak.ID] = streak
	return streak, nil
}

func (s *memorySeeder) insertPlanTask(t models.StudyPlanTask) (models.StudyPlanTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextTaskID
	s.nextTaskID++
	s.planTasks[t.ID] = t
	return t, nil
}

func (s *memorySeeder) insertChatHistory(h models.AiChatHistory) (models.AiChatHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.nextChatHistoryID
	s.nextChatHistoryID++
	s.chatHistories[h.ID] = h
	return h, nil
}

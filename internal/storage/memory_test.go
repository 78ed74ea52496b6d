package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/models"
)

func intPtr(v int) *int { return &v }

func newUserInput(username, email string) models.CreateUserInput {
	return models.CreateUserInput{
		Username:    username,
		Password:    "secret",
		DisplayName: "Test User",
		Email:       email,
	}
}

func TestCreateUserAssignsSequentialIDs(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.CreateUser(newUserInput("ana", "ana@example.com"))
	require.NoError(t, err)
	second, err := store.CreateUser(newUserInput("bogdan", "bogdan@example.com"))
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.CreateUser(newUserInput("ana", "ana@example.com"))
	require.NoError(t, err)

	_, err = store.CreateUser(newUserInput("ana", "other@example.com"))
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeValidation, appErr.Code)

	_, err = store.CreateUser(newUserInput("other", "ana@example.com"))
	require.Error(t, err)
}

func TestCreateUserValidatesInput(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateUser(models.CreateUserInput{
		Username:    "ana",
		Password:    "secret",
		DisplayName: "Ana",
		Email:       "not-an-email",
	})
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeValidation, appErr.Code)
}

func TestAuthenticateUser(t *testing.T) {
	store := NewMemoryStore()
	created, err := store.CreateUser(newUserInput("ana", "ana@example.com"))
	require.NoError(t, err)

	user, err := store.AuthenticateUser("ana", "secret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)

	user, err = store.AuthenticateUser("ana", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = store.AuthenticateUser("nobody", "secret")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserMissingReturnsNilNil(t *testing.T) {
	store := NewMemoryStore()

	user, err := store.GetUser(42)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateUserProgressInsertsAndMerges(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.UpdateUserProgress(models.UpsertProgressInput{
		UserID:          1,
		SubjectID:       2,
		TopicsCompleted: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, 3, created.TopicsCompleted)
	assert.Equal(t, 0, created.PercentComplete)
	assert.WithinDuration(t, time.Now(), created.LastStudied, time.Second)

	// Partial update keeps the untouched field.
	updated, err := store.UpdateUserProgress(models.UpsertProgressInput{
		UserID:          1,
		SubjectID:       2,
		PercentComplete: intPtr(40),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 3, updated.TopicsCompleted)
	assert.Equal(t, 40, updated.PercentComplete)

	records, err := store.GetUserProgress(1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestUpdateUserProgressScopedPerUser(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.UpdateUserProgress(models.UpsertProgressInput{UserID: 1, SubjectID: 2, TopicsCompleted: intPtr(1)})
	require.NoError(t, err)
	_, err = store.UpdateUserProgress(models.UpsertProgressInput{UserID: 9, SubjectID: 2, TopicsCompleted: intPtr(5)})
	require.NoError(t, err)

	first, err := store.GetUserProgress(1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, first[0].TopicsCompleted)
}

func TestUpdateUserProgressHonorsExplicitLastStudied(t *testing.T) {
	store := NewMemoryStore()
	stamp := time.Now().Add(-48 * time.Hour)

	record, err := store.UpdateUserProgress(models.UpsertProgressInput{
		UserID:      1,
		SubjectID:   2,
		LastStudied: &stamp,
	})
	require.NoError(t, err)
	assert.True(t, record.LastStudied.Equal(stamp))
}

func TestGetUserTestResultsSortedAndEnriched(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.InitializeDemoData())

	results, err := store.GetUserTestResults(1)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Newest first: the Romanian quiz was completed most recently.
	assert.Equal(t, "Romanian Literature Quiz", results[0].TestName)
	assert.Equal(t, "Romanian", results[0].SubjectName)
	for i := 1; i < len(results); i++ {
		assert.True(t, results[i-1].CompletedAt.After(results[i].CompletedAt))
	}
}

func TestGetUserTestResultsUnknownTest(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.SaveUserTestResult(models.SaveTestResultInput{
		UserID:         1,
		TestID:         999,
		Score:          50,
		PercentCorrect: 50,
		Answers:        []models.AnswerRecord{},
	})
	require.NoError(t, err)

	results, err := store.GetUserTestResults(1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Unknown Test", results[0].TestName)
	assert.Equal(t, "Unknown Subject", results[0].SubjectName)
}

func TestGetTopicsBySubjectOrdered(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.InitializeDemoData())

	topics, err := store.GetTopicsBySubject(1)
	require.NoError(t, err)
	require.Len(t, topics, 6)
	for i, topic := range topics {
		assert.Equal(t, i+1, topic.SortOrder)
		assert.Equal(t, uint(1), topic.SubjectID)
	}
}

func TestGetUserStudyStreaksNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.InitializeDemoData())

	streaks, err := store.GetUserStudyStreaks(1)
	require.NoError(t, err)
	require.Len(t, streaks, 3)
	for i := 1; i < len(streaks); i++ {
		assert.True(t, streaks[i-1].Date.After(streaks[i].Date))
	}
	// The most recent session is also the longest.
	assert.Equal(t, 75, streaks[0].MinutesStudied)
}

func TestAddStudyStreakStampsNow(t *testing.T) {
	store := NewMemoryStore()

	streak, err := store.AddStudyStreak(models.AddStreakInput{UserID: 1, MinutesStudied: 30})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), streak.Date, time.Second)
	assert.Equal(t, 30, streak.MinutesStudied)
}

func TestGetUserStudyPlanOrdering(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.AddStudyPlanTask(models.AddStudyPlanTaskInput{UserID: 1, Title: "plain", Description: "d", Duration: 10})
	require.NoError(t, err)
	_, err = store.AddStudyPlanTask(models.AddStudyPlanTaskInput{UserID: 1, Title: "recommended", Description: "d", Duration: 10, Recommended: true})
	require.NoError(t, err)
	_, err = store.AddStudyPlanTask(models.AddStudyPlanTaskInput{UserID: 1, Title: "priority", Description: "d", Duration: 10, Priority: true})
	require.NoError(t, err)

	tasks, err := store.GetUserStudyPlan(1)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "priority", tasks[0].Title)
	assert.Equal(t, "recommended", tasks[1].Title)
	assert.Equal(t, "plain", tasks[2].Title)
}

func TestAddStudyPlanTaskStartsIncomplete(t *testing.T) {
	store := NewMemoryStore()

	task, err := store.AddStudyPlanTask(models.AddStudyPlanTaskInput{UserID: 1, Title: "t", Description: "d", Duration: 10})
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.WithinDuration(t, time.Now(), task.DueDate, time.Second)
}

func TestUpdateStudyPlanTaskCompletion(t *testing.T) {
	store := NewMemoryStore()
	task, err := store.AddStudyPlanTask(models.AddStudyPlanTaskInput{UserID: 1, Title: "t", Description: "d", Duration: 10})
	require.NoError(t, err)

	updated, err := store.UpdateStudyPlanTaskCompletion(1, task.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	updated, err = store.UpdateStudyPlanTaskCompletion(1, task.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Completed)
}

func TestUpdateStudyPlanTaskCompletionNotFound(t *testing.T) {
	store := NewMemoryStore()
	task, err := store.AddStudyPlanTask(models.AddStudyPlanTaskInput{UserID: 1, Title: "t", Description: "d", Duration: 10})
	require.NoError(t, err)

	// Unknown task id.
	_, err = store.UpdateStudyPlanTaskCompletion(1, 999, true)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNotFound, appErr.Code)

	// Task owned by another user looks like a missing task.
	_, err = store.UpdateStudyPlanTaskCompletion(2, task.ID, true)
	require.Error(t, err)
}

func TestSaveAiChatHistoryReplacesMessages(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.SaveAiChatHistory(1, []models.ChatMessage{{Content: "hello", IsUser: true}})
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)

	second, err := store.SaveAiChatHistory(1, []models.ChatMessage{
		{Content: "a fresh transcript", IsUser: true},
		{Content: "indeed", IsUser: false},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	require.Len(t, second.Messages, 2)
	assert.Equal(t, "a fresh transcript", second.Messages[0].Content)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))

	stored, err := store.GetAiChatHistory(1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Messages, 2)
}

func TestGetAiChatHistoryMissing(t *testing.T) {
	store := NewMemoryStore()

	history, err := store.GetAiChatHistory(7)
	require.NoError(t, err)
	assert.Nil(t, history)
}

func TestInitializeDemoData(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.InitializeDemoData())

	user, err := store.GetUserByUsername("andrei")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Andrei Munteanu", user.DisplayName)

	subjects, err := store.GetAllSubjects()
	require.NoError(t, err)
	require.Len(t, subjects, 4)
	assert.Equal(t, "Romanian", subjects[0].Name)

	tests, err := store.GetAllTests()
	require.NoError(t, err)
	assert.Len(t, tests, 3)

	badges, err := store.GetUserBadges(user.ID)
	require.NoError(t, err)
	require.Len(t, badges, 3)
	assert.Equal(t, "Math Wizard", badges[0].Badge.Name)

	plan, err := store.GetUserStudyPlan(user.ID)
	require.NoError(t, err)
	require.Len(t, plan, 4)
	assert.True(t, plan[0].Priority)

	history, err := store.GetAiChatHistory(user.ID)
	require.NoError(t, err)
	require.NotNil(t, history)
	assert.Len(t, history.Messages, 3)
}

func TestInitializeDemoDataNotIdempotent(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.InitializeDemoData())
	require.NoError(t, store.InitializeDemoData())

	subjects, err := store.GetAllSubjects()
	require.NoError(t, err)
	assert.Len(t, subjects, 8)
}

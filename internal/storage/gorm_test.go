package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/models"
)

// newTestGormStore opens a fresh in-memory SQLite database. The connection
// pool is capped at one so every query sees the same :memory: database.
func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store, err := NewGormStore(db)
	require.NoError(t, err)
	return store
}

func TestGormOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open("mongodb", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage backend")
}

func TestGormCreateAndAuthenticateUser(t *testing.T) {
	store := newTestGormStore(t)

	created, err := store.CreateUser(newUserInput("ana", "ana@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = store.CreateUser(newUserInput("ana", "other@example.com"))
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeValidation, appErr.Code)

	user, err := store.AuthenticateUser("ana", "secret")
	require.NoError(t, err)
	require.NotNil(t, user)

	user, err = store.AuthenticateUser("ana", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGormGetUserMissingReturnsNilNil(t *testing.T) {
	store := newTestGormStore(t)

	user, err := store.GetUser(42)
	require.NoError(t, err)
	assert.Nil(t, user)

	subject, err := store.GetSubject(42)
	require.NoError(t, err)
	assert.Nil(t, subject)
}

func TestGormUpdateUserProgressUpserts(t *testing.T) {
	store := newTestGormStore(t)

	created, err := store.UpdateUserProgress(models.UpsertProgressInput{
		UserID:          1,
		SubjectID:       2,
		TopicsCompleted: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.TopicsCompleted)

	updated, err := store.UpdateUserProgress(models.UpsertProgressInput{
		UserID:          1,
		SubjectID:       2,
		PercentComplete: intPtr(55),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 3, updated.TopicsCompleted)
	assert.Equal(t, 55, updated.PercentComplete)

	records, err := store.GetUserProgress(1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGormTestResultRoundTrip(t *testing.T) {
	store := newTestGormStore(t)
	require.NoError(t, store.InitializeDemoData())

	results, err := store.GetUserTestResults(1)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Romanian Literature Quiz", results[0].TestName)
	assert.Equal(t, "Romanian", results[0].SubjectName)
	require.Len(t, results[0].Answers, 2)
	assert.True(t, results[0].Answers[0].Correct)

	// A result referencing a deleted test falls back to placeholder names.
	_, err = store.SaveUserTestResult(models.SaveTestResultInput{
		UserID:         1,
		TestID:         999,
		Score:          10,
		PercentCorrect: 10,
		Answers:        []models.AnswerRecord{},
	})
	require.NoError(t, err)

	results, err = store.GetUserTestResults(1)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Test", results[0].TestName)
	assert.Equal(t, "Unknown Subject", results[0].SubjectName)
}

func TestGormTopicsOrdered(t *testing.T) {
	store := newTestGormStore(t)
	require.NoError(t, store.InitializeDemoData())

	topics, err := store.GetTopicsBySubject(1)
	require.NoError(t, err)
	require.Len(t, topics, 6)
	for i, topic := range topics {
		assert.Equal(t, i+1, topic.SortOrder)
	}
}

func TestGormStudyPlanOrderingAndCompletion(t *testing.T) {
	store := newTestGormStore(t)

	_, err := store.AddStudyPlanTask(models.AddStudyPlanTaskInput{UserID: 1, Title: "plain", Description: "d", Duration: 10})
	require.NoError(t, err)
	recommended, err := store.AddStudyPlanTask(models.AddStudyPlanTaskInput{UserID: 1, Title: "recommended", Description: "d", Duration: 10, Recommended: true})
	require.NoError(t, err)
	_, err = store.AddStudyPlanTask(models.AddStudyPlanTaskInput{UserID: 1, Title: "priority", Description: "d", Duration: 10, Priority: true})
	require.NoError(t, err)

	tasks, err := store.GetUserStudyPlan(1)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "priority", tasks[0].Title)
	assert.Equal(t, "recommended", tasks[1].Title)
	assert.Equal(t, "plain", tasks[2].Title)

	updated, err := store.UpdateStudyPlanTaskCompletion(1, recommended.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	// Completion can be flipped back off.
	updated, err = store.UpdateStudyPlanTaskCompletion(1, recommended.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Completed)

	_, err = store.UpdateStudyPlanTaskCompletion(2, recommended.ID, true)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNotFound, appErr.Code)
}

func TestGormChatHistoryReplace(t *testing.T) {
	store := newTestGormStore(t)

	first, err := store.SaveAiChatHistory(1, []models.ChatMessage{{Content: "hi", IsUser: true}})
	require.NoError(t, err)

	second, err := store.SaveAiChatHistory(1, []models.ChatMessage{
		{Content: "new transcript", IsUser: true},
		{Content: "reply", IsUser: false},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	stored, err := store.GetAiChatHistory(1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Len(t, stored.Messages, 2)
	assert.Equal(t, "new transcript", stored.Messages[0].Content)
}

func TestGormStreaksNewestFirst(t *testing.T) {
	store := newTestGormStore(t)
	require.NoError(t, store.InitializeDemoData())

	streaks, err := store.GetUserStudyStreaks(1)
	require.NoError(t, err)
	require.Len(t, streaks, 3)
	for i := 1; i < len(streaks); i++ {
		assert.False(t, streaks[i-1].Date.Before(streaks[i].Date))
	}

	streak, err := store.AddStudyStreak(models.AddStreakInput{UserID: 1, MinutesStudied: 20})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), streak.Date, time.Second)
}

func TestGormSeedCounts(t *testing.T) {
	store := newTestGormStore(t)
	require.NoError(t, store.InitializeDemoData())

	subjects, err := store.GetAllSubjects()
	require.NoError(t, err)
	assert.Len(t, subjects, 4)

	tests, err := store.GetAllTests()
	require.NoError(t, err)
	require.Len(t, tests, 3)
	require.Len(t, tests[0].Questions, 2)
	assert.Len(t, tests[0].Questions[0].Options, 4)

	badges, err := store.GetUserBadges(1)
	require.NoError(t, err)
	assert.Len(t, badges, 3)
}

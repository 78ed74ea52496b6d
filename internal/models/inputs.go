package models

import "time"

// Input types bind request bodies and feed the store's write operations.
// UserID fields tagged json:"-" are filled from the URL path, never the body.

type CreateUserInput struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpsertProgressInput carries a partial progress update. Nil pointer fields
// leave the existing value untouched; a nil LastStudied on insert defaults to
// the current time.
type UpsertProgressInput struct {
	UserID          uint       `json:"-"`
	SubjectID       uint       `json:"subjectId" binding:"required"`
	TopicsCompleted *int       `json:"topicsCompleted" binding:"omitempty,gte=0"`
	PercentComplete *int       `json:"percentComplete" binding:"omitempty,gte=0,lte=100"`
	LastStudied     *time.Time `json:"lastStudied"`
}

type SaveTestResultInput struct {
	UserID         uint           `json:"-"`
	TestID         uint           `json:"testId" binding:"required"`
	Score          int            `json:"score" binding:"gte=0"`
	PercentCorrect int            `json:"percentCorrect" binding:"gte=0,lte=100"`
	Answers        []AnswerRecord `json:"answers" binding:"required"`
}

type AddStreakInput struct {
	UserID         uint `json:"-"`
	MinutesStudied int  `json:"minutesStudied" binding:"gte=0"`
}

type AddStudyPlanTaskInput struct {
	UserID      uint       `json:"-"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Duration    int        `json:"duration" binding:"required,gt=0"`
	Priority    bool       `json:"priority"`
	Recommended bool       `json:"recommended"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskInput uses a pointer so that an explicit false survives
// required-field validation.
type UpdateTaskInput struct {
	Completed *bool `json:"completed" binding:"required"`
}

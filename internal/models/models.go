package models

import "time"

// User represents a registered student account. The password is stored and
// compared in plain text; this is a demo-grade placeholder, not an auth model.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"unique;not null" json:"username"`
	Password    string    `gorm:"not null" json:"-"`
	DisplayName string    `gorm:"not null" json:"displayName"`
	Email       string    `gorm:"unique;not null" json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Subject is one of the Bacalaureat exam subjects
type Subject struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	TotalTopics int    `gorm:"not null" json:"totalTopics"`
	Icon        string `gorm:"not null" json:"icon"`
}

// Topic is a lesson within a subject, ordered by SortOrder
type Topic struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SubjectID   uint   `gorm:"index;not null" json:"subjectId"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Content     string `gorm:"type:text;not null" json:"content"` // rich HTML lesson body
	SortOrder   int    `gorm:"not null" json:"order"`
	Difficulty  string `json:"difficulty,omitempty"`
}

// UserProgress is the per-user-per-subject completion record. At most one row
// exists per (user, subject) pair; writes go through upsert semantics.
type UserProgress struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"userId"`
	SubjectID       uint      `gorm:"index;not null" json:"subjectId"`
	TopicsCompleted int       `json:"topicsCompleted"`
	PercentComplete int       `json:"percentComplete"`
	LastStudied     time.Time `json:"lastStudied"`
}

// TestQuestion is a single multiple-choice question with exactly 4 options
// and a zero-based correct-answer index.
type TestQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Test is a practice test belonging to a subject
type Test struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	SubjectID   uint           `gorm:"index;not null" json:"subjectId"`
	Description string         `gorm:"not null" json:"description"`
	Questions   []TestQuestion `gorm:"serializer:json;type:text" json:"questions"`
	TimeLimit   int            `gorm:"not null" json:"timeLimit"` // minutes
	Difficulty  string         `gorm:"not null" json:"difficulty"`
}

// AnswerRecord captures one answered question within a test attempt
type AnswerRecord struct {
	QuestionIndex  int  `json:"questionIndex"`
	SelectedOption int  `json:"selectedOption"`
	Correct        bool `json:"correct"`
}

// UserTestResult is one completed test attempt. Immutable once saved.
type UserTestResult struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"index;not null" json:"userId"`
	TestID         uint           `gorm:"index;not null" json:"testId"`
	Score          int            `json:"score"`
	PercentCorrect int            `json:"percentCorrect"`
	CompletedAt    time.Time      `json:"completedAt"`
	Answers        []AnswerRecord `gorm:"serializer:json;type:text" json:"answers"`
}

// TestResultWithNames enriches a result with the parent test and subject names,
// resolved at read time.
type TestResultWithNames struct {
	UserTestResult
	TestName    string `json:"testName"`
	SubjectName string `json:"subjectName"`
}

// Badge is an achievement definition
type Badge struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"unique;not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Icon        string `gorm:"not null" json:"icon"`
	Criteria    string `gorm:"not null" json:"criteria"`
}

// UserBadge joins a user to an earned badge
type UserBadge struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index;not null" json:"userId"`
	BadgeID  uint      `gorm:"index;not null" json:"badgeId"`
	EarnedAt time.Time `json:"earnedAt"`
}

// UserBadgeWithBadge pairs an award with its badge definition
type UserBadgeWithBadge struct {
	UserBadge
	Badge Badge `json:"badge"`
}

// StudyStreak is a single recorded study session, not a consecutive-day count.
// Multiple sessions on the same day create multiple rows.
type StudyStreak struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	Date           time.Time `json:"date"`
	MinutesStudied int       `json:"minutesStudied"`
}

// StudyPlanTask is one item of a user's study plan
type StudyPlanTask struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Duration    int       `gorm:"not null" json:"duration"` // minutes
	Priority    bool      `json:"priority"`
	Recommended bool      `json:"recommended"`
	Completed   bool      `json:"completed"`
	DueDate     time.Time `json:"dueDate"`
}

// ChatMessage is one turn of the AI tutor conversation
type ChatMessage struct {
	Content string `json:"content"`
	IsUser  bool   `json:"isUser"`
}

// AiChatHistory holds the single chat transcript per user. The message list is
// replaced wholesale on every save, never appended to.
type AiChatHistory struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"uniqueIndex;not null" json:"userId"`
	Messages  []ChatMessage `gorm:"serializer:json;type:text" json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

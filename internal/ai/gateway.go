package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/models"
	"github.com/architect/bacprep-backend/pkg/logger"
)

// AnswerAnalysis is the graded feedback for a free-response answer.
type AnswerAnalysis struct {
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	ModelAnswer  string   `json:"modelAnswer"`
}

// PlanTask is one generated study plan item.
type PlanTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Priority    bool   `json:"priority"`
	Recommended bool   `json:"recommended"`
}

// StudyPlan is a generated set of study tasks.
type StudyPlan struct {
	Tasks []PlanTask `json:"tasks"`
}

// Gateway wraps the chat client with the tutoring operations. Question
// generation is the only operation that propagates a backend failure to the
// caller; the rest degrade to a canned fallback so the UI always has
// something to show.
type Gateway struct {
	client ChatClient
}

// NewGateway returns a gateway backed by the given chat client.
func NewGateway(client ChatClient) *Gateway {
	return &Gateway{client: client}
}

const chatSystemPrompt = "You are a helpful AI assistant for Romanian Bacalaureat exam preparation. Provide concise, accurate information about Romanian curriculum subjects including Romanian Language and Literature, Mathematics, English, Biology, Chemistry, Physics, History, and Geography. When explaining concepts, use examples relevant to the Romanian educational system. Keep explanations clear and appropriate for high school students."

// GenerateQuestions asks for count multiple-choice questions on the topic.
// Difficulty defaults to "medium" and count to 5. A response without a
// "questions" key yields an empty slice, not an error.
func (g *Gateway) GenerateQuestions(ctx context.Context, subject, topic, difficulty string, count int) ([]models.TestQuestion, error) {
	if difficulty == "" {
		difficulty = "medium"
	}
	if count <= 0 {
		count = 5
	}

	prompt := fmt.Sprintf(
		`You are an expert Romanian Bacalaureat exam tutor. Generate %d multiple-choice questions about %s for the %s subject. The difficulty level should be %s. Each question should have 4 options with only one correct answer. Format your response as a JSON array where each question is an object with: "question", "options" (array of 4 strings), "correctAnswer" (index 0-3), and "explanation".`,
		count, topic, subject, difficulty,
	)

	content, err := g.client.ChatCompletion(ctx, []Message{{Role: "system", Content: prompt}}, true)
	if err != nil {
		logger.Error("failed to generate questions", zap.Error(err))
		return nil, errors.ExternalService("Failed to generate questions. Please try again later.", err.Error())
	}
	if content == "" {
		return []models.TestQuestion{}, nil
	}

	var result struct {
		Questions []models.TestQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		logger.Error("failed to parse generated questions", zap.Error(err))
		return nil, errors.ExternalService("Failed to generate questions. Please try again later.", err.Error())
	}
	if result.Questions == nil {
		return []models.TestQuestion{}, nil
	}
	return result.Questions, nil
}

// GenerateExplanation returns an explanation of the concept. Backend failures
// are swallowed and reported inline as the returned text.
func (g *Gateway) GenerateExplanation(ctx context.Context, subject, concept string) string {
	messages := []Message{
		{
			Role:    "system",
			Content: "You are an expert Romanian Bacalaureat exam tutor. Provide a clear, concise explanation of the concept, with examples relevant to the Romanian curriculum.",
		},
		{
			Role:    "user",
			Content: fmt.Sprintf(`Please explain the concept of "%s" in the subject of %s, as it relates to the Romanian Bacalaureat exam.`, concept, subject),
		},
	}

	content, err := g.client.ChatCompletion(ctx, messages, false)
	if err != nil {
		logger.Error("failed to generate explanation", zap.Error(err))
		return "Failed to generate an explanation. Please try again later."
	}
	if content == "" {
		return "No explanation available."
	}
	return content
}

// AnalyzeAnswer grades a free-response answer. On failure it returns a
// zero-score analysis with an apology instead of an error.
func (g *Gateway) AnalyzeAnswer(ctx context.Context, question, studentAnswer, subject string) AnswerAnalysis {
	messages := []Message{
		{
			Role:    "system",
			Content: "You are an expert Romanian Bacalaureat exam grader. Analyze the student's answer and provide feedback based on the Romanian grading criteria for the Bacalaureat exam.",
		},
		{
			Role: "user",
			Content: fmt.Sprintf(
				"Question: %s\n\nStudent's Answer: %s\n\nSubject: %s\n\nPlease analyze this answer and provide: (1) a score out of 10, (2) specific feedback on strengths, (3) areas for improvement, and (4) a model answer that would receive full marks. Return the response as a JSON object.",
				question, studentAnswer, subject,
			),
		},
	}

	fallback := AnswerAnalysis{
		Score:        0,
		Feedback:     "Failed to analyze your answer. Please try again later.",
		Strengths:    []string{},
		Improvements: []string{},
		ModelAnswer:  "",
	}

	content, err := g.client.ChatCompletion(ctx, messages, true)
	if err != nil {
		logger.Error("failed to analyze answer", zap.Error(err))
		return fallback
	}

	var analysis AnswerAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		logger.Error("failed to parse answer analysis", zap.Error(err))
		return fallback
	}
	if analysis.Strengths == nil {
		analysis.Strengths = []string{}
	}
	if analysis.Improvements == nil {
		analysis.Improvements = []string{}
	}
	return analysis
}

// GenerateStudyPlan builds a four-task plan for today from the student's
// performance data. On failure it returns a single generic task rather than
// an error.
func (g *Gateway) GenerateStudyPlan(ctx context.Context, userID uint, performance any) StudyPlan {
	performanceJSON, err := json.Marshal(performance)
	if err != nil {
		performanceJSON = []byte("{}")
	}

	messages := []Message{
		{
			Role:    "system",
			Content: "You are an expert Romanian Bacalaureat exam tutor. Generate a personalized study plan based on the student's performance data. The plan should include specific topics to focus on and time recommendations.",
		},
		{
			Role: "user",
			Content: fmt.Sprintf(
				"Here is the student's performance data: %s. Generate a study plan for today with 4 specific tasks. Return as a JSON object with an array of tasks, each with a title, description, duration (in minutes), priority (boolean), and whether it's recommended based on weak areas (boolean).",
				performanceJSON,
			),
		},
	}

	fallback := StudyPlan{
		Tasks: []PlanTask{
			{
				Title:       "Review your weakest subject",
				Description: "Focus on topics you scored lowest on in your recent tests",
				Duration:    30,
				Priority:    true,
				Recommended: true,
			},
		},
	}

	content, err := g.client.ChatCompletion(ctx, messages, true)
	if err != nil {
		logger.Error("failed to generate study plan", zap.Uint("userId", userID), zap.Error(err))
		return fallback
	}

	var plan StudyPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		logger.Error("failed to parse study plan", zap.Uint("userId", userID), zap.Error(err))
		return fallback
	}
	return plan
}

// ProcessChat runs one tutor chat turn over the full transcript. The fixed
// system prompt is prepended and user turns map to the "user" role, all
// others to "assistant". Failures come back as an inline apology.
func (g *Gateway) ProcessChat(ctx context.Context, messages []models.ChatMessage) string {
	formatted := make([]Message, 0, len(messages)+1)
	formatted = append(formatted, Message{Role: "system", Content: chatSystemPrompt})
	for _, msg := range messages {
		role := "assistant"
		if msg.IsUser {
			role = "user"
		}
		formatted = append(formatted, Message{Role: role, Content: msg.Content})
	}

	content, err := g.client.ChatCompletion(ctx, formatted, false)
	if err != nil {
		logger.Error("failed to process chat", zap.Error(err))
		return "I'm having trouble connecting right now. Please try again later."
	}
	if content == "" {
		return "I don't have an answer for that right now."
	}
	return content
}

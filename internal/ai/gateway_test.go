package ai

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/models"
)

// fakeClient replays a canned response or error and records the request.
type fakeClient struct {
	response string
	err      error

	gotMessages []Message
	gotJSONMode bool
}

func (f *fakeClient) ChatCompletion(_ context.Context, messages []Message, jsonMode bool) (string, error) {
	f.gotMessages = messages
	f.gotJSONMode = jsonMode
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGenerateQuestionsSuccess(t *testing.T) {
	client := &fakeClient{response: `{"questions":[{"question":"Solve 2x=8","options":["2","4","6","8"],"correctAnswer":1,"explanation":"x = 4"}]}`}
	gateway := NewGateway(client)

	questions, err := gateway.GenerateQuestions(context.Background(), "Mathematics", "Algebra", "easy", 1)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Solve 2x=8", questions[0].Question)
	assert.Equal(t, 1, questions[0].CorrectAnswer)

	assert.True(t, client.gotJSONMode)
	require.Len(t, client.gotMessages, 1)
	assert.Equal(t, "system", client.gotMessages[0].Role)
	assert.Contains(t, client.gotMessages[0].Content, "Generate 1 multiple-choice questions about Algebra")
	assert.Contains(t, client.gotMessages[0].Content, "difficulty level should be easy")
}

func TestGenerateQuestionsDefaults(t *testing.T) {
	client := &fakeClient{response: `{"questions":[]}`}
	gateway := NewGateway(client)

	_, err := gateway.GenerateQuestions(context.Background(), "Romanian", "Eminescu", "", 0)
	require.NoError(t, err)
	assert.Contains(t, client.gotMessages[0].Content, "Generate 5 multiple-choice questions")
	assert.Contains(t, client.gotMessages[0].Content, "difficulty level should be medium")
}

func TestGenerateQuestionsMissingKey(t *testing.T) {
	gateway := NewGateway(&fakeClient{response: `{"something":"else"}`})

	questions, err := gateway.GenerateQuestions(context.Background(), "Biology", "Cells", "medium", 3)
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestGenerateQuestionsFailure(t *testing.T) {
	gateway := NewGateway(&fakeClient{err: fmt.Errorf("connection refused")})

	_, err := gateway.GenerateQuestions(context.Background(), "Biology", "Cells", "medium", 3)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeExternalService, appErr.Code)
	assert.Equal(t, "Failed to generate questions. Please try again later.", appErr.Message)
}

func TestGenerateQuestionsBadJSON(t *testing.T) {
	gateway := NewGateway(&fakeClient{response: `not json at all`})

	_, err := gateway.GenerateQuestions(context.Background(), "Biology", "Cells", "medium", 3)
	require.Error(t, err)
}

func TestGenerateExplanation(t *testing.T) {
	client := &fakeClient{response: "A noun case marks grammatical function."}
	gateway := NewGateway(client)

	explanation := gateway.GenerateExplanation(context.Background(), "Romanian", "noun cases")
	assert.Equal(t, "A noun case marks grammatical function.", explanation)

	assert.False(t, client.gotJSONMode)
	require.Len(t, client.gotMessages, 2)
	assert.Equal(t, "user", client.gotMessages[1].Role)
	assert.Contains(t, client.gotMessages[1].Content, `explain the concept of "noun cases" in the subject of Romanian`)
}

func TestGenerateExplanationFallbacks(t *testing.T) {
	gateway := NewGateway(&fakeClient{err: fmt.Errorf("timeout")})
	assert.Equal(t,
		"Failed to generate an explanation. Please try again later.",
		gateway.GenerateExplanation(context.Background(), "Romanian", "noun cases"),
	)

	gateway = NewGateway(&fakeClient{response: ""})
	assert.Equal(t,
		"No explanation available.",
		gateway.GenerateExplanation(context.Background(), "Romanian", "noun cases"),
	)
}

func TestAnalyzeAnswerSuccess(t *testing.T) {
	client := &fakeClient{response: `{"score":8,"feedback":"Solid reasoning","strengths":["clear structure"],"improvements":["cite the text"],"modelAnswer":"..."}`}
	gateway := NewGateway(client)

	analysis := gateway.AnalyzeAnswer(context.Background(), "Discuss the themes of Ion", "The land...", "Romanian")
	assert.Equal(t, 8.0, analysis.Score)
	assert.Equal(t, "Solid reasoning", analysis.Feedback)
	assert.Equal(t, []string{"clear structure"}, analysis.Strengths)
	assert.True(t, client.gotJSONMode)
}

func TestAnalyzeAnswerFailure(t *testing.T) {
	gateway := NewGateway(&fakeClient{err: fmt.Errorf("boom")})

	analysis := gateway.AnalyzeAnswer(context.Background(), "Q", "A", "Romanian")
	assert.Equal(t, 0.0, analysis.Score)
	assert.Equal(t, "Failed to analyze your answer. Please try again later.", analysis.Feedback)
	assert.NotNil(t, analysis.Strengths)
	assert.Empty(t, analysis.Strengths)
	assert.NotNil(t, analysis.Improvements)
}

func TestGenerateStudyPlanSuccess(t *testing.T) {
	client := &fakeClient{response: `{"tasks":[{"title":"Practice limits","description":"30 min of limit exercises","duration":30,"priority":true,"recommended":false}]}`}
	gateway := NewGateway(client)

	plan := gateway.GenerateStudyPlan(context.Background(), 1, map[string]int{"Mathematics": 58})
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "Practice limits", plan.Tasks[0].Title)
	assert.Contains(t, client.gotMessages[1].Content, `{"Mathematics":58}`)
}

func TestGenerateStudyPlanFallback(t *testing.T) {
	gateway := NewGateway(&fakeClient{err: fmt.Errorf("boom")})

	plan := gateway.GenerateStudyPlan(context.Background(), 1, nil)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "Review your weakest subject", plan.Tasks[0].Title)
	assert.Equal(t, 30, plan.Tasks[0].Duration)
	assert.True(t, plan.Tasks[0].Priority)
	assert.True(t, plan.Tasks[0].Recommended)
}

func TestProcessChatRoles(t *testing.T) {
	client := &fakeClient{response: "Here is how geometric progressions work."}
	gateway := NewGateway(client)

	reply := gateway.ProcessChat(context.Background(), []models.ChatMessage{
		{Content: "Hi there", IsUser: false},
		{Content: "Explain progressions", IsUser: true},
	})
	assert.Equal(t, "Here is how geometric progressions work.", reply)

	require.Len(t, client.gotMessages, 3)
	assert.Equal(t, "system", client.gotMessages[0].Role)
	assert.Equal(t, "assistant", client.gotMessages[1].Role)
	assert.Equal(t, "user", client.gotMessages[2].Role)
	assert.False(t, client.gotJSONMode)
}

func TestProcessChatFallbacks(t *testing.T) {
	gateway := NewGateway(&fakeClient{err: fmt.Errorf("down")})
	assert.Equal(t,
		"I'm having trouble connecting right now. Please try again later.",
		gateway.ProcessChat(context.Background(), nil),
	)

	gateway = NewGateway(&fakeClient{response: ""})
	assert.Equal(t,
		"I don't have an answer for that right now.",
		gateway.ProcessChat(context.Background(), nil),
	)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/architect/bacprep-backend/internal/ai"
	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/common/middleware"
	"github.com/architect/bacprep-backend/internal/models"
	"github.com/architect/bacprep-backend/internal/storage"
)

// AIHandler serves the AI-powered endpoints. Apart from question generation,
// the gateway's operations never fail; they hand back fallback content, so
// those routes always respond 200.
type AIHandler struct {
	gateway *ai.Gateway
	store   storage.Store
}

func NewAIHandler(gateway *ai.Gateway, store storage.Store) *AIHandler {
	return &AIHandler{gateway: gateway, store: store}
}

type generateQuestionsRequest struct {
	Subject    string `json:"subject" binding:"required"`
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count" binding:"omitempty,gt=0"`
}

// GenerateQuestions produces practice questions for a topic
func (h *AIHandler) GenerateQuestions(c *gin.Context) {
	var req generateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid question generation request", err.Error()))
		return
	}

	questions, err := h.gateway.GenerateQuestions(c.Request.Context(), req.Subject, req.Topic, req.Difficulty, req.Count)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, questions)
}

type generateExplanationRequest struct {
	Subject string `json:"subject" binding:"required"`
	Concept string `json:"concept" binding:"required"`
}

// GenerateExplanation explains a concept in exam terms
func (h *AIHandler) GenerateExplanation(c *gin.Context) {
	var req generateExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid explanation request", err.Error()))
		return
	}

	explanation := h.gateway.GenerateExplanation(c.Request.Context(), req.Subject, req.Concept)
	c.JSON(200, gin.H{"explanation": explanation})
}

type analyzeAnswerRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
}

// AnalyzeAnswer grades a free-response answer
func (h *AIHandler) AnalyzeAnswer(c *gin.Context) {
	var req analyzeAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid answer analysis request", err.Error()))
		return
	}

	analysis := h.gateway.AnalyzeAnswer(c.Request.Context(), req.Question, req.Answer, req.Subject)
	c.JSON(200, analysis)
}

type generateStudyPlanRequest struct {
	UserID      uint `json:"userId" binding:"required"`
	Performance any  `json:"performance"`
}

// GenerateStudyPlan builds a personalized plan from performance data
func (h *AIHandler) GenerateStudyPlan(c *gin.Context) {
	var req generateStudyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid study plan request", err.Error()))
		return
	}

	plan := h.gateway.GenerateStudyPlan(c.Request.Context(), req.UserID, req.Performance)
	c.JSON(200, plan)
}

type chatRequest struct {
	UserID   uint                 `json:"userId" binding:"required"`
	Messages []models.ChatMessage `json:"messages" binding:"required"`
}

// Chat runs one tutor turn and persists the extended transcript. A storage
// failure after a successful completion surfaces as an error even though the
// reply was generated.
func (h *AIHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid chat request", err.Error()))
		return
	}

	response := h.gateway.ProcessChat(c.Request.Context(), req.Messages)

	transcript := append(req.Messages, models.ChatMessage{Content: response, IsUser: false})
	if _, err := h.store.SaveAiChatHistory(req.UserID, transcript); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"response": response})
}

// GetChatHistory returns the user's transcript, or null when none exists
func (h *AIHandler) GetChatHistory(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	history, err := h.store.GetAiChatHistory(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, history)
}

// Package server assembles the HTTP router.
package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/architect/bacprep-backend/internal/ai"
	"github.com/architect/bacprep-backend/internal/common/health"
	"github.com/architect/bacprep-backend/internal/common/middleware"
	"github.com/architect/bacprep-backend/internal/handlers"
	"github.com/architect/bacprep-backend/internal/storage"
	"github.com/architect/bacprep-backend/pkg/config"
	"github.com/architect/bacprep-backend/pkg/monitoring"
)

// New builds the gin engine with all middleware and routes attached. db is
// nil when the in-memory backend is active; it only feeds the health checks.
func New(cfg *config.Config, store storage.Store, gateway *ai.Gateway, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
		middleware.CORS(),
		monitoring.MetricsMiddleware(),
	)

	checker := health.NewChecker(db, cfg.Storage.Backend)
	router.GET("/health", checker.Health)
	router.GET("/health/live", checker.Liveness)
	router.GET("/health/ready", checker.Readiness)
	router.GET("/metrics", monitoring.PrometheusHandler())

	authHandler := handlers.NewAuthHandler(store)
	subjectHandler := handlers.NewSubjectHandler(store)
	progressHandler := handlers.NewProgressHandler(store)
	testHandler := handlers.NewTestHandler(store)
	studyHandler := handlers.NewStudyHandler(store)
	aiHandler := handlers.NewAIHandler(gateway, store)
	demoHandler := handlers.NewDemoHandler(store)

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/users/:userId", authHandler.GetUser)

		api.GET("/subjects", subjectHandler.ListSubjects)
		api.GET("/subjects/:subjectId", subjectHandler.GetSubject)
		api.GET("/subjects/:subjectId/topics", subjectHandler.ListTopics)

		api.GET("/users/:userId/progress", progressHandler.GetProgress)
		api.POST("/users/:userId/progress", progressHandler.UpdateProgress)

		api.GET("/tests", testHandler.ListTests)
		api.GET("/users/:userId/test-results", testHandler.GetTestResults)
		api.POST("/users/:userId/test-results", testHandler.SaveTestResult)

		api.GET("/users/:userId/badges", studyHandler.GetBadges)

		api.GET("/users/:userId/study-streaks", studyHandler.GetStreaks)
		api.POST("/users/:userId/study-streaks", studyHandler.AddStreak)

		api.GET("/users/:userId/study-plan", studyHandler.GetStudyPlan)
		api.POST("/users/:userId/study-plan", studyHandler.AddStudyPlanTask)
		api.PATCH("/users/:userId/study-plan/:taskId", studyHandler.UpdateTaskCompletion)

		api.POST("/ai/generate-questions", aiHandler.GenerateQuestions)
		api.POST("/ai/generate-explanation", aiHandler.GenerateExplanation)
		api.POST("/ai/analyze-answer", aiHandler.AnalyzeAnswer)
		api.POST("/ai/generate-study-plan", aiHandler.GenerateStudyPlan)
		api.POST("/ai/chat", aiHandler.Chat)
		api.GET("/users/:userId/chat-history", aiHandler.GetChatHistory)

		api.POST("/init-demo-data", demoHandler.InitDemoData)
	}

	return router
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/common/middleware"
	"github.com/architect/bacprep-backend/internal/models"
	"github.com/architect/bacprep-backend/internal/storage"
)

// StudyHandler serves badges, study streaks and the study plan.
type StudyHandler struct {
	store storage.Store
}

func NewStudyHandler(store storage.Store) *StudyHandler {
	return &StudyHandler{store: store}
}

// GetBadges returns the user's earned badges with their definitions
func (h *StudyHandler) GetBadges(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	badges, err := h.store.GetUserBadges(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, badges)
}

// GetStreaks returns the user's study sessions, newest first
func (h *StudyHandler) GetStreaks(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	streaks, err := h.store.GetUserStudyStreaks(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, streaks)
}

// AddStreak records a study session dated now
func (h *StudyHandler) AddStreak(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var input models.AddStreakInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid study streak data", err.Error()))
		return
	}
	input.UserID = userID

	streak, err := h.store.AddStudyStreak(input)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(201, streak)
}

// GetStudyPlan returns the user's plan, priority tasks first
func (h *StudyHandler) GetStudyPlan(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	tasks, err := h.store.GetUserStudyPlan(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, tasks)
}

// AddStudyPlanTask appends a task to the user's plan
func (h *StudyHandler) AddStudyPlanTask(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var input models.AddStudyPlanTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid study plan task data", err.Error()))
		return
	}
	input.UserID = userID

	task, err := h.store.AddStudyPlanTask(input)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(201, task)
}

// UpdateTaskCompletion flips a task's completed flag
func (h *StudyHandler) UpdateTaskCompletion(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var input models.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid task update", err.Error()))
		return
	}

	task, err := h.store.UpdateStudyPlanTaskCompletion(userID, taskID, *input.Completed)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, task)
}

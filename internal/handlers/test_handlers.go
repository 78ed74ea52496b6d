package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/common/middleware"
	"github.com/architect/bacprep-backend/internal/models"
	"github.com/architect/bacprep-backend/internal/storage"
)

// TestHandler serves practice tests and their results.
type TestHandler struct {
	store storage.Store
}

func NewTestHandler(store storage.Store) *TestHandler {
	return &TestHandler{store: store}
}

// ListTests returns all tests, or a subject's tests when the subjectId query
// parameter is present.
func (h *TestHandler) ListTests(c *gin.Context) {
	if raw := c.Query("subjectId"); raw != "" {
		subjectID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			middleware.JSONErrorResponse(c, errors.BadRequest("invalid subjectId"))
			return
		}
		tests, err := h.store.GetTestsBySubject(uint(subjectID))
		if err != nil {
			middleware.JSONErrorResponse(c, err)
			return
		}
		c.JSON(200, tests)
		return
	}

	tests, err := h.store.GetAllTests()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, tests)
}

// GetTestResults returns the user's results, newest first
func (h *TestHandler) GetTestResults(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	results, err := h.store.GetUserTestResults(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, results)
}

// SaveTestResult records a completed test attempt
func (h *TestHandler) SaveTestResult(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var input models.SaveTestResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid test result data", err.Error()))
		return
	}
	input.UserID = userID

	result, err := h.store.SaveUserTestResult(input)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(201, result)
}

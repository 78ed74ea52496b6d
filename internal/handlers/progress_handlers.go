package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/common/middleware"
	"github.com/architect/bacprep-backend/internal/models"
	"github.com/architect/bacprep-backend/internal/storage"
)

// ProgressHandler serves per-subject study progress.
type ProgressHandler struct {
	store storage.Store
}

func NewProgressHandler(store storage.Store) *ProgressHandler {
	return &ProgressHandler{store: store}
}

// GetProgress returns the user's progress across all subjects
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	progress, err := h.store.GetUserProgress(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, progress)
}

// UpdateProgress upserts the progress record for one subject. Responds 200
// whether the record was created or updated.
func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var input models.UpsertProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid progress data", err.Error()))
		return
	}
	input.UserID = userID

	progress, err := h.store.UpdateUserProgress(input)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, progress)
}

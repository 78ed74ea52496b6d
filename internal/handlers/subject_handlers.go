package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/common/middleware"
	"github.com/architect/bacprep-backend/internal/storage"
)

// SubjectHandler serves the subject catalog and its topics.
type SubjectHandler struct {
	store storage.Store
}

func NewSubjectHandler(store storage.Store) *SubjectHandler {
	return &SubjectHandler{store: store}
}

// ListSubjects returns all subjects
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.store.GetAllSubjects()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, subjects)
}

// GetSubject returns a subject by id
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "subjectId")
	if !ok {
		return
	}

	subject, err := h.store.GetSubject(subjectID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	if subject == nil {
		middleware.JSONErrorResponse(c, errors.NotFound("Subject"))
		return
	}

	c.JSON(200, subject)
}

// ListTopics returns a subject's topics in curriculum order
func (h *SubjectHandler) ListTopics(c *gin.Context) {
	subjectID, ok := parseIDParam(c, "subjectId")
	if !ok {
		return
	}

	topics, err := h.store.GetTopicsBySubject(subjectID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, topics)
}

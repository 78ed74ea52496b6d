package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/architect/bacprep-backend/internal/common/middleware"
	"github.com/architect/bacprep-backend/internal/storage"
)

// DemoHandler loads the demo fixtures on demand.
type DemoHandler struct {
	store storage.Store
}

func NewDemoHandler(store storage.Store) *DemoHandler {
	return &DemoHandler{store: store}
}

// InitDemoData seeds the demo account and its study data. Not idempotent.
func (h *DemoHandler) InitDemoData(c *gin.Context) {
	if err := h.store.InitializeDemoData(); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Demo data initialized successfully"})
}

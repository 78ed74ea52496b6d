// Package health implements liveness and readiness probes.
package health

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Checker reports process and storage health. db is nil when the in-memory
// backend is active, which is always considered healthy.
type Checker struct {
	db        *gorm.DB
	backend   string
	startedAt time.Time
}

func NewChecker(db *gorm.DB, backend string) *Checker {
	return &Checker{
		db:        db,
		backend:   backend,
		startedAt: time.Now(),
	}
}

func (h *Checker) storageHealthy() bool {
	if h.db == nil {
		return true
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

// Health reports overall status, uptime and the storage backend state.
func (h *Checker) Health(c *gin.Context) {
	storageOK := h.storageHealthy()

	status := "healthy"
	httpStatus := 200
	if !storageOK {
		status = "unhealthy"
		httpStatus = 503
	}

	c.JSON(httpStatus, gin.H{
		"status": status,
		"uptime": time.Since(h.startedAt).String(),
		"storage": gin.H{
			"backend": h.backend,
			"healthy": storageOK,
		},
	})
}

// Liveness always succeeds while the process is running.
func (h *Checker) Liveness(c *gin.Context) {
	c.JSON(200, gin.H{"status": "alive"})
}

// Readiness succeeds once the storage backend is reachable.
func (h *Checker) Readiness(c *gin.Context) {
	if !h.storageHealthy() {
		c.JSON(503, gin.H{"status": "not ready"})
		return
	}
	c.JSON(200, gin.H{"status": "ready"})
}

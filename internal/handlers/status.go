package handlers

import (
	"net/http"

	"sharecase/internal/worker"

	"github.com/gin-gonic/gin"
)

// StatusHandler exposes service health and worker state
type StatusHandler struct {
	workerService *worker.Service
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(workerService *worker.Service) *StatusHandler {
	return &StatusHandler{workerService: workerService}
}

// HealthCheck handles GET /health
func (h *StatusHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "sharecase",
	})
}

// WorkerStatus handles GET /api/worker/status
func (h *StatusHandler) WorkerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"worker_status": h.workerService.GetStatus(),
	})
}

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ShouwangH/garage-demo/internal/middleware"
	"github.com/ShouwangH/garage-demo/internal/storage"
)

const (
	// APIVersion is the current version of the API
	APIVersion = "0.1.0"
	// HealthCheckTimeout is the timeout for storage health checks
	HealthCheckTimeout = 2 * time.Second
)

// HealthHandler handles health check and readiness endpoints.
type HealthHandler struct {
	store     storage.Store
	startTime time.Time
	env       string
	driver    string
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(store storage.Store, env, driver string) *HealthHandler {
	return &HealthHandler{
		store:     store,
		startTime: time.Now(),
		env:       env,
		driver:    driver,
	}
}

// HealthResponse represents the basic health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Driver  string `json:"driver"`
}

// InfoResponse represents the API information response.
type InfoResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
}

// Health handles GET /health endpoint.
// This is a basic health check that always returns 200 OK.
// It does not check any dependencies and is used for basic liveness checks.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// Ready handles GET /health/ready endpoint.
// This is a readiness check that verifies the storage backend is reachable.
// Returns 200 OK if it is, 503 Service Unavailable otherwise.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), HealthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Error("Storage health check failed", err, map[string]interface{}{
				"driver":  h.driver,
				"timeout": HealthCheckTimeout.String(),
			})
		}

		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:  "not_ready",
			Storage: "disconnected",
			Driver:  h.driver,
		})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		Status:  "ready",
		Storage: "connected",
		Driver:  h.driver,
	})
}

// Info handles GET /api/v1/info endpoint.
// Returns API metadata including version, environment, and uptime.
func (h *HealthHandler) Info(c *gin.Context) {
	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, InfoResponse{
		Name:        "garage-api",
		Version:     APIVersion,
		Environment: h.env,
		Uptime:      formatUptime(uptime),
	})
}

// formatUptime formats a duration into a human-readable string.
func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

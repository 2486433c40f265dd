package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	checks map[string]Checker
	now    func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a health controller probing the named dependencies.
func NewHealthController(checks map[string]Checker) *HealthController {
	return &HealthController{checks: checks, now: time.Now}
}

// Check handles GET /health requests. Any failing dependency turns the
// response into a 503 with status "degraded".
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = "disconnected"
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "connected"
	}

	c.JSON(code, HealthResponse{
		Status:       status,
		Dependencies: deps,
		Timestamp:    h.now().UTC().Format(time.RFC3339),
	})
}

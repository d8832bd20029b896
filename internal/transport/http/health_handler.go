package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// HealthHandler serves liveness information.
type HealthHandler struct {
	version   string
	startedAt time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, startedAt: time.Now()}
}

// RegisterRoutes registers the health routes.
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.GetHealth)
}

// GetHealth returns service status and uptime.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":  "healthy",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).String(),
	})
}

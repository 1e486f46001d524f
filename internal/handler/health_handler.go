package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// HealthHandler handles liveness and readiness probes.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness handles GET /healthz
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	RespondOK(c, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
// @Summary      Readiness probe
// @Description  Pings the database with a short timeout
// @Tags         health
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      503 {object} APIResponse
// @Router       /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database is not reachable")
		return
	}

	RespondOK(c, gin.H{"status": "ready"})
}

package handler

import (
	"net/http"
	"time"

	"appointment_manager/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	pool      *pgxpool.Pool
	env       string
	version   string
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(pool *pgxpool.Pool, env, version string) *HealthHandler {
	return &HealthHandler{pool: pool, env: env, version: version, startedAt: time.Now()}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	dbStatus := "healthy"
	if err := h.pool.Ping(c.Request.Context()); err != nil {
		dbStatus = "unhealthy"
	}

	response.OK(c, http.StatusOK, "Health check successful", gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(h.startedAt).Seconds(),
		"environment": h.env,
		"version":     h.version,
		"services": gin.H{
			"database": dbStatus,
			"server":   "healthy",
		},
	})
}

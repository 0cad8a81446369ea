package handler

import (
	"context"
	"net/http"
	"time"

	"mindful/backend/internal/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Ping godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Healthz godoc
// @Summary      Readiness check
// @Description  Pings the database.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.DB); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

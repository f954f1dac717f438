package server

import (
	"context"
	"net/http"
	"time"

	"gymdesk/internal/api"
	"gymdesk/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const healthTimeout = 2 * time.Second

// Health godoc
// @Summary      Health check
// @Description  Pings the database and Redis. Answers 503 when either is down.
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /health [get]
func Health(database *sqlx.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		resp := api.HealthResponse{Status: "ok", Database: "ok"}
		status := http.StatusOK

		if err := database.PingContext(ctx); err != nil {
			logger.Warn("health check: database unreachable", "error", err)
			resp.Database = "unreachable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}

		if rdb != nil {
			resp.Redis = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("health check: redis unreachable", "error", err)
				resp.Redis = "unreachable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}

		c.JSON(status, resp)
	}
}

// Metrics godoc
// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

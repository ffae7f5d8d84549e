package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthProbeTimeout = 2 * time.Second

// Health reports readiness of the two backing stores. Postgres holds the
// catalog and ledgers, Redis holds sessions; the app is unusable without
// either, so any failure maps to 503.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
		defer cancel()

		checks := gin.H{
			"database": probeDatabase(ctx, db),
			"sessions": probeRedis(ctx, rdb),
		}

		status, overall := http.StatusOK, "healthy"
		for _, v := range checks {
			if v != "ok" {
				status, overall = http.StatusServiceUnavailable, "degraded"
				break
			}
		}

		c.JSON(status, gin.H{
			"status": overall,
			"checks": checks,
		})
	}
}

func probeDatabase(ctx context.Context, db *gorm.DB) string {
	sqlDB, err := db.DB()
	if err != nil {
		return "unreachable"
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "unreachable"
	}
	return "ok"
}

func probeRedis(ctx context.Context, rdb *redis.Client) string {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return "unreachable"
	}
	return "ok"
}

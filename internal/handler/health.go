package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health pings the database and Redis. 503 when either is down.
// Never exposes credentials or connection details.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbUp := true
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			dbUp = false
		}

		redisUp := rdb != nil && rdb.Ping(ctx).Err() == nil

		status := http.StatusOK
		if !dbUp || !redisUp {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"service": "supermarketapi",
			"db":      statusWord(dbUp),
			"redis":   statusWord(redisUp),
		})
	}
}

func statusWord(up bool) string {
	if up {
		return "connected"
	}
	return "error"
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitalk/kiosk-backend/store"
)

type HealthController struct {
	DB    *gorm.DB
	Store *store.SessionStore
}

func NewHealthController(db *gorm.DB, sessionStore *store.SessionStore) *HealthController {
	return &HealthController{DB: db, Store: sessionStore}
}

// Health -> GET /health
// Liveness plus a best-effort ping of both stores.
func (hc *HealthController) Health(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "up"
	if sqlDB, err := hc.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	if err := hc.Store.Ping(ctx); err != nil {
		redisStatus = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  dbStatus,
		"redis":     redisStatus,
		"timestamp": time.Now().UnixMilli(),
	})
}

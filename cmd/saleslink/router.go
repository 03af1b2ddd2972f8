package main

import (
	"net/http"

	"github.com/bitfantasy/nimo-saleslink/internal/config"
	"github.com/bitfantasy/nimo-saleslink/internal/middleware"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/handler"
	"github.com/bitfantasy/nimo-saleslink/internal/shared/metrics"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const serviceName = "nimo-saleslink"

func newRouter(cfg *config.Config, db *gorm.DB, h *handler.Handlers, zapLogger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.Language())
	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics())
	}
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// 健康检查
	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "service": serviceName, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
	})

	// 版本信息
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    serviceName,
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	v1 := router.Group("/api/v1/saleslink")
	v1.Use(middleware.JWTAuth(cfg.JWT.Secret))
	h.Register(v1)

	return router
}

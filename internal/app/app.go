package app

import (
	"context"

	"school-erp/internal/middleware"
	"school-erp/internal/shared/config"
	"school-erp/internal/shared/connection"
	"school-erp/internal/shared/schema"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure, applies the schema and registers every
// payroll module on router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	if err := schema.Apply(context.Background(), sqlDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(20, 40),
	)

	return registerModules(router, cfg, sqlDB, gormDB, redisClient)
}

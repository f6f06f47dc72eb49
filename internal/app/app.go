package app

import (
	"context"
	"os"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, seeds the bootstrap admin and
// registers every module's routes on the router.
func BuildApp(router *gin.Engine, auditLogger bootstrap.AuditLogger) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	if err := bootstrap.SeedSuperAdmin(context.Background(), gormDB, auditLogger); err != nil {
		return err
	}

	return registerModules(router, gormDB, redisClient)
}

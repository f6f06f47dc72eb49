package app

import (
	"go-hrms/internal/admin"
	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/department"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/notification"
	"go-hrms/internal/organization"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/team"
	"go-hrms/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	adminRepo := admin.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	organizationRepo := organization.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	teamRepo := team.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	adminService := admin.NewService(adminRepo)
	attendanceService := attendance.NewService(gormDB, attendanceRepo, userRepo)
	authService := auth.NewService(userRepo, adminRepo)
	departmentService := department.NewService(gormDB, departmentRepo, counterRepo, rdb)
	leaveService := leave.NewService(gormDB, leaveRepo, organizationRepo, outboxRepo)
	notificationService := notification.NewService(notificationRepo)
	organizationService := organization.NewService(gormDB, organizationRepo, departmentRepo, userRepo, adminRepo)
	teamService := team.NewService(gormDB, teamRepo, departmentRepo, userRepo)
	userService := user.NewService(gormDB, userRepo, outboxRepo)

	// --- Handlers ---
	adminHandler := admin.NewHandler(adminService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	notificationHandler := notification.NewHandler(notificationService)
	organizationHandler := organization.NewHandler(organizationService)
	teamHandler := team.NewHandler(teamService)
	userHandler := user.NewHandlerWithRedis(userService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		admin.RegisterRoutes(api, adminHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		organization.RegisterRoutes(api, organizationHandler, rbacService)
		team.RegisterRoutes(api, teamHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService, rdb)
	}

	return nil
}

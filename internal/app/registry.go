package app

import (
	"context"
	"database/sql"

	"school-erp/internal/messaging/kafka"
	"school-erp/internal/payhistory"
	"school-erp/internal/payperiod"
	"school-erp/internal/payprofile"
	"school-erp/internal/payroll"
	"school-erp/internal/payrollrun"
	"school-erp/internal/payslip"
	"school-erp/internal/rbac"
	"school-erp/internal/rbac/infra"
	"school-erp/internal/settings"
	"school-erp/internal/shared/config"
	"school-erp/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payHistoryRepo := payhistory.NewRepository(gormDB)
	payPeriodRepo := payperiod.NewRepository(gormDB)
	payProfileRepo := payprofile.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	payrollRunRepo := payrollrun.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	payProfileService := payprofile.NewService(payProfileRepo, cfg.Payroll.EligibleRoles)
	payPeriodService := payperiod.NewService(db, payPeriodRepo)
	payHistoryService := payhistory.NewService(payHistoryRepo, rdb)
	payrollService := payroll.NewService(db, payrollRepo, payPeriodRepo, payProfileService, outboxRepo, payHistoryService, cfg.Payroll)
	payrollRunService := payrollrun.NewService(db, payrollRunRepo, counterRepo, outboxRepo, payHistoryService, cfg.Payroll)
	settingsService := settings.NewService(settingsRepo, rdb)
	payslipService := payslip.NewService(payHistoryService, settingsService)

	// --- Handlers ---
	rbacHandler := rbac.NewHandler(rbacService)
	payProfileHandler := payprofile.NewHandler(payProfileService)
	payPeriodHandler := payperiod.NewHandler(payPeriodService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	payrollRunHandler := payrollrun.NewHandlerWithRedis(payrollRunService, rdb)
	payHistoryHandler := payhistory.NewHandler(payHistoryService)
	settingsHandler := settings.NewHandler(settingsService)
	payslipHandler := payslip.NewHandler(payslipService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		rbac.RegisterRoutes(api, rbacHandler, rbacService, cfg.JWTSecret)
		payprofile.RegisterRoutes(api, payProfileHandler, rbacService, cfg.JWTSecret)
		payperiod.RegisterRoutes(api, payPeriodHandler, rbacService, cfg.JWTSecret)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, cfg.JWTSecret, rdb)
		payrollrun.RegisterRoutes(api, payrollRunHandler, rbacService, cfg.JWTSecret, rdb)
		payhistory.RegisterRoutes(api, payHistoryHandler, rbacService, cfg.JWTSecret)
		settings.RegisterRoutes(api, settingsHandler, rbacService, cfg.JWTSecret)
		payslip.RegisterRoutes(api, payslipHandler, rbacService, cfg.JWTSecret)
	}

	return nil
}

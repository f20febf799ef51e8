package payrollrun

import (
	"school-erp/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	rdb *redis.Client,
) {
	runs := r.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware(jwtSecret))
	{
		runs.POST(
			"",
			middleware.RBACAuthorize(rbacService, "payroll", "manage"),
			middleware.Idempotency(rdb),
			handler.SaveRun,
		)
		runs.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetByID)
	}
}

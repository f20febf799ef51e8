package payroll

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
	auth := middleware.AuthMiddleware(jwtSecret)

	periods := r.Group("/pay-periods")
	periods.Use(auth)
	{
		periods.POST(
			"/:id/generate",
			middleware.RBACAuthorize(rbacService, "payroll", "manage"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		periods.GET("/:id/records", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.ListByPeriod)
	}

	records := r.Group("/payroll-records")
	records.Use(auth)
	{
		records.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetByID)
	}
}

package payperiod

import (
	"school-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	periods := r.Group("/pay-periods")
	periods.Use(middleware.AuthMiddleware(jwtSecret))
	{
		periods.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		periods.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetByID)
		periods.POST("", middleware.RBACAuthorize(rbacService, "payroll", "manage"), handler.Open)
	}
}

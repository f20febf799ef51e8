package payprofile

import (
	"school-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	profiles := r.Group("/employees")
	profiles.Use(middleware.AuthMiddleware(jwtSecret))
	{
		profiles.GET("/:id/pay-profile", middleware.RBACAuthorize(rbacService, "payroll", "manage"), handler.GetByEmployeeID)
	}
}

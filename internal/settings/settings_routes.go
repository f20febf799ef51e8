package settings

import (
	"school-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	group := r.Group("/settings/institution")
	group.Use(middleware.AuthMiddleware(jwtSecret))
	{
		group.GET("",
			middleware.RateLimitByEmployee(2, 10),
			handler.Get,
		)

		group.PUT("",
			middleware.RateLimitByEmployee(0.1, 1),
			middleware.RBACAuthorize(rbacService, "settings", "manage"),
			handler.Update,
		)
	}
}

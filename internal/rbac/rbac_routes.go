package rbac

import (
	"school-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, jwtSecret string) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(jwtSecret))
	{
		group.GET("/me/capabilities", handler.MyCapabilities)
		group.POST("/enforce", middleware.RBACAuthorize(service, "role", "manage"), handler.Enforce)
	}
}

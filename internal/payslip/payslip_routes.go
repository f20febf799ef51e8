package payslip

import (
	"school-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	capabilities middleware.CapabilityService,
	jwtSecret string,
) {
	payslips := r.Group("/payslips")
	payslips.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.ResolveRequester(capabilities),
	)
	{
		payslips.GET("/verify/:reference", middleware.RateLimitByEmployee(1, 5), handler.Verify)
		payslips.GET("/:id", handler.Get)
		payslips.GET("/:id/download", middleware.RateLimitByEmployee(0.5, 3), handler.Download)
	}
}
